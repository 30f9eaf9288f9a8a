package routes

import (
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"github.com/mbolis/form-weaver/ai"
	"github.com/mbolis/form-weaver/app"
	"github.com/mbolis/form-weaver/httpx"
	"github.com/mbolis/form-weaver/log"
)

// GenerateForm turns a free-text prompt into a form draft. The draft is not
// persisted; the client reviews it and posts it to /forms/create-complete.
func GenerateForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := ai.GenerateRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		if strings.TrimSpace(req.Prompt) == "" {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "ai.generate_form", "prompt is required")
			return
		}

		draft := app.AI.GenerateForm(r.Context(), req)
		render.JSON(w, r, draft)
	}
}
