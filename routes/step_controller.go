package routes

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/mbolis/form-weaver/app"
	"github.com/mbolis/form-weaver/httpx"
	"github.com/mbolis/form-weaver/log"
	"github.com/mbolis/form-weaver/store"
)

func CreateStep(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formId, err := strconv.Atoi(chi.URLParam(r, "formId"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.formId")
			return
		}

		var body struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		}
		err = render.DecodeJSON(r.Body, &body)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		if strings.TrimSpace(body.Title) == "" {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "step.create", "title is required")
			return
		}

		step, err := app.Store.CreateStep(r.Context(), formId, body.Title, body.Description)
		if errors.Is(err, store.ErrNotFound) {
			httpx.LogNotFound(w, "create_step.form", formId)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.insert_step", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, step)
	}
}

func UpdateStep(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stepId, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		patch := store.StepPatch{}
		err = render.DecodeJSON(r.Body, &patch)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		step, err := app.Store.UpdateStep(r.Context(), stepId, patch)
		if errors.Is(err, store.ErrNotFound) {
			httpx.LogNotFound(w, "update_step", stepId)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.update_step", err)
			return
		}

		render.JSON(w, r, step)
	}
}

func DeleteStep(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stepId, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		found, err := app.Store.DeleteStep(r.Context(), stepId)
		if err != nil {
			httpx.LogInternalError(w, "db.delete_step", err)
			return
		}
		if !found {
			httpx.LogNotFound(w, "delete_step", stepId)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ReorderSteps(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formId, err := strconv.Atoi(chi.URLParam(r, "formId"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.formId")
			return
		}

		var body struct {
			Steps []store.ReorderItem `json:"steps"`
		}
		err = render.DecodeJSON(r.Body, &body)
		if err != nil || body.Steps == nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		err = app.Store.ReorderSteps(r.Context(), formId, body.Steps)
		if err != nil {
			httpx.LogInternalError(w, "db.reorder_steps", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
