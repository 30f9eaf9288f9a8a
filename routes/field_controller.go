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

func CreateField(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stepId, err := strconv.Atoi(chi.URLParam(r, "stepId"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.stepId")
			return
		}

		input := store.FieldInput{}
		err = render.DecodeJSON(r.Body, &input)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		if strings.TrimSpace(input.Type) == "" || strings.TrimSpace(input.Label) == "" {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "field.create", "type and label are required")
			return
		}

		field, err := app.Store.CreateField(r.Context(), stepId, input)
		if errors.Is(err, store.ErrNotFound) {
			httpx.LogNotFound(w, "create_field.step", stepId)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.insert_field", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, field)
	}
}

func UpdateField(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fieldId, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		patch := store.FieldPatch{}
		err = render.DecodeJSON(r.Body, &patch)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		field, err := app.Store.UpdateField(r.Context(), fieldId, patch)
		if errors.Is(err, store.ErrNotFound) {
			httpx.LogNotFound(w, "update_field", fieldId)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.update_field", err)
			return
		}

		render.JSON(w, r, field)
	}
}

func DeleteField(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fieldId, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		found, err := app.Store.DeleteField(r.Context(), fieldId)
		if err != nil {
			httpx.LogInternalError(w, "db.delete_field", err)
			return
		}
		if !found {
			httpx.LogNotFound(w, "delete_field", fieldId)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ReorderFields(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stepId, err := strconv.Atoi(chi.URLParam(r, "stepId"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.stepId")
			return
		}

		var body struct {
			Fields []store.ReorderItem `json:"fields"`
		}
		err = render.DecodeJSON(r.Body, &body)
		if err != nil || body.Fields == nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		err = app.Store.ReorderFields(r.Context(), stepId, body.Fields)
		if err != nil {
			httpx.LogInternalError(w, "db.reorder_fields", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
