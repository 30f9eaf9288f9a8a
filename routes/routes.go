package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mbolis/form-weaver/app"
	"github.com/mbolis/form-weaver/routes/middlewares"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Mount("/api", apiRouter(app))
	root.Mount("/", servePublicFiles())

	return root
}

func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()

	// public endpoints: form filling does not require a login
	api.Get(`/public/forms/{id:^\d+$}`, PublicGetForm(app))
	api.Post(`/public/forms/{id:^\d+$}/submissions`, PublicSubmitForm(app))

	api.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticated(app.TokenSecret))

		// CRUD form
		r.Get("/forms", ListForms(app))
		r.Post("/forms", CreateForm(app))
		r.Post("/forms/create-complete", CreateCompleteForm(app))
		r.Get(`/forms/{id:^\d+$}`, GetForm(app))
		r.Put(`/forms/{id:^\d+$}`, UpdateForm(app))
		r.Delete(`/forms/{id:^\d+$}`, DeleteForm(app))
		r.Post(`/forms/{id:^\d+$}/publish`, PublishForm(app))
		r.Get(`/forms/{id:^\d+$}/submissions`, ListSubmissions(app))

		// steps
		r.Post(`/forms/{formId:^\d+$}/steps`, CreateStep(app))
		r.Post(`/forms/{formId:^\d+$}/steps/reorder`, ReorderSteps(app))
		r.Put(`/steps/{id:^\d+$}`, UpdateStep(app))
		r.Delete(`/steps/{id:^\d+$}`, DeleteStep(app))

		// fields
		r.Post(`/steps/{stepId:^\d+$}/fields`, CreateField(app))
		r.Post(`/steps/{stepId:^\d+$}/fields/reorder`, ReorderFields(app))
		r.Put(`/fields/{id:^\d+$}`, UpdateField(app))
		r.Delete(`/fields/{id:^\d+$}`, DeleteField(app))

		// AI drafting
		r.Post("/ai/generate-form", GenerateForm(app))

		// template catalog
		r.Get("/templates", ListTemplates(app))
		r.Get(`/templates/{id:^\d+$}`, GetTemplate(app))
	})

	api.Post("/login", Login(app))
	api.Post("/refresh", Refresh(app))

	return api
}

func servePublicFiles() http.Handler {
	return http.FileServer(http.Dir("public"))
}
