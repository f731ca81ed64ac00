package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/grocerylist/pkg/app"
	"github.com/ghuser/grocerylist/services/grocery/application/handlers"
	appsvcs "github.com/ghuser/grocerylist/services/grocery/application/services"
	"github.com/ghuser/grocerylist/services/grocery/application/views"
)

// Routes registers the HTML pages on r and the JSON item endpoints under /api.
// Both share one set of services so they see the same store.
func Routes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	PageRoutes(r, a, svcs)
	r.Route("/api", func(r chi.Router) {
		ItemRoutes(r, a, svcs)
	})
}

// PageRoutes registers the server-rendered list page, its form posts and static assets.
// Form endpoints accept every method; anything but POST redirects to "/".
func PageRoutes(r chi.Router, a *app.Application, svcs *appsvcs.Services) {
	pages := handlers.NewPageHandler(svcs, a.SessionStore, a.Logger)
	idPath := "/{" + handlers.ItemIDParam + "}"

	r.Get("/", pages.Index)
	r.Get("/edit"+idPath, pages.Edit)
	r.HandleFunc("/add", pages.Mutation(appsvcs.CommandAdd))
	r.HandleFunc("/update"+idPath, pages.Mutation(appsvcs.CommandRename))
	r.HandleFunc("/toggle"+idPath, pages.Mutation(appsvcs.CommandToggle))
	r.HandleFunc("/delete"+idPath, pages.Mutation(appsvcs.CommandDelete))
	r.Handle("/static/*", http.StripPrefix("/static/", views.Static()))
}

// ItemRoutes registers the JSON item endpoints on the provided chi router.
func ItemRoutes(r chi.Router, a *app.Application, svcs *appsvcs.Services) {
	prod := a.IsProduction()
	r.Route("/items", func(r chi.Router) {
		r.Get("/", handlers.NewListItemsHandler(svcs, prod).Execute)
		r.Post("/", handlers.NewPostItemHandler(svcs, prod).Execute)
		r.Route("/{"+handlers.ItemIDParam+"}", func(r chi.Router) {
			r.Get("/", handlers.NewGetItemHandler(svcs, prod).Execute)
			r.Put("/", handlers.NewPutItemHandler(svcs, prod).Execute)
			r.Delete("/", handlers.NewDeleteItemHandler(svcs, prod).Execute)
			r.Post("/toggle", handlers.NewToggleItemHandler(svcs, prod).Execute)
		})
	})
}
