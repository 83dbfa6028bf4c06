package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/linenlady/inventory/pkg/app"
	"github.com/linenlady/inventory/services/inventory/application/handlers"
	appsvcs "github.com/linenlady/inventory/services/inventory/application/services"
)

// InventoryRoutes registers all inventory endpoints on the provided chi router.
func InventoryRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)

	r.Route("/items", func(r chi.Router) {
		r.Post("/", handlers.NewCreateItemHandler(svcs).Execute)
		r.Get("/", handlers.NewListItemsHandler(svcs).Execute)

		r.Route("/{itemID}", func(r chi.Router) {
			r.Get("/", handlers.NewGetItemHandler(svcs).Execute)
			r.Patch("/", handlers.NewPatchItemHandler(svcs).Execute)
			r.Delete("/", handlers.NewDeleteItemHandler(svcs).Execute)
			r.Post("/undelete", handlers.NewUndeleteItemHandler(svcs).Execute)
			r.Post("/publish", handlers.NewPublishItemHandler(svcs).Execute)
			r.Post("/unpublish", handlers.NewUnpublishItemHandler(svcs).Execute)
			r.Post("/embedding/refresh", handlers.NewRefreshEmbeddingHandler(svcs).Execute)

			r.Route("/images", func(r chi.Router) {
				r.Get("/", handlers.NewListImagesHandler(svcs).Execute)
				r.Post("/", handlers.NewAttachImageHandler(svcs).Execute)
				r.Post("/upload-url", handlers.NewItemUploadURLHandler(svcs).Execute)
				r.Delete("/{imageID}", handlers.NewRemoveImageHandler(svcs).Execute)
			})
		})
	})

	r.Route("/intake/sessions", func(r chi.Router) {
		r.Post("/", handlers.NewCreateSessionHandler(svcs).Execute)

		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", handlers.NewGetSessionHandler(svcs).Execute)
			r.Post("/photos", handlers.NewAttachPhotoHandler(svcs).Execute)
			r.Get("/photos", handlers.NewListPhotosHandler(svcs).Execute)
			r.Post("/upload-url", handlers.NewSessionUploadURLHandler(svcs).Execute)
			r.Post("/consume", handlers.NewConsumeSessionHandler(svcs).Execute)
			r.Post("/abandon", handlers.NewAbandonSessionHandler(svcs).Execute)
		})
	})
}
