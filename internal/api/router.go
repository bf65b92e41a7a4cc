package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/samandr77/microservices/factoring/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Group(func(r chi.Router) {
			r.Use(mw.APIKeyAuth)
			r.Post("/sellers", h.CreateSeller)
			r.Put("/sellers/{sellerId}", h.UpdateSeller)
			r.Post("/invoices", h.CreateInvoice)
			r.Get("/invoices/{invoiceId}", h.Invoice)
		})

		r.Post("/webhooks/invoices", h.InvoiceWebhook)
	})

	return mux
}
