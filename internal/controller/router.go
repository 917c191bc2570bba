package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/unclebandit/customer-lookup/internal/middleware"
)

// NewRouter wires the customer API routes and middleware.
func NewRouter(customers *CustomerController, log *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.LogRequest(log))
	r.Use(middleware.Recover(log))
	r.Use(middleware.CORS)

	r.Get("/", customers.Home)

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.RejectNonJSON)
		api.Use(middleware.JSONResponse)

		api.Get("/customers/{id}", customers.GetCustomer)
	})

	return r
}
