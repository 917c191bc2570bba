// internal/controller/customer_controller.go
package controller

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	appErrors "github.com/unclebandit/customer-lookup/internal/errors"
	"github.com/unclebandit/customer-lookup/internal/model"
	"github.com/unclebandit/customer-lookup/internal/service"
)

type CustomerController struct {
	CustomerService *service.CustomerService
	Log             *zap.Logger
}

func (c *CustomerController) Home(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "customer service end point here")
}

func (c *CustomerController) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	customer, err := c.CustomerService.GetCustomer(r.Context(), id)
	if err != nil {
		if appErrors.IsNotFound(err) {
			writeJSON(w, http.StatusNotFound, model.ErrorMessage{Message: err.Error()})
			return
		}
		if c.Log != nil {
			c.Log.Error("failed to fetch customer", zap.String("customer_id", id), zap.Error(err))
		}
		writeJSON(w, http.StatusInternalServerError, model.ErrorMessage{Message: "failed to fetch customer"})
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
