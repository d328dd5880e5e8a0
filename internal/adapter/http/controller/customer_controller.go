package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/api-sage/ledger-accounting-service/internal/adapter/http/models"
	"github.com/api-sage/ledger-accounting-service/internal/commons"
	"github.com/api-sage/ledger-accounting-service/internal/logger"
)

type CustomerService interface {
	CreateCustomer(ctx context.Context, req models.CreateCustomerRequest) (commons.Response[models.CreateCustomerResponse], error)
	SearchCustomers(ctx context.Context, value string) (commons.Response[models.SearchCustomersResponse], error)
}

type CustomerController struct {
	service CustomerService
}

func NewCustomerController(service CustomerService) *CustomerController {
	return &CustomerController{service: service}
}

func (c *CustomerController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/users/createNewCustomer", c.createCustomer)
	mux.HandleFunc("/api/users/search", c.searchCustomers)
}

func (c *CustomerController) createCustomer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.CreateCustomerResponse](http.StatusMethodNotAllowed, "method not allowed"))
		return
	}

	var req models.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.CreateCustomerResponse](http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.CreateCustomer(r.Context(), req)
	if err != nil {
		logError(r, err, nil)
	}
	writeJSON(w, response.StatusCode, response)
}

func (c *CustomerController) searchCustomers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.SearchCustomersResponse](http.StatusMethodNotAllowed, "method not allowed"))
		return
	}

	value := r.URL.Query().Get("value")
	logRequest(r, nil)

	response, err := c.service.SearchCustomers(r.Context(), value)
	if err != nil {
		logError(r, err, logger.Fields{"value": value})
	}
	writeJSON(w, response.StatusCode, response)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
