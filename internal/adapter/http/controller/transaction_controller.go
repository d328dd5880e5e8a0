package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/api-sage/ledger-accounting-service/internal/adapter/http/models"
	"github.com/api-sage/ledger-accounting-service/internal/commons"
	"github.com/api-sage/ledger-accounting-service/internal/logger"
)

type TransactionService interface {
	RecordTransaction(ctx context.Context, req models.RecordTransactionRequest) (commons.Response[models.RecordTransactionResponse], error)
	ListTransactions(ctx context.Context, ledgerID string) (commons.Response[models.ListTransactionsResponse], error)
}

type TransactionController struct {
	service TransactionService
}

func NewTransactionController(service TransactionService) *TransactionController {
	return &TransactionController{service: service}
}

func (c *TransactionController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/users/performTransaction", c.performTransaction)
	mux.HandleFunc("/api/users/getAllTransactions/{ledgerID}", c.listTransactions)
}

func (c *TransactionController) performTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.RecordTransactionResponse](http.StatusMethodNotAllowed, "method not allowed"))
		return
	}

	var req models.RecordTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.RecordTransactionResponse](http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.RecordTransaction(r.Context(), req)
	if err != nil {
		logError(r, err, logger.Fields{"ledgerId": req.LedgerID})
	}
	writeJSON(w, response.StatusCode, response)
}

func (c *TransactionController) listTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.ListTransactionsResponse](http.StatusMethodNotAllowed, "method not allowed"))
		return
	}

	ledgerID := r.PathValue("ledgerID")
	logRequest(r, nil)

	response, err := c.service.ListTransactions(r.Context(), ledgerID)
	if err != nil {
		logError(r, err, logger.Fields{"ledgerId": ledgerID})
	}
	writeJSON(w, response.StatusCode, response)
}
