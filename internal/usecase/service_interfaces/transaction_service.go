package service_interfaces

import (
	"context"

	"github.com/api-sage/ledger-accounting-service/internal/adapter/http/models"
	"github.com/api-sage/ledger-accounting-service/internal/commons"
)

type TransactionService interface {
	RecordTransaction(ctx context.Context, req models.RecordTransactionRequest) (commons.Response[models.RecordTransactionResponse], error)
	ListTransactions(ctx context.Context, ledgerID string) (commons.Response[models.ListTransactionsResponse], error)
}
