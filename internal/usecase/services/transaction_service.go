package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/api-sage/ledger-accounting-service/internal/adapter/events"
	"github.com/api-sage/ledger-accounting-service/internal/adapter/http/models"
	"github.com/api-sage/ledger-accounting-service/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/ledger-accounting-service/internal/commons"
	"github.com/api-sage/ledger-accounting-service/internal/domain"
	"github.com/api-sage/ledger-accounting-service/internal/logger"
	"github.com/api-sage/ledger-accounting-service/internal/usecase/service_interfaces"
)

type TransactionService struct {
	transactionRepo repo_interfaces.TransactionRepository
	publisher       events.Publisher
}

func NewTransactionService(transactionRepo repo_interfaces.TransactionRepository, publisher events.Publisher) *TransactionService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &TransactionService{
		transactionRepo: transactionRepo,
		publisher:       publisher,
	}
}

func (s *TransactionService) RecordTransaction(ctx context.Context, req models.RecordTransactionRequest) (commons.Response[models.RecordTransactionResponse], error) {
	logger.Info("transaction service record transaction request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("transaction service record transaction validation failed", err, nil)
		return commons.ErrorResponse[models.RecordTransactionResponse](http.StatusBadRequest, "All fields are required", err.Error()), err
	}

	ledgerID := strings.TrimSpace(req.LedgerID)
	txType := domain.TransactionType(strings.ToUpper(strings.TrimSpace(req.TypeOfTransaction)))

	txn, ledger, err := s.transactionRepo.Record(ctx, ledgerID, req.Amount, txType, req.ImgUrls)
	if err != nil {
		switch {
		case errors.Is(err, commons.ErrRecordNotFound):
			return commons.ErrorResponse[models.RecordTransactionResponse](http.StatusBadRequest, "Customer Ledger Not Found!"), err
		case errors.Is(err, domain.ErrInvalidTransactionType), errors.Is(err, domain.ErrInvalidAmount):
			return commons.ErrorResponse[models.RecordTransactionResponse](http.StatusBadRequest, err.Error()), err
		default:
			logger.Error("transaction service record transaction failed", err, logger.Fields{
				"ledgerId": ledgerID,
			})
			return commons.ErrorResponse[models.RecordTransactionResponse](http.StatusInternalServerError, "Internal server error. Please try again later."), err
		}
	}

	s.publishRecorded(txn, ledger)

	logger.Info("transaction service record transaction success", logger.Fields{
		"transactionId": txn.ID,
		"ledgerId":      ledger.ID,
		"balance":       ledger.Balance,
		"status":        ledger.Status,
	})

	return commons.SuccessResponse(http.StatusCreated, models.RecordTransactionResponse{
		TransactionID:       txn.ID,
		LedgerID:            ledger.ID,
		AmountOfTransaction: txn.Amount.StringFixed(2),
		BalanceOfLedger:     ledger.Balance.StringFixed(2),
		StatusOfLedger:      string(ledger.Status),
	}), nil
}

func (s *TransactionService) ListTransactions(ctx context.Context, ledgerID string) (commons.Response[models.ListTransactionsResponse], error) {
	logger.Info("transaction service list transactions request", logger.Fields{
		"ledgerId": ledgerID,
	})

	trimmed := strings.TrimSpace(ledgerID)
	if trimmed == "" {
		err := errors.New("ledgerID is required")
		return commons.ErrorResponse[models.ListTransactionsResponse](http.StatusBadRequest, "Details Incomplete"), err
	}

	transactions, err := s.transactionRepo.ListByLedgerID(ctx, trimmed)
	if err != nil {
		logger.Error("transaction service list transactions failed", err, logger.Fields{
			"ledgerId": trimmed,
		})
		return commons.ErrorResponse[models.ListTransactionsResponse](http.StatusInternalServerError, "Internal server error. Please try again later."), err
	}

	items := make([]models.TransactionItem, 0, len(transactions))
	for _, txn := range transactions {
		items = append(items, models.TransactionItem{
			ID:        txn.ID,
			LedgerID:  txn.LedgerID,
			Amount:    txn.Amount.StringFixed(2),
			Type:      string(txn.Type),
			ImgUrls:   txn.ImgURLs,
			CreatedAt: txn.CreatedAt.Format(time.RFC3339),
		})
	}

	return commons.SuccessResponse(http.StatusOK, models.ListTransactionsResponse{
		Transactions: items,
	}), nil
}

// publishRecorded is best-effort: the transaction is already committed, so a
// broker failure is logged and never surfaced to the caller.
func (s *TransactionService) publishRecorded(txn domain.Transaction, ledger domain.Ledger) {
	event := events.TransactionRecorded{
		TransactionID: txn.ID,
		LedgerID:      ledger.ID,
		Amount:        txn.Amount,
		Type:          string(txn.Type),
		Balance:       ledger.Balance,
		Status:        string(ledger.Status),
		OccurredAt:    time.Now().UTC(),
	}

	if err := s.publisher.Publish(events.TopicTransactionRecorded, event); err != nil {
		logger.Error("transaction service publish event failed", err, logger.Fields{
			"transactionId": txn.ID,
			"ledgerId":      ledger.ID,
		})
	}
}

var _ service_interfaces.TransactionService = (*TransactionService)(nil)
