package repo_interfaces

import (
	"context"

	"github.com/api-sage/ledger-accounting-service/internal/domain"
	"github.com/shopspring/decimal"
)

type TransactionRepository interface {
	// Record appends one transaction to the ledger identified by ledgerID and
	// moves the ledger to its next (balance, status) state, all-or-nothing.
	// Updates against the same ledger are serialized; unrelated ledgers are not.
	// Returns commons.ErrRecordNotFound when the ledger does not exist and the
	// ledger engine's error when the transaction is rejected; in both cases
	// nothing is written.
	Record(ctx context.Context, ledgerID string, amount decimal.Decimal, txType domain.TransactionType, imgURLs []string) (domain.Transaction, domain.Ledger, error)
	ListByLedgerID(ctx context.Context, ledgerID string) ([]domain.Transaction, error)
}
