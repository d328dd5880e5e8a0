package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/api-sage/ledger-accounting-service/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/ledger-accounting-service/internal/commons"
	"github.com/api-sage/ledger-accounting-service/internal/domain"
	"github.com/api-sage/ledger-accounting-service/internal/logger"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Record runs the whole recording step inside one database transaction. The
// ledger row is locked with FOR UPDATE so concurrent records against the same
// ledger serialize on the row lock; the balance is always recomputed from the
// locked row, never from a previously read value.
func (r *TransactionRepository) Record(ctx context.Context, ledgerID string, amount decimal.Decimal, txType domain.TransactionType, imgURLs []string) (domain.Transaction, domain.Ledger, error) {
	logger.Info("transaction repository record", logger.Fields{
		"ledgerId": ledgerID,
		"amount":   amount,
		"type":     txType,
	})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("transaction repository begin tx failed", err, nil)
		return domain.Transaction{}, domain.Ledger{}, fmt.Errorf("begin record transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const lockLedgerQuery = `
SELECT id, balance, status, created_at, updated_at
FROM ledgers
WHERE id::text = $1
FOR UPDATE`

	var ledger domain.Ledger
	if err = tx.QueryRowContext(ctx, lockLedgerQuery, ledgerID).Scan(
		&ledger.ID,
		&ledger.Balance,
		&ledger.Status,
		&ledger.CreatedAt,
		&ledger.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Info("transaction repository ledger not found", logger.Fields{
				"ledgerId": ledgerID,
			})
			err = commons.ErrRecordNotFound
			return domain.Transaction{}, domain.Ledger{}, err
		}
		logger.Error("transaction repository lock ledger failed", err, logger.Fields{
			"ledgerId": ledgerID,
		})
		return domain.Transaction{}, domain.Ledger{}, fmt.Errorf("lock ledger: %w", err)
	}

	var next domain.Ledger
	next, err = ledger.Apply(amount, txType)
	if err != nil {
		logger.Info("transaction repository transaction rejected", logger.Fields{
			"ledgerId": ledgerID,
			"reason":   err.Error(),
		})
		return domain.Transaction{}, domain.Ledger{}, err
	}

	const createTransactionQuery = `
INSERT INTO transactions (ledger_id, amount, type, img_urls)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`

	txn := domain.Transaction{
		LedgerID: ledger.ID,
		Amount:   amount,
		Type:     txType,
		ImgURLs:  imgURLs,
	}
	if err = tx.QueryRowContext(
		ctx,
		createTransactionQuery,
		ledger.ID,
		amount,
		txType,
		pq.Array(imgURLs),
	).Scan(&txn.ID, &txn.CreatedAt); err != nil {
		logger.Error("transaction repository create transaction failed", err, logger.Fields{
			"ledgerId": ledgerID,
		})
		return domain.Transaction{}, domain.Ledger{}, fmt.Errorf("create transaction: %w", err)
	}

	const updateLedgerQuery = `
UPDATE ledgers
SET balance = $2,
    status = $3,
    updated_at = NOW()
WHERE id = $1
RETURNING updated_at`

	if err = tx.QueryRowContext(ctx, updateLedgerQuery, next.ID, next.Balance, next.Status).Scan(&next.UpdatedAt); err != nil {
		logger.Error("transaction repository update ledger failed", err, logger.Fields{
			"ledgerId": ledgerID,
		})
		return domain.Transaction{}, domain.Ledger{}, fmt.Errorf("update ledger: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.Error("transaction repository commit tx failed", err, logger.Fields{
			"ledgerId": ledgerID,
		})
		return domain.Transaction{}, domain.Ledger{}, fmt.Errorf("commit record transaction: %w", err)
	}

	logger.Info("transaction repository record success", logger.Fields{
		"transactionId": txn.ID,
		"ledgerId":      next.ID,
		"balance":       next.Balance,
		"status":        next.Status,
	})

	return txn, next, nil
}

func (r *TransactionRepository) ListByLedgerID(ctx context.Context, ledgerID string) ([]domain.Transaction, error) {
	logger.Info("transaction repository list by ledger id", logger.Fields{
		"ledgerId": ledgerID,
	})

	const query = `
SELECT id, ledger_id, amount, type, img_urls, created_at
FROM transactions
WHERE ledger_id::text = $1
ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, ledgerID)
	if err != nil {
		logger.Error("transaction repository list failed", err, logger.Fields{
			"ledgerId": ledgerID,
		})
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		var txn domain.Transaction
		if err := rows.Scan(
			&txn.ID,
			&txn.LedgerID,
			&txn.Amount,
			&txn.Type,
			pq.Array(&txn.ImgURLs),
			&txn.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		transactions = append(transactions, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}

	logger.Info("transaction repository list success", logger.Fields{
		"ledgerId": ledgerID,
		"count":    len(transactions),
	})

	return transactions, nil
}

var _ repo_interfaces.TransactionRepository = (*TransactionRepository)(nil)
