package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/api-sage/ledger-accounting-service/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/ledger-accounting-service/internal/commons"
	"github.com/api-sage/ledger-accounting-service/internal/domain"
	"github.com/api-sage/ledger-accounting-service/internal/logger"
	"github.com/shopspring/decimal"
)

type CustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) CreateWithLedger(ctx context.Context, customer domain.Customer) (domain.Customer, domain.Ledger, error) {
	logger.Info("customer repository create with ledger", logger.Fields{
		"fullName": customer.FullName,
	})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("customer repository begin tx failed", err, nil)
		return domain.Customer{}, domain.Ledger{}, fmt.Errorf("begin create customer transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const createLedgerQuery = `
INSERT INTO ledgers (balance, status)
VALUES (0, 'NONE')
RETURNING id, created_at, updated_at`

	ledger := domain.Ledger{
		Balance: decimal.Zero,
		Status:  domain.LedgerStatusNone,
	}
	if err = tx.QueryRowContext(ctx, createLedgerQuery).Scan(&ledger.ID, &ledger.CreatedAt, &ledger.UpdatedAt); err != nil {
		logger.Error("customer repository create ledger failed", err, nil)
		return domain.Customer{}, domain.Ledger{}, fmt.Errorf("create ledger: %w", commons.ErrLedgerCreationFailed)
	}
	if ledger.ID == "" {
		err = commons.ErrLedgerCreationFailed
		return domain.Customer{}, domain.Ledger{}, err
	}

	const createCustomerQuery = `
INSERT INTO customers (full_name, address, phone_number, ledger_id)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at, updated_at`

	customer.LedgerID = ledger.ID
	if err = tx.QueryRowContext(
		ctx,
		createCustomerQuery,
		customer.FullName,
		customer.Address,
		customer.PhoneNumber,
		customer.LedgerID,
	).Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt); err != nil {
		logger.Error("customer repository create customer failed", err, logger.Fields{
			"ledgerId": ledger.ID,
		})
		return domain.Customer{}, domain.Ledger{}, fmt.Errorf("create customer: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.Error("customer repository commit tx failed", err, nil)
		return domain.Customer{}, domain.Ledger{}, fmt.Errorf("commit create customer transaction: %w", err)
	}

	logger.Info("customer repository create with ledger success", logger.Fields{
		"customerId": customer.ID,
		"ledgerId":   ledger.ID,
	})

	return customer, ledger, nil
}

func (r *CustomerRepository) Search(ctx context.Context, value string) ([]domain.Customer, error) {
	logger.Info("customer repository search", logger.Fields{
		"value": value,
	})

	const query = `
SELECT id, full_name, address, phone_number, ledger_id, created_at, updated_at
FROM customers
WHERE full_name ILIKE '%' || $1 || '%'
   OR phone_number ILIKE '%' || $1 || '%'
   OR address ILIKE '%' || $1 || '%'
ORDER BY full_name ASC`

	rows, err := r.db.QueryContext(ctx, query, value)
	if err != nil {
		logger.Error("customer repository search failed", err, logger.Fields{
			"value": value,
		})
		return nil, fmt.Errorf("search customers: %w", err)
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		var customer domain.Customer
		if err := rows.Scan(
			&customer.ID,
			&customer.FullName,
			&customer.Address,
			&customer.PhoneNumber,
			&customer.LedgerID,
			&customer.CreatedAt,
			&customer.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		customers = append(customers, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customer rows: %w", err)
	}

	logger.Info("customer repository search success", logger.Fields{
		"value": value,
		"count": len(customers),
	})

	return customers, nil
}

var _ repo_interfaces.CustomerRepository = (*CustomerRepository)(nil)
