package repo_interfaces

import (
	"context"

	"github.com/api-sage/ledger-accounting-service/internal/domain"
)

type CustomerRepository interface {
	// CreateWithLedger creates a zero-balance ledger and the customer
	// referencing it in one atomic step. Neither row is visible unless both
	// creates succeed.
	CreateWithLedger(ctx context.Context, customer domain.Customer) (domain.Customer, domain.Ledger, error)
	Search(ctx context.Context, value string) ([]domain.Customer, error)
}
