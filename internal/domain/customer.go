package domain

import "time"

// Customer references exactly one ledger. A customer row without a ledger
// reference must never be observable after creation.
type Customer struct {
	ID          string
	FullName    string
	Address     string
	PhoneNumber string
	LedgerID    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
