package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeCredit TransactionType = "CREDIT"
	TransactionTypeDebit  TransactionType = "DEBIT"
)

// Transaction is an append-only record owned by exactly one ledger. Amount is
// always strictly positive; the direction comes from Type. ImgURLs holds the
// evidentiary attachments captured with the transaction.
type Transaction struct {
	ID        string
	LedgerID  string
	Amount    decimal.Decimal
	Type      TransactionType
	ImgURLs   []string
	CreatedAt time.Time
}
