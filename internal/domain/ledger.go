package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type LedgerStatus string

const (
	LedgerStatusGain LedgerStatus = "GAIN"
	LedgerStatusLoss LedgerStatus = "LOSS"
	LedgerStatusNone LedgerStatus = "NONE"
)

// Ledger stores the customer's net position as an (absolute balance, status)
// pair. The signed balance is positive when the customer owes the institution
// (GAIN), negative when the institution owes the customer (LOSS) and zero when
// settled (NONE). Balance is always non-negative; the direction lives in Status.
type Ledger struct {
	ID        string
	Balance   decimal.Decimal
	Status    LedgerStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SignedBalance decodes the stored (balance, status) pair into the true net
// position. The sign is always re-derived from Status, never assumed.
func (l Ledger) SignedBalance() decimal.Decimal {
	switch l.Status {
	case LedgerStatusGain:
		return l.Balance
	case LedgerStatusLoss:
		return l.Balance.Neg()
	default:
		return decimal.Zero
	}
}

// Apply runs one transaction through the ledger and returns the resulting
// ledger state. CREDIT extends more credit to the customer and pushes the
// signed balance up; DEBIT records a repayment and pulls it down. The returned
// ledger always satisfies balance >= 0 with status matching the sign of the
// signed balance. On rejection the receiver is returned unchanged.
func (l Ledger) Apply(amount decimal.Decimal, txType TransactionType) (Ledger, error) {
	if !amount.IsPositive() {
		return l, ErrInvalidAmount
	}

	signed := l.SignedBalance()
	switch txType {
	case TransactionTypeCredit:
		signed = signed.Add(amount)
	case TransactionTypeDebit:
		signed = signed.Sub(amount)
	default:
		return l, ErrInvalidTransactionType
	}

	next := l
	switch {
	case signed.IsPositive():
		next.Status = LedgerStatusGain
	case signed.IsNegative():
		next.Status = LedgerStatusLoss
	default:
		next.Status = LedgerStatusNone
	}
	next.Balance = signed.Abs()

	return next, nil
}
