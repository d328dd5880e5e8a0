package events

import (
	"time"

	"github.com/shopspring/decimal"
)

const TopicTransactionRecorded = "transaction.recorded"

type Publisher interface {
	Publish(topic string, event any) error
}

// TransactionRecorded is emitted after a transaction and its ledger update
// have committed together.
type TransactionRecorded struct {
	TransactionID string          `json:"transactionId"`
	LedgerID      string          `json:"ledgerId"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Balance       decimal.Decimal `json:"balance"`
	Status        string          `json:"status"`
	OccurredAt    time.Time       `json:"occurredAt"`
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(string, any) error {
	return nil
}
