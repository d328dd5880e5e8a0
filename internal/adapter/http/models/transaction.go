package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type RecordTransactionRequest struct {
	CustomerID        string          `json:"customerID"`
	LedgerID          string          `json:"ledgerID"`
	Amount            decimal.Decimal `json:"amount"`
	TypeOfTransaction string          `json:"typeOfTransaction"`
	ImgUrls           []string        `json:"imgUrls"`
}

// Validate checks field presence only; whether the amount and type are
// acceptable for the ledger is decided by the ledger itself.
func (r RecordTransactionRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.CustomerID) == "" {
		errs = append(errs, "customerID is required")
	}
	if strings.TrimSpace(r.LedgerID) == "" {
		errs = append(errs, "ledgerID is required")
	}
	if r.Amount.IsZero() {
		errs = append(errs, "amount is required")
	}
	if strings.TrimSpace(r.TypeOfTransaction) == "" {
		errs = append(errs, "typeOfTransaction is required")
	}
	if len(r.ImgUrls) == 0 {
		errs = append(errs, "imgUrls is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type RecordTransactionResponse struct {
	TransactionID       string `json:"transactionId"`
	LedgerID            string `json:"ledgerId"`
	AmountOfTransaction string `json:"amountOfTransaction"`
	BalanceOfLedger     string `json:"balanceOfLedger"`
	StatusOfLedger      string `json:"statusOfLedger"`
}

type TransactionItem struct {
	ID        string   `json:"id"`
	LedgerID  string   `json:"ledgerId"`
	Amount    string   `json:"amount"`
	Type      string   `json:"type"`
	ImgUrls   []string `json:"imgUrls"`
	CreatedAt string   `json:"createdAt"`
}

type ListTransactionsResponse struct {
	Transactions []TransactionItem `json:"transactions"`
}
