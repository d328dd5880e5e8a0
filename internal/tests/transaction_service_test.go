package services_test

import (
	"context"
	"testing"

	"github.com/api-sage/ledger-accounting-service/internal/adapter/http/models"
	"github.com/api-sage/ledger-accounting-service/internal/adapter/repository/memory"
	"github.com/api-sage/ledger-accounting-service/internal/usecase/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

func newLedgerForTest(t *testing.T, store *memory.Store) string {
	t.Helper()
	customerSvc := services.NewCustomerService(store)
	resp, err := customerSvc.CreateCustomer(context.Background(), models.CreateCustomerRequest{
		FullName:    "Test Customer",
		Address:     "1 Test Street",
		PhoneNumber: "9999999999",
	})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return resp.Data.LedgerID
}

func recordRequest(ledgerID string, amount int64, txType string) models.RecordTransactionRequest {
	return models.RecordTransactionRequest{
		CustomerID:        "customer-1",
		LedgerID:          ledgerID,
		Amount:            decimal.NewFromInt(amount),
		TypeOfTransaction: txType,
		ImgUrls:           []string{"https://img.example/receipt.png"},
	}
}

func TestTransactionServiceRecordTransactionValidationError(t *testing.T) {
	svc := services.NewTransactionService(nil, nil)

	resp, err := svc.RecordTransaction(context.Background(), models.RecordTransactionRequest{})
	if err == nil {
		t.Fatal("expected validation error for empty record request")
	}
	if resp.StatusCode != 400 {
		t.Fatalf("statusCode = %d, want 400", resp.StatusCode)
	}
}

func TestTransactionServiceRecordTransactionLedgerNotFound(t *testing.T) {
	store := memory.NewStore()
	svc := services.NewTransactionService(store, nil)

	resp, err := svc.RecordTransaction(context.Background(), recordRequest("missing-ledger", 100, "CREDIT"))
	if err == nil {
		t.Fatal("expected error for unknown ledger")
	}
	if resp.StatusCode != 400 {
		t.Fatalf("statusCode = %d, want 400", resp.StatusCode)
	}
	if len(resp.Errors) == 0 || resp.Errors[0] != "Customer Ledger Not Found!" {
		t.Fatalf("errors = %v, want ledger-not-found message", resp.Errors)
	}
}

func TestTransactionServiceRecordTransactionInvalidType(t *testing.T) {
	store := memory.NewStore()
	svc := services.NewTransactionService(store, nil)
	ledgerID := newLedgerForTest(t, store)

	resp, err := svc.RecordTransaction(context.Background(), recordRequest(ledgerID, 100, "REFUND"))
	if err == nil {
		t.Fatal("expected error for invalid transaction type")
	}
	if resp.StatusCode != 400 {
		t.Fatalf("statusCode = %d, want 400", resp.StatusCode)
	}

	ledger, err := store.GetLedger(context.Background(), ledgerID)
	if err != nil {
		t.Fatalf("get ledger: %v", err)
	}
	if !ledger.Balance.IsZero() || ledger.Status != "NONE" {
		t.Fatalf("ledger mutated by rejected transaction: (%s, %s)", ledger.Balance, ledger.Status)
	}
	transactions, err := store.ListByLedgerID(context.Background(), ledgerID)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(transactions) != 0 {
		t.Fatalf("rejected transaction was persisted: %d rows", len(transactions))
	}
}

func TestTransactionServiceRecordTransactionNegativeAmount(t *testing.T) {
	store := memory.NewStore()
	svc := services.NewTransactionService(store, nil)
	ledgerID := newLedgerForTest(t, store)

	resp, err := svc.RecordTransaction(context.Background(), recordRequest(ledgerID, -5, "DEBIT"))
	if err == nil {
		t.Fatal("expected error for negative amount")
	}
	if resp.StatusCode != 400 {
		t.Fatalf("statusCode = %d, want 400", resp.StatusCode)
	}
}

func TestTransactionServiceRecordTransactionSuccess(t *testing.T) {
	store := memory.NewStore()
	svc := services.NewTransactionService(store, nil)
	ledgerID := newLedgerForTest(t, store)

	resp, err := svc.RecordTransaction(context.Background(), recordRequest(ledgerID, 100, "CREDIT"))
	if err != nil {
		t.Fatalf("record credit: %v", err)
	}
	if resp.StatusCode != 201 || resp.Data == nil {
		t.Fatalf("response = %+v, want 201 with data", resp)
	}
	if resp.Data.BalanceOfLedger != "100.00" || resp.Data.StatusOfLedger != "GAIN" {
		t.Fatalf("ledger after credit = (%s, %s), want (100.00, GAIN)", resp.Data.BalanceOfLedger, resp.Data.StatusOfLedger)
	}
	if resp.Data.TransactionID == "" || resp.Data.LedgerID != ledgerID {
		t.Fatalf("unexpected identifiers in response: %+v", resp.Data)
	}

	resp, err = svc.RecordTransaction(context.Background(), recordRequest(ledgerID, 150, "DEBIT"))
	if err != nil {
		t.Fatalf("record debit: %v", err)
	}
	if resp.Data.BalanceOfLedger != "50.00" || resp.Data.StatusOfLedger != "LOSS" {
		t.Fatalf("ledger after debit = (%s, %s), want (50.00, LOSS)", resp.Data.BalanceOfLedger, resp.Data.StatusOfLedger)
	}
}

func TestTransactionServiceListTransactionsMissingLedgerID(t *testing.T) {
	svc := services.NewTransactionService(nil, nil)

	resp, err := svc.ListTransactions(context.Background(), "")
	if err == nil {
		t.Fatal("expected error for missing ledger id")
	}
	if resp.StatusCode != 400 {
		t.Fatalf("statusCode = %d, want 400", resp.StatusCode)
	}
}

func TestTransactionServiceListTransactionsReturnsRecorded(t *testing.T) {
	store := memory.NewStore()
	svc := services.NewTransactionService(store, nil)
	ledgerID := newLedgerForTest(t, store)

	for _, amount := range []int64{10, 20, 30} {
		if _, err := svc.RecordTransaction(context.Background(), recordRequest(ledgerID, amount, "CREDIT")); err != nil {
			t.Fatalf("record credit %d: %v", amount, err)
		}
	}

	resp, err := svc.ListTransactions(context.Background(), ledgerID)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if resp.StatusCode != 200 || resp.Data == nil {
		t.Fatalf("response = %+v, want 200 with data", resp)
	}
	if len(resp.Data.Transactions) != 3 {
		t.Fatalf("transactions = %d, want 3", len(resp.Data.Transactions))
	}
	if resp.Data.Transactions[0].Amount != "10.00" || resp.Data.Transactions[2].Amount != "30.00" {
		t.Fatalf("transactions not in creation order: %+v", resp.Data.Transactions)
	}
}

func TestTransactionServiceConcurrentRecordsDoNotLoseUpdates(t *testing.T) {
	store := memory.NewStore()
	svc := services.NewTransactionService(store, nil)
	ledgerID := newLedgerForTest(t, store)

	const workers = 50
	group, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < workers; i++ {
		group.Go(func() error {
			_, err := svc.RecordTransaction(ctx, recordRequest(ledgerID, 1, "CREDIT"))
			return err
		})
	}
	if err := group.Wait(); err != nil {
		t.Fatalf("concurrent record: %v", err)
	}

	ledger, err := store.GetLedger(context.Background(), ledgerID)
	if err != nil {
		t.Fatalf("get ledger: %v", err)
	}
	if !ledger.Balance.Equal(decimal.NewFromInt(workers)) {
		t.Fatalf("balance = %s, want %d (lost update)", ledger.Balance, workers)
	}
	if ledger.Status != "GAIN" {
		t.Fatalf("status = %s, want GAIN", ledger.Status)
	}

	transactions, err := store.ListByLedgerID(context.Background(), ledgerID)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(transactions) != workers {
		t.Fatalf("transactions = %d, want %d", len(transactions), workers)
	}
}
