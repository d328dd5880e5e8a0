package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/api-sage/ledger-accounting-service/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/ledger-accounting-service/internal/commons"
	"github.com/api-sage/ledger-accounting-service/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store is an in-memory implementation of the customer and transaction
// repositories. All mutations happen under one mutex, which gives the same
// all-or-nothing and per-ledger serialization guarantees the SQL repositories
// get from database transactions and row locks.
type Store struct {
	mu           sync.Mutex
	customers    map[string]domain.Customer
	ledgers      map[string]domain.Ledger
	transactions map[string][]domain.Transaction
}

func NewStore() *Store {
	return &Store{
		customers:    make(map[string]domain.Customer),
		ledgers:      make(map[string]domain.Ledger),
		transactions: make(map[string][]domain.Transaction),
	}
}

func (s *Store) CreateWithLedger(_ context.Context, customer domain.Customer) (domain.Customer, domain.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	ledger := domain.Ledger{
		ID:        uuid.New().String(),
		Balance:   decimal.Zero,
		Status:    domain.LedgerStatusNone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	customer.ID = uuid.New().String()
	customer.LedgerID = ledger.ID
	customer.CreatedAt = now
	customer.UpdatedAt = now

	s.ledgers[ledger.ID] = ledger
	s.customers[customer.ID] = customer

	return customer, ledger, nil
}

func (s *Store) Search(_ context.Context, value string) ([]domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(value)
	matches := make([]domain.Customer, 0)
	for _, customer := range s.customers {
		if strings.Contains(strings.ToLower(customer.FullName), needle) ||
			strings.Contains(strings.ToLower(customer.PhoneNumber), needle) ||
			strings.Contains(strings.ToLower(customer.Address), needle) {
			matches = append(matches, customer)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].FullName < matches[j].FullName
	})

	return matches, nil
}

func (s *Store) Record(_ context.Context, ledgerID string, amount decimal.Decimal, txType domain.TransactionType, imgURLs []string) (domain.Transaction, domain.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, ok := s.ledgers[ledgerID]
	if !ok {
		return domain.Transaction{}, domain.Ledger{}, commons.ErrRecordNotFound
	}

	next, err := ledger.Apply(amount, txType)
	if err != nil {
		return domain.Transaction{}, domain.Ledger{}, err
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		ID:        uuid.New().String(),
		LedgerID:  ledgerID,
		Amount:    amount,
		Type:      txType,
		ImgURLs:   append([]string(nil), imgURLs...),
		CreatedAt: now,
	}

	next.UpdatedAt = now
	s.ledgers[ledgerID] = next
	s.transactions[ledgerID] = append(s.transactions[ledgerID], txn)

	return txn, next, nil
}

func (s *Store) ListByLedgerID(_ context.Context, ledgerID string) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.transactions[ledgerID]
	copied := make([]domain.Transaction, len(stored))
	copy(copied, stored)

	return copied, nil
}

// GetLedger reads the current ledger state; used by tests to observe the
// outcome of recorded transactions.
func (s *Store) GetLedger(_ context.Context, ledgerID string) (domain.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, ok := s.ledgers[ledgerID]
	if !ok {
		return domain.Ledger{}, commons.ErrRecordNotFound
	}

	return ledger, nil
}

var _ repo_interfaces.CustomerRepository = (*Store)(nil)
var _ repo_interfaces.TransactionRepository = (*Store)(nil)
