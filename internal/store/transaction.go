package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cofrinho/backend/internal/models"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

// AddTransaction validates the transaction, assigns it a fresh ID and
// appends it to the collection. The budget and goal aggregates are
// recomputed before the call returns.
func (s *Store) AddTransaction(ctx context.Context, transaction *models.Transaction) error {
	err := transaction.Validate()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	transaction.Init(s.Now())
	if transaction.Date.IsZero() {
		transaction.Date = s.Now().In(time.UTC)
	}

	s.transactions = append(s.transactions, *transaction)
	return s.saveTransactions(ctx)
}

// AddTransactions appends a batch of transactions in a single write. Used
// by the recurrence engine so that one scan produces one persistence pass
// and one aggregate recomputation regardless of how many templates were due.
func (s *Store) AddTransactions(ctx context.Context, transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	for i := range transactions {
		err := transactions[i].Validate()
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range transactions {
		transactions[i].Init(s.Now())
	}

	s.transactions = append(s.transactions, transactions...)
	return s.saveTransactions(ctx)
}

// UpdateTransaction replaces the transaction with the same ID.
func (s *Store) UpdateTransaction(ctx context.Context, transaction models.Transaction) error {
	err := transaction.Validate()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.transactions {
		if s.transactions[i].ID == transaction.ID {
			transaction.CreatedAt = s.transactions[i].CreatedAt
			transaction.Touch(s.Now())
			s.transactions[i] = transaction
			return s.saveTransactions(ctx)
		}
	}

	return fmt.Errorf("%w transaction matching your query", models.ErrResourceNotFound)
}

// DeleteTransaction removes the transaction with the given ID. There is no
// cascade: generated instances of a deleted template stay in place.
func (s *Store) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return s.saveTransactions(ctx)
		}
	}

	return fmt.Errorf("%w transaction matching your query", models.ErrResourceNotFound)
}

// saveTransactions persists the transaction collection and recomputes the
// derived aggregates. Callers must hold the mutex.
func (s *Store) saveTransactions(ctx context.Context) error {
	err := s.persist(ctx, keyTransactions, s.transactions)
	if err != nil {
		return err
	}

	err = s.recomputeBudgets(ctx)
	if err != nil {
		return err
	}

	return s.recomputeGoals(ctx)
}

// TransactionFilters narrows the transaction collection. Zero-valued fields
// do not filter.
type TransactionFilters struct {
	Type       models.TransactionType
	Status     models.TransactionStatus
	CategoryID uuid.UUID
	From       time.Time
	To         time.Time
	SearchTerm string // glob pattern, matched case-insensitively against description and notes
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	Tags       []string
}

// FilterTransactions returns the transactions matching all set filters.
func (s *Store) FilterTransactions(f TransactionFilters) []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]models.Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		if f.matches(t) {
			matched = append(matched, t)
		}
	}

	return matched
}

func (f TransactionFilters) matches(t models.Transaction) bool {
	if f.Type != "" && t.Type != f.Type {
		return false
	}

	if f.Status != "" && t.Status != f.Status {
		return false
	}

	if f.CategoryID != uuid.Nil && t.CategoryID != f.CategoryID {
		return false
	}

	if !f.From.IsZero() && t.Date.Before(f.From) {
		return false
	}

	if !f.To.IsZero() && t.Date.After(f.To) {
		return false
	}

	if f.SearchTerm != "" {
		pattern := strings.ToLower(f.SearchTerm)
		if !strings.Contains(pattern, "*") {
			pattern = "*" + pattern + "*"
		}

		if !glob.Glob(pattern, strings.ToLower(t.Description)) && !glob.Glob(pattern, strings.ToLower(t.Notes)) {
			return false
		}
	}

	if f.MinAmount != nil && t.Amount.LessThan(*f.MinAmount) {
		return false
	}

	if f.MaxAmount != nil && t.Amount.GreaterThan(*f.MaxAmount) {
		return false
	}

	for _, tag := range f.Tags {
		if !containsTag(t.Tags, tag) {
			return false
		}
	}

	return true
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
