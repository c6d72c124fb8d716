// Package store owns the four entity collections and their persistence.
//
// Collections are held in memory and written back to the key-value store as
// whole JSON blobs, one key per collection. Every transaction mutation
// triggers a full recomputation of the derived budget and goal aggregates
// before the call returns.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/cofrinho/backend/internal/models"
	"github.com/cofrinho/backend/internal/storage"
	"github.com/shopspring/decimal"
)

const (
	keyTransactions = "cofrinho:transactions"
	keyBudgets      = "cofrinho:budgets"
	keyCategories   = "cofrinho:categories"
	keyGoals        = "cofrinho:goals"
)

// Store owns the entity collections.
type Store struct {
	kv storage.KV

	// Now returns the current time. Overridable in tests.
	Now func() time.Time

	mu           sync.Mutex
	transactions []models.Transaction
	budgets      []models.Budget
	categories   []models.Category
	goals        []models.Goal
}

// New returns a store backed by the given key-value store. Call Load before
// anything else.
func New(kv storage.KV) *Store {
	return &Store{
		kv:  kv,
		Now: time.Now,
	}
}

// Load reads all collections from the key-value store. When no categories
// have ever been stored, the default set is seeded and persisted.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.loadCollection(ctx, keyTransactions, &s.transactions)
	if err != nil {
		return err
	}

	err = s.loadCollection(ctx, keyBudgets, &s.budgets)
	if err != nil {
		return err
	}

	err = s.loadCollection(ctx, keyGoals, &s.goals)
	if err != nil {
		return err
	}

	value, ok, err := s.kv.Get(ctx, keyCategories)
	if err != nil {
		return fmt.Errorf("loading categories: %w", err)
	}

	if !ok {
		s.categories = defaultCategories(s.Now())
		return s.persist(ctx, keyCategories, s.categories)
	}

	err = json.Unmarshal([]byte(value), &s.categories)
	if err != nil {
		return fmt.Errorf("loading categories: %w", err)
	}

	return nil
}

func (s *Store) loadCollection(ctx context.Context, key string, target any) error {
	value, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("loading %s: %w", collectionName(key), err)
	}

	if !ok {
		return nil
	}

	err = json.Unmarshal([]byte(value), target)
	if err != nil {
		return fmt.Errorf("loading %s: %w", collectionName(key), err)
	}

	return nil
}

// persist writes a collection back as a JSON blob. The in-memory state is
// already updated when this is called, so a returned error means memory and
// disk may disagree until the next successful write.
func (s *Store) persist(ctx context.Context, key string, collection any) error {
	blob, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("saving %s: %w", collectionName(key), err)
	}

	err = s.kv.Set(ctx, key, string(blob))
	if err != nil {
		return fmt.Errorf("saving %s: %w", collectionName(key), err)
	}

	return nil
}

func collectionName(key string) string {
	switch key {
	case keyTransactions:
		return "transactions"
	case keyBudgets:
		return "budgets"
	case keyCategories:
		return "categories"
	case keyGoals:
		return "goals"
	}
	return key
}

// Balance returns the net of all transactions: income added, expenses
// subtracted.
func (s *Store) Balance() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	balance := decimal.Zero
	for _, t := range s.transactions {
		if t.Type == models.Income {
			balance = balance.Add(t.Amount)
		} else {
			balance = balance.Sub(t.Amount)
		}
	}

	return balance
}

// Transactions returns a copy of the transaction collection.
func (s *Store) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Transaction(nil), s.transactions...)
}

// Budgets returns a copy of the budget collection.
func (s *Store) Budgets() []models.Budget {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Budget(nil), s.budgets...)
}

// Categories returns a copy of the category collection.
func (s *Store) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Category(nil), s.categories...)
}

// Goals returns a copy of the goal collection.
func (s *Store) Goals() []models.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Goal(nil), s.goals...)
}
