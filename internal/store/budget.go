package store

import (
	"context"
	"fmt"

	"github.com/cofrinho/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddBudget validates the budget, assigns it a fresh ID and appends it to
// the collection with a derived spend of zero. The spend stays zero until
// the next transaction mutation recomputes the aggregates.
func (s *Store) AddBudget(ctx context.Context, budget *models.Budget) error {
	err := budget.Validate()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	budget.Init(s.Now())
	budget.Spent = decimal.Zero
	if budget.Month == 0 {
		budget.Month = s.Now().Month()
	}
	if budget.Year == 0 {
		budget.Year = s.Now().Year()
	}

	s.budgets = append(s.budgets, *budget)
	return s.persist(ctx, keyBudgets, s.budgets)
}

// UpdateBudget replaces the budget with the same ID. The derived spend is
// carried over from the stored budget, user input never writes it.
func (s *Store) UpdateBudget(ctx context.Context, budget models.Budget) error {
	err := budget.Validate()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.budgets {
		if s.budgets[i].ID == budget.ID {
			budget.CreatedAt = s.budgets[i].CreatedAt
			budget.Spent = s.budgets[i].Spent
			budget.Touch(s.Now())
			s.budgets[i] = budget
			return s.persist(ctx, keyBudgets, s.budgets)
		}
	}

	return fmt.Errorf("%w budget matching your query", models.ErrResourceNotFound)
}

// DeleteBudget removes the budget with the given ID.
func (s *Store) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.budgets {
		if s.budgets[i].ID == id {
			s.budgets = append(s.budgets[:i], s.budgets[i+1:]...)
			return s.persist(ctx, keyBudgets, s.budgets)
		}
	}

	return fmt.Errorf("%w budget matching your query", models.ErrResourceNotFound)
}
