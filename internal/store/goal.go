package store

import (
	"context"
	"fmt"

	"github.com/cofrinho/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddGoal validates the goal, assigns it a fresh ID and appends it to the
// collection with a progress of zero.
func (s *Store) AddGoal(ctx context.Context, goal *models.Goal) error {
	err := goal.Validate()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	goal.Init(s.Now())
	goal.CurrentAmount = decimal.Zero
	s.goals = append(s.goals, *goal)
	return s.persist(ctx, keyGoals, s.goals)
}

// UpdateGoal replaces the goal with the same ID. The derived progress is
// carried over from the stored goal.
func (s *Store) UpdateGoal(ctx context.Context, goal models.Goal) error {
	err := goal.Validate()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.goals {
		if s.goals[i].ID == goal.ID {
			goal.CreatedAt = s.goals[i].CreatedAt
			goal.CurrentAmount = s.goals[i].CurrentAmount
			goal.Touch(s.Now())
			s.goals[i] = goal
			return s.persist(ctx, keyGoals, s.goals)
		}
	}

	return fmt.Errorf("%w goal matching your query", models.ErrResourceNotFound)
}

// DeleteGoal removes the goal with the given ID.
func (s *Store) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.goals {
		if s.goals[i].ID == id {
			s.goals = append(s.goals[:i], s.goals[i+1:]...)
			return s.persist(ctx, keyGoals, s.goals)
		}
	}

	return fmt.Errorf("%w goal matching your query", models.ErrResourceNotFound)
}
