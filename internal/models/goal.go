package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalType determines how a goal's progress is derived from transactions.
type GoalType string

const (
	GoalSavings    GoalType = "savings"
	GoalDebt       GoalType = "debt"
	GoalInvestment GoalType = "investment"
	GoalPurchase   GoalType = "purchase"
)

// GoalPriority orders goals for display.
type GoalPriority string

const (
	PriorityLow    GoalPriority = "low"
	PriorityMedium GoalPriority = "medium"
	PriorityHigh   GoalPriority = "high"
)

// Goal represents a financial goal.
//
// CurrentAmount is derived state. For savings goals it is the net of income
// minus expenses between CreatedAt and Deadline. For debt goals it is the sum
// of expense transactions recorded against the goal's own ID as category:
// the goal acts as a pseudo-category for its payments. Progress for the
// remaining types is not derived from transactions.
type Goal struct {
	DefaultModel
	Name          string          `json:"name" example:"Reserva de emergência" default:""`
	Type          GoalType        `json:"type" example:"savings"`
	TargetAmount  decimal.Decimal `json:"targetAmount" example:"10000"`
	CurrentAmount decimal.Decimal `json:"currentAmount" example:"800"` // Derived from transactions, never user-set
	Deadline      time.Time       `json:"deadline" example:"2024-12-31T00:00:00Z"`
	CategoryID    *uuid.UUID      `json:"categoryId,omitempty"`
	Priority      GoalPriority    `json:"priority" example:"medium"`
	IsCompleted   bool            `json:"isCompleted" example:"false" default:"false"`
	Notes         string          `json:"notes,omitempty" default:""`
}

func (g Goal) Self() string {
	return "Goal"
}

// Validate normalizes string fields and verifies the goal invariants.
func (g *Goal) Validate() error {
	g.Name = strings.TrimSpace(g.Name)
	g.Notes = strings.TrimSpace(g.Notes)

	if g.Name == "" {
		return ErrNameRequired
	}

	if !g.TargetAmount.IsPositive() {
		return ErrGoalTargetNotPositive
	}

	if g.Priority == "" {
		g.Priority = PriorityMedium
	}

	return nil
}
