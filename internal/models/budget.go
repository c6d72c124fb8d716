package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod is the calendar window a budget limit applies to.
type BudgetPeriod string

const (
	BudgetMonthly BudgetPeriod = "monthly"
	BudgetYearly  BudgetPeriod = "yearly"
)

// Budget represents a spending limit for a category.
//
// Spent is derived state: it is recomputed from the transaction set after
// every transaction mutation and must never be written directly.
type Budget struct {
	DefaultModel
	Name       string          `json:"name" example:"Mercado" default:""`
	CategoryID uuid.UUID       `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
	Amount     decimal.Decimal `json:"amount" example:"1000"`  // The spending limit
	Spent      decimal.Decimal `json:"spent" example:"133.70"` // Derived from transactions, never user-set
	Period     BudgetPeriod    `json:"period" example:"monthly"`
	Month      time.Month      `json:"month" example:"5"` // Month the budget was created for
	Year       int             `json:"year" example:"2024"`
	Notes      string          `json:"notes,omitempty" default:""`
}

func (b Budget) Self() string {
	return "Budget"
}

// Validate normalizes string fields and verifies the budget invariants.
func (b *Budget) Validate() error {
	b.Name = strings.TrimSpace(b.Name)
	b.Notes = strings.TrimSpace(b.Notes)

	if !b.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if b.CategoryID == uuid.Nil {
		return ErrCategoryRequired
	}

	if b.Period == "" {
		b.Period = BudgetMonthly
	}

	return nil
}

// Exceeded reports whether spending has passed the budget limit.
func (b Budget) Exceeded() bool {
	return b.Spent.GreaterThan(b.Amount)
}
