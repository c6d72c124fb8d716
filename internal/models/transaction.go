package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// TransactionStatus is the lifecycle state of a transaction.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "completed"
	StatusPending   TransactionStatus = "pending"
	StatusCancelled TransactionStatus = "cancelled"
)

// RecurrenceType is the cadence on which a recurring template produces
// new transactions.
type RecurrenceType string

const (
	RecurrenceNone    RecurrenceType = "none"
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
	RecurrenceYearly  RecurrenceType = "yearly"
)

// Transaction represents a single movement of money.
//
// A transaction with IsRecurrent set and a RecurrenceType other than "none"
// is a template: it produces one generated transaction per elapsed period.
// Generated transactions reference their template through
// ParentTransactionID and are never templates themselves.
type Transaction struct {
	DefaultModel
	Amount              decimal.Decimal   `json:"amount" example:"14.50"`
	Date                time.Time         `json:"date" example:"2024-02-01T00:00:00Z"`
	Description         string            `json:"description" example:"Groceries" default:""`
	CategoryID          uuid.UUID         `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
	Type                TransactionType   `json:"type" example:"expense"`
	Status              TransactionStatus `json:"status" example:"completed"`
	IsRecurrent         bool              `json:"isRecurrent" example:"false" default:"false"`
	RecurrenceType      RecurrenceType    `json:"recurrenceType" example:"monthly" default:"none"`
	RecurrenceEndDate   *time.Time        `json:"recurrenceEndDate,omitempty"`
	ParentTransactionID *uuid.UUID        `json:"parentTransactionId,omitempty"`
	Tags                []string          `json:"tags,omitempty"`
	Notes               string            `json:"notes,omitempty" default:""`
}

func (t Transaction) Self() string {
	return "Transaction"
}

// IsTemplate reports whether the transaction is a recurring template.
func (t Transaction) IsTemplate() bool {
	return t.IsRecurrent && t.ParentTransactionID == nil && t.RecurrenceType != RecurrenceNone
}

// IsGenerated reports whether the transaction was produced from a template.
func (t Transaction) IsGenerated() bool {
	return t.ParentTransactionID != nil
}

// Validate normalizes string fields and verifies the transaction invariants.
func (t *Transaction) Validate() error {
	t.Description = strings.TrimSpace(t.Description)
	t.Notes = strings.TrimSpace(t.Notes)

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if t.Description == "" {
		return ErrDescriptionRequired
	}

	if t.CategoryID == uuid.Nil {
		return ErrCategoryRequired
	}

	if t.RecurrenceType == "" {
		t.RecurrenceType = RecurrenceNone
	}

	if t.Status == "" {
		t.Status = StatusCompleted
	}

	if t.IsRecurrent && t.ParentTransactionID == nil && t.RecurrenceType == RecurrenceNone {
		return ErrRecurrenceTypeMissing
	}

	// Generated transactions are terminal. Allowing them to recur would
	// make them templates for further generation.
	if t.ParentTransactionID != nil && (t.IsRecurrent || t.RecurrenceType != RecurrenceNone) {
		return ErrGeneratedIsRecurrent
	}

	return nil
}
