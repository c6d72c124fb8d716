// Package recurrence materializes transactions from recurring templates.
//
// Each active template produces at most one generated transaction per
// elapsed period. Period math is anchored on the template's own date, not
// on the most recently generated instance.
package recurrence

import (
	"context"
	"time"

	"github.com/cofrinho/backend/internal/models"
	"github.com/cofrinho/backend/internal/store"
	"github.com/cofrinho/backend/internal/types"
	"github.com/rs/zerolog/log"
)

// Engine scans recurring templates and appends the instances that are due.
type Engine struct {
	store *store.Store

	// Now returns the current time. Overridable in tests.
	Now func() time.Time
}

// New returns an engine operating on the given store.
func New(s *store.Store) *Engine {
	return &Engine{
		store: s,
		Now:   time.Now,
	}
}

// Scan walks all recurring templates once and appends every instance that
// is due in a single batch. It returns the number of generated
// transactions.
func (e *Engine) Scan(ctx context.Context) (int, error) {
	today := types.Midnight(e.Now())
	transactions := e.store.Transactions()

	var generated []models.Transaction

	for _, template := range transactions {
		if !template.IsTemplate() {
			continue
		}

		// One instance per period: skip templates that already produced
		// an instance in the current bucket.
		if hasInstanceInCurrentPeriod(transactions, template, today) {
			continue
		}

		due, date := dueOn(template, today)

		// A template past its end date never generates, regardless of
		// elapsed time.
		if template.RecurrenceEndDate != nil && today.After(*template.RecurrenceEndDate) {
			due = false
		}

		if !due {
			continue
		}

		generated = append(generated, instance(template, date))
	}

	if len(generated) == 0 {
		return 0, nil
	}

	err := e.store.AddTransactions(ctx, generated)
	if err != nil {
		return 0, err
	}

	log.Info().Int("count", len(generated)).Msg("generated recurring transactions")
	return len(generated), nil
}

// hasInstanceInCurrentPeriod reports whether a generated instance of the
// template already exists in the current period bucket.
func hasInstanceInCurrentPeriod(transactions []models.Transaction, template models.Transaction, today time.Time) bool {
	for _, t := range transactions {
		if t.ParentTransactionID == nil || *t.ParentTransactionID != template.ID {
			continue
		}

		if inCurrentPeriod(t.Date, template.RecurrenceType, today) {
			return true
		}
	}

	return false
}

// inCurrentPeriod reports whether date falls in the same period bucket as
// today: the same calendar day, the same Sunday-to-Saturday week, the same
// calendar month or the same calendar year.
func inCurrentPeriod(date time.Time, recurrence models.RecurrenceType, today time.Time) bool {
	switch recurrence {
	case models.RecurrenceDaily:
		return types.SameDay(date, today)
	case models.RecurrenceWeekly:
		return types.SameWeek(date, today)
	case models.RecurrenceMonthly:
		return types.SameMonth(date, today)
	case models.RecurrenceYearly:
		return types.SameYear(date, today)
	default:
		return false
	}
}

// dueOn decides whether the template is due and computes the date of the
// instance it would generate.
func dueOn(template models.Transaction, today time.Time) (bool, time.Time) {
	anchor := template.Date

	switch template.RecurrenceType {
	case models.RecurrenceDaily:
		return today.Sub(anchor) >= 24*time.Hour, today

	case models.RecurrenceWeekly:
		return today.Sub(anchor) >= 7*24*time.Hour, today

	case models.RecurrenceMonthly:
		// December to January counts as a later month.
		laterMonth := today.Month() > anchor.Month() ||
			(today.Month() == time.January && anchor.Month() == time.December)

		// The anchor day is clamped to the length of the current month, so
		// a template on the 31st fires on April 30th rather than waiting
		// for a day April does not have.
		day := types.ClampDay(today, anchor.Day())
		if !laterMonth || today.Day() < day {
			return false, time.Time{}
		}

		return true, time.Date(today.Year(), today.Month(), day, 0, 0, 0, 0, today.Location())

	case models.RecurrenceYearly:
		anchorMonth := time.Date(today.Year(), anchor.Month(), 1, 0, 0, 0, 0, today.Location())
		day := types.ClampDay(anchorMonth, anchor.Day())

		due := today.Year() > anchor.Year() &&
			today.Month() == anchor.Month() &&
			today.Day() >= day
		if !due {
			return false, time.Time{}
		}

		return true, time.Date(today.Year(), anchor.Month(), day, 0, 0, 0, 0, today.Location())
	}

	return false, time.Time{}
}

// instance builds the generated transaction for a due template. Generated
// transactions are terminal: they never recur themselves.
func instance(template models.Transaction, date time.Time) models.Transaction {
	parent := template.ID

	return models.Transaction{
		Amount:              template.Amount,
		Date:                date,
		Description:         template.Description,
		CategoryID:          template.CategoryID,
		Type:                template.Type,
		Status:              models.StatusCompleted,
		IsRecurrent:         false,
		RecurrenceType:      models.RecurrenceNone,
		ParentTransactionID: &parent,
		Tags:                append([]string(nil), template.Tags...),
	}
}
