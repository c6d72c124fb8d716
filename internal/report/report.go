// Package report derives read-only projections from the transaction set:
// summaries, category breakdowns, daily trends, naive predictions and the
// export formats.
package report

import (
	"sort"
	"time"

	"github.com/cofrinho/backend/internal/models"
	"github.com/cofrinho/backend/internal/store"
	"github.com/cofrinho/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reporter builds projections over a store.
type Reporter struct {
	store *store.Store

	// Now returns the current time. Overridable in tests.
	Now func() time.Time
}

// New returns a reporter reading from the given store.
func New(s *store.Store) *Reporter {
	return &Reporter{
		store: s,
		Now:   time.Now,
	}
}

// Range is a closed time interval.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the range.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Summary aggregates a set of transactions.
type Summary struct {
	Income      decimal.Decimal `json:"income"`
	Expenses    decimal.Decimal `json:"expenses"`
	Balance     decimal.Decimal `json:"balance"`
	SavingsRate float64         `json:"savingsRate"` // Percentage of income not spent
}

// CategoryBreakdown is the share of one category in a period.
type CategoryBreakdown struct {
	CategoryID   uuid.UUID            `json:"categoryId"`
	Total        decimal.Decimal      `json:"total"`
	Percentage   float64              `json:"percentage"` // Share of the period's expenses
	Transactions []models.Transaction `json:"transactions"`
}

// DailyTrend aggregates one day of a period.
type DailyTrend struct {
	Date     string          `json:"date"` // YYYY-MM-DD
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// Report is the full projection for a period.
type Report struct {
	Period            Range               `json:"period"`
	Summary           Summary             `json:"summary"`
	CategoryBreakdown []CategoryBreakdown `json:"categoryBreakdown"`
	Trends            []DailyTrend        `json:"trends"`
	Predictions       Predictions         `json:"predictions"`
}

// MonthlyIncome returns the total income of the current calendar month.
func (r *Reporter) MonthlyIncome() decimal.Decimal {
	now := r.Now()
	total := decimal.Zero

	for _, t := range r.store.Transactions() {
		if t.Type == models.Income && types.SameMonth(t.Date, now) {
			total = total.Add(t.Amount)
		}
	}

	return total
}

// MonthlyExpenses returns the expense transactions of the current calendar
// month.
func (r *Reporter) MonthlyExpenses() []models.Transaction {
	now := r.Now()
	expenses := make([]models.Transaction, 0)

	for _, t := range r.store.Transactions() {
		if t.Type == models.Expense && types.SameMonth(t.Date, now) {
			expenses = append(expenses, t)
		}
	}

	return expenses
}

// SavingsRate returns the percentage of the current month's income that was
// not spent. With no income the rate is zero.
func (r *Reporter) SavingsRate() float64 {
	income := r.MonthlyIncome()
	if income.IsZero() {
		return 0
	}

	spent := decimal.Zero
	for _, t := range r.MonthlyExpenses() {
		spent = spent.Add(t.Amount)
	}

	return income.Sub(spent).Div(income).InexactFloat64() * 100
}

// FinancialReport builds the full projection for a period.
func (r *Reporter) FinancialReport(period Range) Report {
	filtered := r.inPeriod(period)
	summary := summarize(filtered)

	return Report{
		Period:            period,
		Summary:           summary,
		CategoryBreakdown: r.breakdown(filtered, summary.Expenses),
		Trends:            trends(filtered),
		Predictions:       r.Predictions(),
	}
}

func (r *Reporter) inPeriod(period Range) []models.Transaction {
	filtered := make([]models.Transaction, 0)
	for _, t := range r.store.Transactions() {
		if period.Contains(t.Date) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

func summarize(transactions []models.Transaction) Summary {
	income := decimal.Zero
	expenses := decimal.Zero

	for _, t := range transactions {
		if t.Type == models.Income {
			income = income.Add(t.Amount)
		} else {
			expenses = expenses.Add(t.Amount)
		}
	}

	summary := Summary{
		Income:   income,
		Expenses: expenses,
		Balance:  income.Sub(expenses),
	}

	if income.IsPositive() {
		summary.SavingsRate = income.Sub(expenses).Div(income).InexactFloat64() * 100
	}

	return summary
}

// breakdown groups a period's transactions by category. Categories without
// transactions in the period are omitted.
func (r *Reporter) breakdown(transactions []models.Transaction, expenses decimal.Decimal) []CategoryBreakdown {
	result := make([]CategoryBreakdown, 0)

	for _, category := range r.store.Categories() {
		entry := CategoryBreakdown{
			CategoryID:   category.ID,
			Total:        decimal.Zero,
			Transactions: make([]models.Transaction, 0),
		}

		for _, t := range transactions {
			if t.CategoryID == category.ID {
				entry.Total = entry.Total.Add(t.Amount)
				entry.Transactions = append(entry.Transactions, t)
			}
		}

		if !entry.Total.IsPositive() {
			continue
		}

		if expenses.IsPositive() {
			entry.Percentage = entry.Total.Div(expenses).InexactFloat64() * 100
		}

		result = append(result, entry)
	}

	return result
}

// trends folds a period's transactions into one aggregate per day, in
// chronological order.
func trends(transactions []models.Transaction) []DailyTrend {
	byDay := make(map[string][]models.Transaction)
	for _, t := range transactions {
		day := t.Date.Format("2006-01-02")
		byDay[day] = append(byDay[day], t)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	result := make([]DailyTrend, 0, len(days))
	for _, day := range days {
		trend := DailyTrend{
			Date:     day,
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
			Balance:  decimal.Zero,
		}

		for _, t := range byDay[day] {
			if t.Type == models.Income {
				trend.Income = trend.Income.Add(t.Amount)
				trend.Balance = trend.Balance.Add(t.Amount)
			} else {
				trend.Expenses = trend.Expenses.Add(t.Amount)
				trend.Balance = trend.Balance.Sub(t.Amount)
			}
		}

		result = append(result, trend)
	}

	return result
}
