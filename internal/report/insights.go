package report

import (
	"fmt"

	"github.com/cofrinho/backend/internal/models"
	"github.com/cofrinho/backend/internal/store"
	"github.com/cofrinho/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TrendDirection classifies how spending in a category has developed.
type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

// Insights summarizes spending behavior in one category.
type Insights struct {
	AverageSpending decimal.Decimal `json:"averageSpending"`
	Trend           TrendDirection  `json:"trend"`
	Suggestions     []string        `json:"suggestions"`
}

// CategoryInsights analyzes the transactions of one category: average
// amount, a three-month trend and spending suggestions.
func (r *Reporter) CategoryInsights(categoryID uuid.UUID) (Insights, error) {
	var category *models.Category
	for _, c := range r.store.Categories() {
		if c.ID == categoryID {
			category = &c
			break
		}
	}

	if category == nil {
		return Insights{}, fmt.Errorf("%w category matching your query", models.ErrResourceNotFound)
	}

	transactions := r.store.FilterTransactions(store.TransactionFilters{CategoryID: categoryID})

	average := decimal.Zero
	if len(transactions) > 0 {
		total := decimal.Zero
		for _, t := range transactions {
			total = total.Add(t.Amount)
		}
		average = total.Div(decimal.NewFromInt(int64(len(transactions))))
	}

	trend := r.trend(transactions)

	suggestions := make([]string, 0)
	for _, budget := range r.store.Budgets() {
		if budget.CategoryID != categoryID {
			continue
		}

		if trend == TrendUp {
			suggestions = append(suggestions, fmt.Sprintf("Seus gastos com %s estão aumentando. Considere revisar seu orçamento.", category.Name))
		}

		if budget.Exceeded() {
			suggestions = append(suggestions, fmt.Sprintf("Você ultrapassou o orçamento de %s. Que tal estabelecer limites mais realistas?", category.Name))
		}
	}

	if len(recurrentAmounts(transactions)) > 0 {
		suggestions = append(suggestions, "Detectamos gastos recorrentes. Considere marcar como transação recorrente.")
	}

	return Insights{
		AverageSpending: average,
		Trend:           trend,
		Suggestions:     suggestions,
	}, nil
}

// trend compares the first and last monthly totals over the past three
// months. A change of more than ten percent either way moves the trend off
// stable.
func (r *Reporter) trend(transactions []models.Transaction) TrendDirection {
	now := r.Now()

	totals := make([]decimal.Decimal, 0, 3)
	for _, month := range types.LastMonths(now, 3) {
		total := decimal.Zero
		for _, t := range transactions {
			if month.Contains(t.Date) {
				total = total.Add(t.Amount)
			}
		}

		if total.IsPositive() {
			totals = append(totals, total)
		}
	}

	if len(totals) < 2 {
		return TrendStable
	}

	first := totals[0]
	last := totals[len(totals)-1]
	change := last.Sub(first).Div(first).InexactFloat64() * 100

	switch {
	case change > 10:
		return TrendUp
	case change < -10:
		return TrendDown
	default:
		return TrendStable
	}
}

// recurrentAmounts returns the amounts appearing at least twice in the
// transaction list. Repeated identical amounts hint at a recurring charge.
func recurrentAmounts(transactions []models.Transaction) []decimal.Decimal {
	frequency := make(map[string]int)
	for _, t := range transactions {
		frequency[t.Amount.String()]++
	}

	amounts := make([]decimal.Decimal, 0)
	for value, count := range frequency {
		if count >= 2 {
			amount, err := decimal.NewFromString(value)
			if err != nil {
				continue
			}
			amounts = append(amounts, amount)
		}
	}

	return amounts
}
