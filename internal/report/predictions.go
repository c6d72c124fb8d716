package report

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetAdjustment suggests a new limit for a budget whose spending
// deviated from it.
type BudgetAdjustment struct {
	CategoryID      uuid.UUID       `json:"categoryId"`
	CurrentBudget   decimal.Decimal `json:"currentBudget"`
	SuggestedBudget decimal.Decimal `json:"suggestedBudget"`
	Reason          string          `json:"reason"`
}

// Predictions is a naive projection for the next month, extrapolated
// linearly from the previous calendar month.
type Predictions struct {
	ExpectedIncome             decimal.Decimal    `json:"expectedIncome"`
	ExpectedExpenses           decimal.Decimal    `json:"expectedExpenses"`
	SuggestedBudgetAdjustments []BudgetAdjustment `json:"suggestedBudgetAdjustments"`
}

// Predictions projects next month from last month's summary and suggests
// budget adjustments where actual spending deviated from the limit by ten
// percent or more.
func (r *Reporter) Predictions() Predictions {
	now := r.Now()
	firstOfMonth := now.AddDate(0, 0, -now.Day()+1)
	lastMonth := Range{
		Start: firstOfMonth.AddDate(0, -1, 0),
		End:   firstOfMonth.AddDate(0, 0, -1),
	}

	filtered := r.inPeriod(lastMonth)
	summary := summarize(filtered)

	adjustments := make([]BudgetAdjustment, 0)
	for _, breakdown := range r.breakdown(filtered, summary.Expenses) {
		for _, budget := range r.store.Budgets() {
			if budget.CategoryID != breakdown.CategoryID {
				continue
			}

			difference := breakdown.Total.Sub(budget.Amount)
			percentage := difference.Div(budget.Amount).InexactFloat64() * 100

			if math.Abs(percentage) < 10 {
				continue
			}

			reason := fmt.Sprintf("Gastos %.0f%% acima do orçamento", percentage)
			if percentage < 0 {
				reason = fmt.Sprintf("Gastos %.0f%% abaixo do orçamento", math.Abs(percentage))
			}

			adjustments = append(adjustments, BudgetAdjustment{
				CategoryID:      breakdown.CategoryID,
				CurrentBudget:   budget.Amount,
				SuggestedBudget: breakdown.Total,
				Reason:          reason,
			})
		}
	}

	return Predictions{
		ExpectedIncome:             summary.Income,
		ExpectedExpenses:           summary.Expenses,
		SuggestedBudgetAdjustments: adjustments,
	}
}
