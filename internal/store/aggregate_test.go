package store_test

import (
	"context"
	"time"

	"github.com/cofrinho/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetSpentRollup() {
	category := suite.store.Categories()[0]
	other := suite.store.Categories()[1]

	suite.createTestBudget(models.Budget{CategoryID: category.ID, Amount: decimal.NewFromInt(1000)})

	suite.createTestTransaction(models.Transaction{Amount: decimal.NewFromInt(700), Type: models.Expense, CategoryID: category.ID})
	suite.createTestTransaction(models.Transaction{Amount: decimal.NewFromInt(500), Type: models.Expense, CategoryID: category.ID})

	// Income and other categories stay out of the spend.
	suite.createTestTransaction(models.Transaction{Amount: decimal.NewFromInt(5000), Type: models.Income, CategoryID: category.ID})
	suite.createTestTransaction(models.Transaction{Amount: decimal.NewFromInt(99), Type: models.Expense, CategoryID: other.ID})

	budget := suite.store.Budgets()[0]
	assert.True(suite.T(), budget.Spent.Equal(decimal.NewFromInt(1200)), "spent is %s", budget.Spent)
	assert.True(suite.T(), budget.Exceeded())
}

func (suite *TestSuiteStandard) TestBudgetSpentIdempotent() {
	category := suite.store.Categories()[0]
	suite.createTestBudget(models.Budget{CategoryID: category.ID})
	suite.createTestTransaction(models.Transaction{Amount: decimal.NewFromInt(300), Type: models.Expense, CategoryID: category.ID})

	first := suite.store.Budgets()

	err := suite.store.RecomputeBudgets(context.Background())
	assert.Nil(suite.T(), err)
	err = suite.store.RecomputeBudgets(context.Background())
	assert.Nil(suite.T(), err)

	second := suite.store.Budgets()
	assert.Len(suite.T(), second, len(first))
	for i := range first {
		assert.True(suite.T(), first[i].Spent.Equal(second[i].Spent))
	}
}

func (suite *TestSuiteStandard) TestBudgetSpentUsesCurrentMonth() {
	category := suite.store.Categories()[0]
	suite.createTestBudget(models.Budget{CategoryID: category.ID, Period: models.BudgetMonthly})

	// An expense from the previous month does not count against a monthly
	// budget, regardless of the budget's stored month and year.
	suite.createTestTransaction(models.Transaction{
		Amount:     decimal.NewFromInt(250),
		Type:       models.Expense,
		CategoryID: category.ID,
		Date:       suite.now.AddDate(0, -1, 0),
	})

	assert.True(suite.T(), suite.store.Budgets()[0].Spent.IsZero())
}

func (suite *TestSuiteStandard) TestBudgetSpentYearlyPeriod() {
	category := suite.store.Categories()[0]
	suite.createTestBudget(models.Budget{CategoryID: category.ID, Period: models.BudgetYearly, Amount: decimal.NewFromInt(5000)})

	suite.createTestTransaction(models.Transaction{
		Amount:     decimal.NewFromInt(250),
		Type:       models.Expense,
		CategoryID: category.ID,
		Date:       suite.now.AddDate(0, -3, 0), // February, same year
	})
	suite.createTestTransaction(models.Transaction{
		Amount:     decimal.NewFromInt(100),
		Type:       models.Expense,
		CategoryID: category.ID,
		Date:       suite.now.AddDate(-1, 0, 0), // previous year
	})

	assert.True(suite.T(), suite.store.Budgets()[0].Spent.Equal(decimal.NewFromInt(250)))
}

func (suite *TestSuiteStandard) TestGoalSavingsProgress() {
	suite.now = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.createTestGoal(models.Goal{
		Type:     models.GoalSavings,
		Deadline: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	})

	suite.now = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	suite.createTestTransaction(models.Transaction{
		Amount: decimal.NewFromInt(1000),
		Type:   models.Income,
		Date:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	suite.createTestTransaction(models.Transaction{
		Amount: decimal.NewFromInt(200),
		Type:   models.Expense,
		Date:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	goal := suite.store.Goals()[0]
	assert.True(suite.T(), goal.CurrentAmount.Equal(decimal.NewFromInt(800)), "current amount is %s", goal.CurrentAmount)
}

func (suite *TestSuiteStandard) TestGoalSavingsIgnoresOutsideWindow() {
	suite.now = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.createTestGoal(models.Goal{
		Type:     models.GoalSavings,
		Deadline: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	})

	suite.createTestTransaction(models.Transaction{
		Amount: decimal.NewFromInt(999),
		Type:   models.Income,
		Date:   time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), // before the goal started
	})
	suite.createTestTransaction(models.Transaction{
		Amount: decimal.NewFromInt(500),
		Type:   models.Income,
		Date:   time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), // after the deadline
	})
	suite.createTestTransaction(models.Transaction{
		Amount: decimal.NewFromInt(100),
		Type:   models.Income,
		Date:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	goal := suite.store.Goals()[0]
	assert.True(suite.T(), goal.CurrentAmount.Equal(decimal.NewFromInt(100)))
}

func (suite *TestSuiteStandard) TestGoalDebtProgress() {
	suite.now = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	goal := suite.createTestGoal(models.Goal{
		Type:     models.GoalDebt,
		Deadline: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	})

	suite.now = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	// Debt payments are recorded against the goal's own ID as category.
	suite.createTestTransaction(models.Transaction{
		Amount:     decimal.NewFromInt(300),
		Type:       models.Expense,
		CategoryID: goal.ID,
	})
	suite.createTestTransaction(models.Transaction{
		Amount:     decimal.NewFromInt(200),
		Type:       models.Expense,
		CategoryID: goal.ID,
	})

	// Unrelated spending does not count as a payment.
	suite.createTestTransaction(models.Transaction{
		Amount: decimal.NewFromInt(50),
		Type:   models.Expense,
	})

	stored := suite.store.Goals()[0]
	assert.True(suite.T(), stored.CurrentAmount.Equal(decimal.NewFromInt(500)))
}

func (suite *TestSuiteStandard) TestGoalRecomputeRefreshesUpdatedAt() {
	suite.createTestGoal(models.Goal{Type: models.GoalPurchase})
	created := suite.store.Goals()[0].UpdatedAt

	suite.now = suite.now.Add(48 * time.Hour)
	suite.createTestTransaction(models.Transaction{})

	assert.True(suite.T(), suite.store.Goals()[0].UpdatedAt.After(created))
}

func (suite *TestSuiteStandard) TestEndToEndBudgetOverrun() {
	category := suite.store.Categories()[0]
	suite.createTestBudget(models.Budget{CategoryID: category.ID, Amount: decimal.NewFromInt(1000)})

	suite.createTestTransaction(models.Transaction{Amount: decimal.NewFromInt(5000), Type: models.Income})
	assert.True(suite.T(), suite.store.Balance().Equal(decimal.NewFromInt(5000)))

	suite.createTestTransaction(models.Transaction{Amount: decimal.NewFromInt(1200), Type: models.Expense, CategoryID: category.ID})

	budget := suite.store.Budgets()[0]
	assert.True(suite.T(), budget.Spent.Equal(decimal.NewFromInt(1200)))
	assert.True(suite.T(), budget.Exceeded())
	assert.True(suite.T(), suite.store.Balance().Equal(decimal.NewFromInt(3800)))
}
