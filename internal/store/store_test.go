package store_test

import (
	"context"
	"errors"
	"time"

	"github.com/cofrinho/backend/internal/models"
	"github.com/cofrinho/backend/internal/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestLoadSeedsDefaultCategories() {
	categories := suite.store.Categories()
	assert.NotEmpty(suite.T(), categories)

	for _, c := range categories {
		assert.True(suite.T(), c.IsDefault, "seeded category %s must be a default category", c.Name)
		assert.NotEqual(suite.T(), uuid.Nil, c.ID)
	}
}

func (suite *TestSuiteStandard) TestLoadIsStable() {
	seeded := len(suite.store.Categories())

	// A second store over the same backing data must read the seeded set
	// instead of seeding again.
	reloaded := store.New(suite.kv)
	reloaded.Now = suite.store.Now

	err := reloaded.Load(context.Background())
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), reloaded.Categories(), seeded)
}

func (suite *TestSuiteStandard) TestAddTransactionPersists() {
	transaction := suite.createTestTransaction(models.Transaction{
		Amount: decimal.NewFromFloat(14.50),
		Type:   models.Expense,
	})

	reloaded := store.New(suite.kv)
	reloaded.Now = suite.store.Now
	err := reloaded.Load(context.Background())
	assert.Nil(suite.T(), err)

	transactions := reloaded.Transactions()
	assert.Len(suite.T(), transactions, 1)
	assert.Equal(suite.T(), transaction.ID, transactions[0].ID)
	assert.True(suite.T(), transaction.Amount.Equal(transactions[0].Amount))
}

func (suite *TestSuiteStandard) TestAddTransactionRejectsInvalid() {
	transaction := models.Transaction{
		Amount:      decimal.NewFromFloat(-5),
		Description: "Mercado",
		CategoryID:  uuid.New(),
	}

	err := suite.store.AddTransaction(context.Background(), &transaction)
	assert.ErrorIs(suite.T(), err, models.ErrAmountNotPositive)
	assert.Empty(suite.T(), suite.store.Transactions())
}

func (suite *TestSuiteStandard) TestUpdateTransaction() {
	transaction := suite.createTestTransaction(models.Transaction{Type: models.Expense})

	transaction.Description = "Feira"
	err := suite.store.UpdateTransaction(context.Background(), transaction)
	assert.Nil(suite.T(), err)

	transactions := suite.store.Transactions()
	assert.Equal(suite.T(), "Feira", transactions[0].Description)
	assert.Equal(suite.T(), suite.now, transactions[0].UpdatedAt)
}

func (suite *TestSuiteStandard) TestUpdateTransactionNotFound() {
	transaction := models.Transaction{
		DefaultModel: models.DefaultModel{ID: uuid.New()},
		Amount:       decimal.NewFromFloat(10),
		Description:  "Mercado",
		CategoryID:   uuid.New(),
	}

	err := suite.store.UpdateTransaction(context.Background(), transaction)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteTransaction() {
	transaction := suite.createTestTransaction(models.Transaction{})

	err := suite.store.DeleteTransaction(context.Background(), transaction.ID)
	assert.Nil(suite.T(), err)
	assert.Empty(suite.T(), suite.store.Transactions())

	err = suite.store.DeleteTransaction(context.Background(), transaction.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestPersistenceErrorsAreWrapped() {
	cause := errors.New("disk full")
	suite.kv.Err = cause

	transaction := models.Transaction{
		Amount:      decimal.NewFromFloat(10),
		Description: "Mercado",
		CategoryID:  uuid.New(),
	}

	err := suite.store.AddTransaction(context.Background(), &transaction)
	assert.NotNil(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "saving transactions")
	assert.ErrorIs(suite.T(), err, cause)

	// There is no rollback: the in-memory collection already holds the
	// transaction even though the write failed.
	assert.Len(suite.T(), suite.store.Transactions(), 1)
}

func (suite *TestSuiteStandard) TestDeleteDefaultCategory() {
	category := suite.store.Categories()[0]

	err := suite.store.DeleteCategory(context.Background(), category.ID)
	assert.ErrorIs(suite.T(), err, models.ErrCategoryIsDefault)
	assert.Len(suite.T(), suite.store.Categories(), 12)
}

func (suite *TestSuiteStandard) TestDeleteCategory() {
	category := suite.createTestCategory(models.Category{Name: "Streaming"})

	err := suite.store.DeleteCategory(context.Background(), category.ID)
	assert.Nil(suite.T(), err)

	err = suite.store.DeleteCategory(context.Background(), category.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteCategoryKeepsTransactions() {
	category := suite.createTestCategory(models.Category{Name: "Streaming"})
	suite.createTestTransaction(models.Transaction{CategoryID: category.ID})

	err := suite.store.DeleteCategory(context.Background(), category.ID)
	assert.Nil(suite.T(), err)

	// No cascade: the transaction stays and its category name degrades to
	// the fallback label.
	assert.Len(suite.T(), suite.store.Transactions(), 1)
	assert.Equal(suite.T(), store.UnknownCategoryName, suite.store.CategoryName(category.ID))
}

func (suite *TestSuiteStandard) TestCategoryName() {
	category := suite.store.Categories()[0]
	assert.Equal(suite.T(), category.Name, suite.store.CategoryName(category.ID))
	assert.Equal(suite.T(), store.UnknownCategoryName, suite.store.CategoryName(uuid.New()))
}

func (suite *TestSuiteStandard) TestBalance() {
	suite.createTestTransaction(models.Transaction{Amount: decimal.NewFromInt(5000), Type: models.Income})
	suite.createTestTransaction(models.Transaction{Amount: decimal.NewFromInt(1200), Type: models.Expense})

	assert.True(suite.T(), suite.store.Balance().Equal(decimal.NewFromInt(3800)))
}

func (suite *TestSuiteStandard) TestBudgetSpentIsNotUserSettable() {
	budget := suite.createTestBudget(models.Budget{})
	suite.createTestTransaction(models.Transaction{
		Amount:     decimal.NewFromInt(100),
		Type:       models.Expense,
		CategoryID: budget.CategoryID,
	})

	stored := suite.store.Budgets()[0]
	assert.True(suite.T(), stored.Spent.Equal(decimal.NewFromInt(100)))

	// An update carrying a bogus spend keeps the derived value.
	stored.Spent = decimal.NewFromInt(999999)
	err := suite.store.UpdateBudget(context.Background(), stored)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), suite.store.Budgets()[0].Spent.Equal(decimal.NewFromInt(100)))
}

func (suite *TestSuiteStandard) TestGoalProgressIsNotUserSettable() {
	goal := suite.createTestGoal(models.Goal{Type: models.GoalPurchase})

	goal.CurrentAmount = decimal.NewFromInt(5000)
	err := suite.store.UpdateGoal(context.Background(), goal)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), suite.store.Goals()[0].CurrentAmount.IsZero())
}

func (suite *TestSuiteStandard) TestDeleteBudget() {
	budget := suite.createTestBudget(models.Budget{})

	err := suite.store.DeleteBudget(context.Background(), budget.ID)
	assert.Nil(suite.T(), err)

	err = suite.store.DeleteBudget(context.Background(), budget.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteGoal() {
	goal := suite.createTestGoal(models.Goal{})

	err := suite.store.DeleteGoal(context.Background(), goal.ID)
	assert.Nil(suite.T(), err)

	err = suite.store.DeleteGoal(context.Background(), goal.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestFilterTransactions() {
	food := suite.store.Categories()[0]
	transport := suite.store.Categories()[1]

	suite.createTestTransaction(models.Transaction{Description: "Mercado do bairro", CategoryID: food.ID, Type: models.Expense, Amount: decimal.NewFromInt(80)})
	suite.createTestTransaction(models.Transaction{Description: "Ônibus", CategoryID: transport.ID, Type: models.Expense, Amount: decimal.NewFromInt(5), Tags: []string{"trabalho"}})
	suite.createTestTransaction(models.Transaction{Description: "Salário", CategoryID: food.ID, Type: models.Income, Amount: decimal.NewFromInt(5000)})

	byType := suite.store.FilterTransactions(store.TransactionFilters{Type: models.Expense})
	assert.Len(suite.T(), byType, 2)

	byCategory := suite.store.FilterTransactions(store.TransactionFilters{CategoryID: transport.ID})
	assert.Len(suite.T(), byCategory, 1)

	bySearch := suite.store.FilterTransactions(store.TransactionFilters{SearchTerm: "mercado"})
	assert.Len(suite.T(), bySearch, 1)
	assert.Equal(suite.T(), "Mercado do bairro", bySearch[0].Description)

	byGlob := suite.store.FilterTransactions(store.TransactionFilters{SearchTerm: "sal*"})
	assert.Len(suite.T(), byGlob, 1)

	byTag := suite.store.FilterTransactions(store.TransactionFilters{Tags: []string{"trabalho"}})
	assert.Len(suite.T(), byTag, 1)

	minAmount := decimal.NewFromInt(50)
	byAmount := suite.store.FilterTransactions(store.TransactionFilters{MinAmount: &minAmount, Type: models.Expense})
	assert.Len(suite.T(), byAmount, 1)

	from := suite.now.Add(time.Hour)
	byDate := suite.store.FilterTransactions(store.TransactionFilters{From: from})
	assert.Empty(suite.T(), byDate)
}
