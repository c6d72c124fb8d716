package store

import (
	"time"

	"github.com/cofrinho/backend/internal/models"
)

// defaultCategories returns the category set seeded on first load.
// Default categories cannot be deleted.
func defaultCategories(now time.Time) []models.Category {
	seed := []models.Category{
		{Name: "Alimentação", Type: models.Expense, Icon: "food", Color: "#FF7043"},
		{Name: "Transporte", Type: models.Expense, Icon: "car", Color: "#42A5F5"},
		{Name: "Moradia", Type: models.Expense, Icon: "home", Color: "#7E57C2"},
		{Name: "Saúde", Type: models.Expense, Icon: "heart", Color: "#EC407A"},
		{Name: "Educação", Type: models.Expense, Icon: "book", Color: "#26A69A"},
		{Name: "Lazer", Type: models.Expense, Icon: "gamepad", Color: "#FFCA28"},
		{Name: "Compras", Type: models.Expense, Icon: "cart", Color: "#AB47BC"},
		{Name: "Contas", Type: models.Expense, Icon: "receipt", Color: "#5C6BC0"},
		{Name: "Salário", Type: models.Income, Icon: "cash", Color: "#66BB6A"},
		{Name: "Freelance", Type: models.Income, Icon: "briefcase", Color: "#9CCC65"},
		{Name: "Investimentos", Type: models.Income, Icon: "chart", Color: "#26C6DA"},
		{Name: "Outros", Type: models.Income, Icon: "dots", Color: "#D4E157"},
	}

	for i := range seed {
		seed[i].Init(now)
		seed[i].IsDefault = true
	}

	return seed
}
