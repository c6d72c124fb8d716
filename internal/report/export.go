package report

import (
	"fmt"
	"strings"

	"github.com/cofrinho/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ptBR localizes numbers in the export formats: decimal comma, point as
// thousands separator.
var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// Currency formats an amount as Brazilian currency.
func Currency(amount decimal.Decimal) string {
	return ptBR.Sprintf("R$ %.2f", amount.InexactFloat64())
}

func typeLabel(t models.TransactionType) string {
	if t == models.Income {
		return "Receita"
	}
	return "Despesa"
}

// csvAmount renders an amount with a decimal comma and no thousands
// grouping, matching the historical export format.
func csvAmount(amount decimal.Decimal) string {
	return strings.ReplaceAll(amount.String(), ".", ",")
}

// ExportCSV renders the transactions of a period as CSV. Embedded quotes in
// descriptions are escaped by doubling. A nil period exports everything.
func (r *Reporter) ExportCSV(period *Range) string {
	transactions := r.store.Transactions()
	if period != nil {
		transactions = r.inPeriod(*period)
	}

	var b strings.Builder
	b.WriteString("ID,Tipo,Valor,Categoria,Descrição,Data\n")

	for _, t := range transactions {
		row := []string{
			t.ID.String(),
			typeLabel(t.Type),
			csvAmount(t.Amount),
			r.store.CategoryName(t.CategoryID),
			`"` + strings.ReplaceAll(t.Description, `"`, `""`) + `"`,
			t.Date.Format("02/01/2006"),
		}

		b.WriteString(strings.Join(row, ","))
		b.WriteString("\n")
	}

	return b.String()
}

// ExportText renders the transactions of a period as a plain-text report
// with a summary and a transaction table. A nil period exports everything.
func (r *Reporter) ExportText(period *Range) string {
	transactions := r.store.Transactions()
	if period != nil {
		transactions = r.inPeriod(*period)
	}

	summary := summarize(transactions)

	var b strings.Builder
	b.WriteString("RELATÓRIO FINANCEIRO\n\n")

	b.WriteString("RESUMO:\n")
	fmt.Fprintf(&b, "Receitas: %s\n", Currency(summary.Income))
	fmt.Fprintf(&b, "Despesas: %s\n", Currency(summary.Expenses))

	negative := ""
	if summary.Balance.IsNegative() {
		negative = " (negativo)"
	}
	fmt.Fprintf(&b, "Saldo: %s%s\n\n", Currency(summary.Balance.Abs()), negative)

	fmt.Fprintf(&b, "TRANSAÇÕES (%d):\n", len(transactions))
	b.WriteString("Tipo | Valor | Categoria | Descrição | Data\n")

	for _, t := range transactions {
		fmt.Fprintf(&b, "%s | %s | %s | %s | %s\n",
			typeLabel(t.Type),
			Currency(t.Amount),
			r.store.CategoryName(t.CategoryID),
			t.Description,
			t.Date.Format("02/01/2006"),
		)
	}

	fmt.Fprintf(&b, "\nGerado em %s\n", r.Now().Format("02/01/2006"))

	return b.String()
}
