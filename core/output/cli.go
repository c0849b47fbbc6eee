package output

import (
	"fmt"
	"io"

	"wrapquote/core/quote"
	"wrapquote/core/ui"
)

// CLIFormatter renders quotes as terminal tables
type CLIFormatter struct {
	noColor bool
}

// NewCLIFormatter creates a CLI formatter
func NewCLIFormatter(noColor bool) *CLIFormatter {
	return &CLIFormatter{noColor: noColor}
}

// Format returns FormatCLI
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render prints a summary and breakdown for each quote
func (f *CLIFormatter) Render(w io.Writer, report *Report) error {
	out := ui.NewWriter(w, f.noColor)
	for _, q := range report.Quotes {
		f.renderQuote(out, q, report.Explain)
	}
	return nil
}

func (f *CLIFormatter) renderQuote(out *ui.Writer, q *quote.Quote, explain bool) {
	title := fmt.Sprintf("%s %s", q.Job.Vehicle, q.Job.Wrap)
	if q.Name != "" {
		title = q.Name + " · " + title
	}

	summary := out.NewQuoteSummary(title)
	summary.Retail = money(q.Pricing.Retail.StringFixed(2))
	summary.Deposit = money(q.Pricing.DepositAmount.StringFixed(2))
	summary.Subtotal = money(q.Pricing.SubtotalCost.StringFixed(2))
	summary.Profit = money(q.Pricing.ProfitDollars.StringFixed(2))
	summary.Margin = q.Pricing.ProfitMargin.Shift(2).StringFixed(1) + "%"
	summary.Valid = q.Valid()
	for _, w := range q.Warnings {
		summary.Warnings = append(summary.Warnings, w.Message)
	}
	summary.Render()

	out.Println("")
	out.SubHeader(fmt.Sprintf("%s · %s · %s roll", q.Job.Scope, q.Job.Category, q.Job.RollWidth))

	table := out.NewTable("Item", "Amount", "Formula")
	for _, item := range q.LineItems() {
		table.AddRow(item.Name, item.AmountString(), item.Formula)
	}
	table.Render()

	if !explain {
		return
	}
	out.Println("")
	out.SubHeader("Explanation")
	for _, item := range q.LineItems() {
		out.Print("%s", item.ToHover())
	}
}

func money(s string) string {
	return "$" + s
}
