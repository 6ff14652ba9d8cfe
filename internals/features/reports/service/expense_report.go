package service

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	expenseModel "bursary_backend/internals/features/finance/expenses/model"
	helper "bursary_backend/internals/helpers"
)

type ExpenseSummaryRow struct {
	Month        string  `json:"month"`
	CategoryName string  `json:"category_name"`
	Count        int     `json:"count"`
	Total        float64 `json:"total"`
}

type ExpenseSummaryReport struct {
	DateFrom   string              `json:"date_from"`
	DateTo     string              `json:"date_to"`
	Rows       []ExpenseSummaryRow `json:"rows"`
	GrandTotal float64             `json:"grand_total"`
}

// BuildExpenseSummary totals non-rejected expenses per category per month
// over a date range.
func BuildExpenseSummary(db *gorm.DB, from, to time.Time) (*ExpenseSummaryReport, error) {
	var rows []ExpenseSummaryRow
	err := db.Model(&expenseModel.ExpenseModel{}).
		Select("to_char(expense_payment_date, 'YYYY-MM') AS month, expense_category_name AS category_name, COUNT(*) AS count, SUM(expense_amount) AS total").
		Where("expense_status <> ? AND expense_payment_date >= ? AND expense_payment_date <= ?",
			expenseModel.ExpenseRejected, from, to).
		Group("month, category_name").
		Order("month ASC, category_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	report := &ExpenseSummaryReport{
		DateFrom: helper.FormatDate(from),
		DateTo:   helper.FormatDate(to),
		Rows:     rows,
	}
	for i := range rows {
		rows[i].Total = helper.Round2(rows[i].Total)
		report.GrandTotal += rows[i].Total
	}
	report.GrandTotal = helper.Round2(report.GrandTotal)
	return report, nil
}

func (r *ExpenseSummaryReport) CSVHeader() []string {
	return []string{"Month", "Category", "Count", "Total"}
}

func (r *ExpenseSummaryReport) CSVRows() [][]string {
	rows := make([][]string, 0, len(r.Rows)+1)
	for _, row := range r.Rows {
		rows = append(rows, []string{
			row.Month, row.CategoryName, fmt.Sprintf("%d", row.Count), fmt.Sprintf("%.2f", row.Total),
		})
	}
	rows = append(rows, []string{"Total", "", "", fmt.Sprintf("%.2f", r.GrandTotal)})
	return rows
}

func (r *ExpenseSummaryReport) Sections() []HTMLSection {
	return []HTMLSection{
		{
			Heading: "Expense Summary",
			Notes:   []string{"From: " + r.DateFrom, "To: " + r.DateTo},
			Header:  r.CSVHeader(),
			Rows:    r.CSVRows(),
		},
	}
}
