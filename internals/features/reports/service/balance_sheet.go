package service

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	assetModel "bursary_backend/internals/features/assets/model"
	assetService "bursary_backend/internals/features/assets/service"
	bankingModel "bursary_backend/internals/features/banking/model"
	expenseModel "bursary_backend/internals/features/finance/expenses/model"
	feeModel "bursary_backend/internals/features/finance/fees/model"
	paymentModel "bursary_backend/internals/features/finance/payments/model"
	payrollModel "bursary_backend/internals/features/hr/payroll/model"
	helper "bursary_backend/internals/helpers"
)

type BalanceSheetAssets struct {
	BankBalances    float64 `json:"bank_balances"`
	FeeReceivables  float64 `json:"fee_receivables"`
	LoanReceivables float64 `json:"staff_loan_receivables"`
	NetFixedAssets  float64 `json:"net_fixed_assets"`
	Total           float64 `json:"total"`
}

type BalanceSheetLiabilities struct {
	PayableExpenses float64 `json:"payable_expenses"`
	UnpaidSalaries  float64 `json:"unpaid_salaries"`
	Total           float64 `json:"total"`
}

type BalanceSheetEquity struct {
	Income          float64 `json:"income"`
	Expenditure     float64 `json:"expenditure"`
	AccumulatedFund float64 `json:"accumulated_fund"`
	Total           float64 `json:"total"`
}

type BalanceSheetReport struct {
	AsOf        string                  `json:"as_of"`
	Assets      BalanceSheetAssets      `json:"assets"`
	Liabilities BalanceSheetLiabilities `json:"liabilities"`
	Equity      BalanceSheetEquity      `json:"equity"`
	Difference  float64                 `json:"difference"`
	IsBalanced  bool                    `json:"is_balanced"`
}

func sumColumn(tx *gorm.DB, expr string) (float64, error) {
	var total *float64
	if err := tx.Select(expr).Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

// BuildBalanceSheet assembles the statement of financial position. Receivable
// and bank figures are live balances; income and expenditure respect the
// as-of cutoff so back-dated statements stay consistent.
func BuildBalanceSheet(db *gorm.DB, asOf time.Time) (*BalanceSheetReport, error) {
	report := &BalanceSheetReport{AsOf: helper.FormatDate(asOf)}

	bank, err := sumColumn(db.Model(&bankingModel.BankAccountModel{}), "COALESCE(SUM(bank_account_balance), 0)")
	if err != nil {
		return nil, fmt.Errorf("bank balances: %w", err)
	}

	receivables, err := sumColumn(db.Model(&feeModel.FeeAssignmentModel{}).
		Where("fee_assignment_balance > 0"), "COALESCE(SUM(fee_assignment_balance), 0)")
	if err != nil {
		return nil, fmt.Errorf("fee receivables: %w", err)
	}

	loans, err := sumColumn(db.Model(&payrollModel.StaffLoanModel{}).
		Where("loan_status = ?", payrollModel.LoanActive), "COALESCE(SUM(loan_balance), 0)")
	if err != nil {
		return nil, fmt.Errorf("loan receivables: %w", err)
	}

	var assets []assetModel.AssetModel
	if err := db.Where("asset_status = ?", assetModel.AssetActive).Find(&assets).Error; err != nil {
		return nil, fmt.Errorf("fixed assets: %w", err)
	}
	var fixedAssets float64
	for i := range assets {
		fixedAssets += assetService.BookValueAsOf(&assets[i], asOf)
	}

	report.Assets = BalanceSheetAssets{
		BankBalances:    helper.Round2(bank),
		FeeReceivables:  helper.Round2(receivables),
		LoanReceivables: helper.Round2(loans),
		NetFixedAssets:  helper.Round2(fixedAssets),
	}
	report.Assets.Total = helper.Round2(bank + receivables + loans + fixedAssets)

	payableExpenses, err := sumColumn(db.Model(&expenseModel.ExpenseModel{}).
		Where("expense_status = ? AND expense_payment_date <= ?", expenseModel.ExpenseApproved, asOf),
		"COALESCE(SUM(expense_amount), 0)")
	if err != nil {
		return nil, fmt.Errorf("payable expenses: %w", err)
	}

	unpaidSalaries, err := sumColumn(db.Model(&payrollModel.SalaryPaymentModel{}).
		Where("salary_status = ? AND salary_payment_date <= ?", payrollModel.SalaryApproved, asOf),
		"COALESCE(SUM(salary_net), 0)")
	if err != nil {
		return nil, fmt.Errorf("unpaid salaries: %w", err)
	}

	report.Liabilities = BalanceSheetLiabilities{
		PayableExpenses: helper.Round2(payableExpenses),
		UnpaidSalaries:  helper.Round2(unpaidSalaries),
	}
	report.Liabilities.Total = helper.Round2(payableExpenses + unpaidSalaries)

	income, err := sumColumn(db.Model(&paymentModel.PaymentModel{}).
		Where("payment_status = ? AND payment_date <= ?", paymentModel.PaymentConfirmed, asOf),
		"COALESCE(SUM(payment_amount), 0)")
	if err != nil {
		return nil, fmt.Errorf("income: %w", err)
	}

	paidExpenses, err := sumColumn(db.Model(&expenseModel.ExpenseModel{}).
		Where("expense_status = ? AND expense_payment_date <= ?", expenseModel.ExpensePaid, asOf),
		"COALESCE(SUM(expense_amount), 0)")
	if err != nil {
		return nil, fmt.Errorf("paid expenses: %w", err)
	}

	paidSalaries, err := sumColumn(db.Model(&payrollModel.SalaryPaymentModel{}).
		Where("salary_status = ? AND salary_payment_date <= ?", payrollModel.SalaryPaid, asOf),
		"COALESCE(SUM(salary_net), 0)")
	if err != nil {
		return nil, fmt.Errorf("paid salaries: %w", err)
	}

	expenditure := helper.Round2(paidExpenses + paidSalaries)
	report.Equity = BalanceSheetEquity{
		Income:          helper.Round2(income),
		Expenditure:     expenditure,
		AccumulatedFund: helper.Round2(income - expenditure),
	}
	report.Equity.Total = report.Equity.AccumulatedFund

	report.Difference = helper.Round2(report.Assets.Total - (report.Liabilities.Total + report.Equity.Total))
	report.IsBalanced = helper.MoneyEquals(report.Assets.Total, report.Liabilities.Total+report.Equity.Total)
	return report, nil
}

func (r *BalanceSheetReport) CSVHeader() []string {
	return []string{"Section", "Line", "Amount"}
}

func (r *BalanceSheetReport) CSVRows() [][]string {
	money := func(v float64) string { return fmt.Sprintf("%.2f", v) }
	return [][]string{
		{"Assets", "Bank balances", money(r.Assets.BankBalances)},
		{"Assets", "Fee receivables", money(r.Assets.FeeReceivables)},
		{"Assets", "Staff loan receivables", money(r.Assets.LoanReceivables)},
		{"Assets", "Net fixed assets", money(r.Assets.NetFixedAssets)},
		{"Assets", "Total assets", money(r.Assets.Total)},
		{"Liabilities", "Payable expenses", money(r.Liabilities.PayableExpenses)},
		{"Liabilities", "Unpaid salaries", money(r.Liabilities.UnpaidSalaries)},
		{"Liabilities", "Total liabilities", money(r.Liabilities.Total)},
		{"Equity", "Income to date", money(r.Equity.Income)},
		{"Equity", "Expenditure to date", money(r.Equity.Expenditure)},
		{"Equity", "Accumulated fund", money(r.Equity.AccumulatedFund)},
		{"", "Difference", money(r.Difference)},
	}
}

func (r *BalanceSheetReport) Sections() []HTMLSection {
	balanced := "No"
	if r.IsBalanced {
		balanced = "Yes"
	}
	return []HTMLSection{
		{
			Heading: "Statement of Financial Position",
			Notes: []string{
				"As of: " + r.AsOf,
				"Balanced: " + balanced,
			},
			Header: r.CSVHeader(),
			Rows:   r.CSVRows(),
		},
	}
}
