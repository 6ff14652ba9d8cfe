package dto

import paymentDTO "bursary_backend/internals/features/finance/payments/dto"

// StudentStats counts the student body.
type StudentStats struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}

// FeeStats aggregates the current term's assignments.
type FeeStats struct {
	AcademicYear string  `json:"academic_year"`
	Term         string  `json:"term"`
	Assigned     float64 `json:"assigned"`
	Collected    float64 `json:"collected"`
	Outstanding  float64 `json:"outstanding"`
}

// PendingCounts surfaces everything waiting on a bursar or admin action.
type PendingCounts struct {
	Payments        int64 `json:"payments"`
	SalaryPayments  int64 `json:"salary_payments"`
	Transfers       int64 `json:"transfers"`
	PayableExpenses int64 `json:"payable_expenses"`
}

// OverviewResponse is the single payload behind the accounting dashboard.
// The UI polls it, so everything is one round trip.
type OverviewResponse struct {
	Students          StudentStats                 `json:"students"`
	ActiveStaff       int64                        `json:"active_staff"`
	Fees              FeeStats                     `json:"fees"`
	MonthExpensesPaid float64                      `json:"month_expenses_paid"`
	BankBalanceTotal  float64                      `json:"bank_balance_total"`
	Pending           PendingCounts                `json:"pending"`
	RecentPayments    []paymentDTO.PaymentResponse `json:"recent_payments"`
}
