package service

import (
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	classModel "bursary_backend/internals/features/academics/classes/model"
	feeModel "bursary_backend/internals/features/finance/fees/model"
	helper "bursary_backend/internals/helpers"
)

/* =======================================================
   FEE COLLECTION SUMMARY
   ======================================================= */

type FeeCollectionRow struct {
	ClassID     string  `json:"class_id"`
	ClassName   string  `json:"class_name"`
	Students    int     `json:"students"`
	Assigned    float64 `json:"assigned"`
	Collected   float64 `json:"collected"`
	Outstanding float64 `json:"outstanding"`
}

type FeeCategoryRow struct {
	CategoryName string  `json:"category_name"`
	Assigned     float64 `json:"assigned"`
	Collected    float64 `json:"collected"`
	Outstanding  float64 `json:"outstanding"`
}

type FeeCollectionReport struct {
	AcademicYear     string             `json:"academic_year"`
	Term             string             `json:"term"`
	Classes          []FeeCollectionRow `json:"classes"`
	Categories       []FeeCategoryRow   `json:"categories"`
	TotalAssigned    float64            `json:"total_assigned"`
	TotalCollected   float64            `json:"total_collected"`
	TotalOutstanding float64            `json:"total_outstanding"`
}

// BuildFeeCollectionSummary aggregates assignments for one academic term by
// class and by fee category. The category split walks assignment items in Go
// rather than unnesting the jsonb column.
func BuildFeeCollectionSummary(db *gorm.DB, academicYear string, term feeModel.Term) (*FeeCollectionReport, error) {
	var assignments []feeModel.FeeAssignmentModel
	if err := db.
		Where("fee_assignment_academic_year = ? AND fee_assignment_term = ?", academicYear, term).
		Find(&assignments).Error; err != nil {
		return nil, err
	}

	var classes []classModel.ClassModel
	if err := db.Find(&classes).Error; err != nil {
		return nil, err
	}
	classNames := make(map[string]string, len(classes))
	for i := range classes {
		classNames[classes[i].ClassID.String()] = classes[i].ClassName
	}

	byClass := make(map[string]*FeeCollectionRow)
	byCategory := make(map[string]*FeeCategoryRow)
	report := &FeeCollectionReport{AcademicYear: academicYear, Term: string(term)}

	for i := range assignments {
		a := &assignments[i]

		classID := a.FeeAssignmentClassID.String()
		row, ok := byClass[classID]
		if !ok {
			name := classNames[classID]
			if name == "" {
				name = classID
			}
			row = &FeeCollectionRow{ClassID: classID, ClassName: name}
			byClass[classID] = row
		}
		row.Students++
		row.Assigned += a.FeeAssignmentTotalAmount
		row.Collected += a.FeeAssignmentAmountPaid
		row.Outstanding += a.FeeAssignmentBalance

		for _, item := range a.FeeAssignmentItems {
			cat, ok := byCategory[item.CategoryName]
			if !ok {
				cat = &FeeCategoryRow{CategoryName: item.CategoryName}
				byCategory[item.CategoryName] = cat
			}
			cat.Assigned += item.Amount
			cat.Collected += item.AmountPaid
			cat.Outstanding += item.Balance
		}

		report.TotalAssigned += a.FeeAssignmentTotalAmount
		report.TotalCollected += a.FeeAssignmentAmountPaid
		report.TotalOutstanding += a.FeeAssignmentBalance
	}

	report.Classes = make([]FeeCollectionRow, 0, len(byClass))
	for _, row := range byClass {
		row.Assigned = helper.Round2(row.Assigned)
		row.Collected = helper.Round2(row.Collected)
		row.Outstanding = helper.Round2(row.Outstanding)
		report.Classes = append(report.Classes, *row)
	}
	sort.Slice(report.Classes, func(i, j int) bool {
		return report.Classes[i].ClassName < report.Classes[j].ClassName
	})

	report.Categories = make([]FeeCategoryRow, 0, len(byCategory))
	for _, row := range byCategory {
		row.Assigned = helper.Round2(row.Assigned)
		row.Collected = helper.Round2(row.Collected)
		row.Outstanding = helper.Round2(row.Outstanding)
		report.Categories = append(report.Categories, *row)
	}
	sort.Slice(report.Categories, func(i, j int) bool {
		return report.Categories[i].CategoryName < report.Categories[j].CategoryName
	})

	report.TotalAssigned = helper.Round2(report.TotalAssigned)
	report.TotalCollected = helper.Round2(report.TotalCollected)
	report.TotalOutstanding = helper.Round2(report.TotalOutstanding)
	return report, nil
}

func (r *FeeCollectionReport) CSVHeader() []string {
	return []string{"Scope", "Name", "Students", "Assigned", "Collected", "Outstanding"}
}

func (r *FeeCollectionReport) CSVRows() [][]string {
	money := func(v float64) string { return fmt.Sprintf("%.2f", v) }
	rows := make([][]string, 0, len(r.Classes)+len(r.Categories)+1)
	for _, row := range r.Classes {
		rows = append(rows, []string{
			"class", row.ClassName, fmt.Sprintf("%d", row.Students),
			money(row.Assigned), money(row.Collected), money(row.Outstanding),
		})
	}
	for _, row := range r.Categories {
		rows = append(rows, []string{
			"category", row.CategoryName, "",
			money(row.Assigned), money(row.Collected), money(row.Outstanding),
		})
	}
	rows = append(rows, []string{
		"total", "", "",
		money(r.TotalAssigned), money(r.TotalCollected), money(r.TotalOutstanding),
	})
	return rows
}

func (r *FeeCollectionReport) Sections() []HTMLSection {
	money := func(v float64) string { return fmt.Sprintf("%.2f", v) }

	classRows := make([][]string, 0, len(r.Classes)+1)
	for _, row := range r.Classes {
		classRows = append(classRows, []string{
			row.ClassName, fmt.Sprintf("%d", row.Students),
			money(row.Assigned), money(row.Collected), money(row.Outstanding),
		})
	}
	classRows = append(classRows, []string{
		"Total", "", money(r.TotalAssigned), money(r.TotalCollected), money(r.TotalOutstanding),
	})

	categoryRows := make([][]string, 0, len(r.Categories))
	for _, row := range r.Categories {
		categoryRows = append(categoryRows, []string{
			row.CategoryName, money(row.Assigned), money(row.Collected), money(row.Outstanding),
		})
	}

	return []HTMLSection{
		{
			Heading: "Collection by Class",
			Notes:   []string{"Academic year: " + r.AcademicYear, "Term: " + r.Term},
			Header:  []string{"Class", "Students", "Assigned", "Collected", "Outstanding"},
			Rows:    classRows,
		},
		{
			Heading: "Collection by Fee Category",
			Header:  []string{"Category", "Assigned", "Collected", "Outstanding"},
			Rows:    categoryRows,
		},
	}
}

/* =======================================================
   OUTSTANDING FEES (AGING)
   ======================================================= */

const (
	BucketCurrent = "current"
	Bucket1To30   = "1-30 days"
	Bucket31To60  = "31-60 days"
	BucketOver60  = "over 60 days"
)

type OutstandingFeeRow struct {
	AssignmentID string  `json:"fee_assignment_id"`
	StudentName  string  `json:"student_name"`
	ClassName    string  `json:"class_name"`
	AcademicYear string  `json:"academic_year"`
	Term         string  `json:"term"`
	TotalAmount  float64 `json:"total_amount"`
	AmountPaid   float64 `json:"amount_paid"`
	Balance      float64 `json:"balance"`
	DueDate      *string `json:"due_date,omitempty"`
	DaysOverdue  int     `json:"days_overdue"`
	Bucket       string  `json:"bucket"`
}

type AgingTotals struct {
	Current float64 `json:"current"`
	Days30  float64 `json:"days_1_30"`
	Days60  float64 `json:"days_31_60"`
	Over60  float64 `json:"over_60"`
	Total   float64 `json:"total"`
}

type OutstandingFeesReport struct {
	AsOf   string              `json:"as_of"`
	Rows   []OutstandingFeeRow `json:"rows"`
	Totals AgingTotals         `json:"totals"`
}

// AgingBucketFor places a balance by how far past its due date it is.
// No due date, or a due date still ahead, counts as current.
func AgingBucketFor(dueDate *time.Time, asOf time.Time) (string, int) {
	if dueDate == nil || !dueDate.Before(asOf) {
		return BucketCurrent, 0
	}
	days := int(asOf.Sub(*dueDate).Hours() / 24)
	switch {
	case days <= 30:
		return Bucket1To30, days
	case days <= 60:
		return Bucket31To60, days
	default:
		return BucketOver60, days
	}
}

// BuildOutstandingFeesReport lists every assignment still carrying a balance,
// aged against the as-of date.
func BuildOutstandingFeesReport(db *gorm.DB, asOf time.Time) (*OutstandingFeesReport, error) {
	var assignments []feeModel.FeeAssignmentModel
	if err := db.
		Where("fee_assignment_balance > 0").
		Order("fee_assignment_due_date ASC NULLS LAST").
		Find(&assignments).Error; err != nil {
		return nil, err
	}

	var classes []classModel.ClassModel
	if err := db.Find(&classes).Error; err != nil {
		return nil, err
	}
	classNames := make(map[string]string, len(classes))
	for i := range classes {
		classNames[classes[i].ClassID.String()] = classes[i].ClassName
	}

	report := &OutstandingFeesReport{
		AsOf: helper.FormatDate(asOf),
		Rows: make([]OutstandingFeeRow, 0, len(assignments)),
	}
	for i := range assignments {
		a := &assignments[i]
		bucket, days := AgingBucketFor(a.FeeAssignmentDueDate, asOf)

		row := OutstandingFeeRow{
			AssignmentID: a.FeeAssignmentID.String(),
			StudentName:  a.FeeAssignmentStudentName,
			ClassName:    classNames[a.FeeAssignmentClassID.String()],
			AcademicYear: a.FeeAssignmentAcademicYear,
			Term:         string(a.FeeAssignmentTerm),
			TotalAmount:  a.FeeAssignmentTotalAmount,
			AmountPaid:   a.FeeAssignmentAmountPaid,
			Balance:      a.FeeAssignmentBalance,
			DaysOverdue:  days,
			Bucket:       bucket,
		}
		if a.FeeAssignmentDueDate != nil {
			d := helper.FormatDate(*a.FeeAssignmentDueDate)
			row.DueDate = &d
		}
		report.Rows = append(report.Rows, row)

		switch bucket {
		case BucketCurrent:
			report.Totals.Current += a.FeeAssignmentBalance
		case Bucket1To30:
			report.Totals.Days30 += a.FeeAssignmentBalance
		case Bucket31To60:
			report.Totals.Days60 += a.FeeAssignmentBalance
		default:
			report.Totals.Over60 += a.FeeAssignmentBalance
		}
		report.Totals.Total += a.FeeAssignmentBalance
	}

	report.Totals.Current = helper.Round2(report.Totals.Current)
	report.Totals.Days30 = helper.Round2(report.Totals.Days30)
	report.Totals.Days60 = helper.Round2(report.Totals.Days60)
	report.Totals.Over60 = helper.Round2(report.Totals.Over60)
	report.Totals.Total = helper.Round2(report.Totals.Total)
	return report, nil
}

func (r *OutstandingFeesReport) CSVHeader() []string {
	return []string{"Student", "Class", "Year", "Term", "Total", "Paid", "Balance", "Due Date", "Days Overdue", "Bucket"}
}

func (r *OutstandingFeesReport) CSVRows() [][]string {
	money := func(v float64) string { return fmt.Sprintf("%.2f", v) }
	rows := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		due := ""
		if row.DueDate != nil {
			due = *row.DueDate
		}
		rows = append(rows, []string{
			row.StudentName, row.ClassName, row.AcademicYear, row.Term,
			money(row.TotalAmount), money(row.AmountPaid), money(row.Balance),
			due, fmt.Sprintf("%d", row.DaysOverdue), row.Bucket,
		})
	}
	return rows
}

func (r *OutstandingFeesReport) Sections() []HTMLSection {
	money := func(v float64) string { return fmt.Sprintf("%.2f", v) }
	return []HTMLSection{
		{
			Heading: "Outstanding Fees",
			Notes: []string{
				"As of: " + r.AsOf,
				"Current: " + money(r.Totals.Current),
				"1-30 days: " + money(r.Totals.Days30),
				"31-60 days: " + money(r.Totals.Days60),
				"Over 60 days: " + money(r.Totals.Over60),
				"Total outstanding: " + money(r.Totals.Total),
			},
			Header: r.CSVHeader(),
			Rows:   r.CSVRows(),
		},
	}
}
