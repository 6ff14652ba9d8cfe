package service

import (
	"errors"
	"fmt"

	"bursary_backend/internals/features/finance/fees/model"
	helper "bursary_backend/internals/helpers"
)

var ErrAllocationCategoryMismatch = errors.New("allocation category is not part of the fee assignment")

// BuildAssignmentItems snapshots structure items onto a new assignment.
// selected narrows the optional items by category ID; mandatory items are
// always included. An empty selection keeps every item.
func BuildAssignmentItems(structureItems []model.FeeStructureItem, selected []string) ([]model.FeeAssignmentItem, float64, error) {
	selectedSet := make(map[string]bool, len(selected))
	for _, id := range selected {
		selectedSet[id] = true
	}

	items := make([]model.FeeAssignmentItem, 0, len(structureItems))
	var original float64
	for _, it := range structureItems {
		if len(selected) > 0 && !it.IsMandatory && !selectedSet[it.CategoryID] {
			continue
		}
		items = append(items, model.FeeAssignmentItem{
			CategoryID:   it.CategoryID,
			CategoryName: it.CategoryName,
			FeeType:      it.FeeType,
			Amount:       it.Amount,
			IsMandatory:  it.IsMandatory,
			AmountPaid:   0,
			Balance:      it.Amount,
		})
		original += it.Amount
	}
	if len(items) == 0 {
		return nil, 0, fmt.Errorf("fee assignment must contain at least one item")
	}
	return items, helper.Round2(original), nil
}

// RecomputeAggregates rebuilds paid/balance/status from the item lines.
// Status follows the amounts: unpaid while nothing is paid, paid when the
// balance closes within the money tolerance, overpaid below zero.
func RecomputeAggregates(m *model.FeeAssignmentModel) {
	var paid float64
	for i := range m.FeeAssignmentItems {
		item := &m.FeeAssignmentItems[i]
		item.AmountPaid = helper.Round2(item.AmountPaid)
		item.Balance = helper.Round2(item.Amount - item.AmountPaid)
		paid += item.AmountPaid
	}
	m.FeeAssignmentAmountPaid = helper.Round2(paid)
	m.FeeAssignmentBalance = helper.Round2(m.FeeAssignmentTotalAmount - m.FeeAssignmentAmountPaid)

	switch {
	case helper.MoneyEquals(m.FeeAssignmentAmountPaid, 0):
		m.FeeAssignmentStatus = model.AssignmentUnpaid
	case m.FeeAssignmentBalance < -helper.MoneyTolerance:
		m.FeeAssignmentStatus = model.AssignmentOverpaid
	case helper.MoneyEquals(m.FeeAssignmentBalance, 0):
		m.FeeAssignmentStatus = model.AssignmentPaid
	default:
		m.FeeAssignmentStatus = model.AssignmentPartial
	}
}

// AllocationLine is the slice of a payment that lands on one category.
type AllocationLine struct {
	CategoryID string
	Amount     float64
}

// ApplyPaymentToAssignment adds confirmed payment allocations to the matching
// item lines. Every allocation must hit a category present on the assignment.
func ApplyPaymentToAssignment(m *model.FeeAssignmentModel, allocations []AllocationLine) error {
	for _, alloc := range allocations {
		idx := findItemIndex(m.FeeAssignmentItems, alloc.CategoryID)
		if idx < 0 {
			return ErrAllocationCategoryMismatch
		}
		m.FeeAssignmentItems[idx].AmountPaid = helper.Round2(m.FeeAssignmentItems[idx].AmountPaid + alloc.Amount)
	}
	RecomputeAggregates(m)
	return nil
}

// ReversePaymentFromAssignment backs refunded allocations out again. Item
// paid amounts never drop below zero even if books drifted.
func ReversePaymentFromAssignment(m *model.FeeAssignmentModel, allocations []AllocationLine) error {
	for _, alloc := range allocations {
		idx := findItemIndex(m.FeeAssignmentItems, alloc.CategoryID)
		if idx < 0 {
			return ErrAllocationCategoryMismatch
		}
		next := helper.Round2(m.FeeAssignmentItems[idx].AmountPaid - alloc.Amount)
		if next < 0 {
			next = 0
		}
		m.FeeAssignmentItems[idx].AmountPaid = next
	}
	RecomputeAggregates(m)
	return nil
}

// ApplyScholarship recomputes the money columns for a scholarship snapshot.
func ApplyScholarship(m *model.FeeAssignmentModel, s *model.ScholarshipModel) {
	discount := ComputeDiscount(s, m.FeeAssignmentOriginalAmount)
	scholarshipType := string(s.ScholarshipType)

	m.FeeAssignmentScholarshipID = &s.ScholarshipID
	m.FeeAssignmentScholarshipName = &s.ScholarshipName
	m.FeeAssignmentScholarshipType = &scholarshipType
	m.FeeAssignmentScholarshipValue = ScholarshipValue(s)
	m.FeeAssignmentDiscountAmount = discount
	m.FeeAssignmentTotalAmount = helper.Round2(m.FeeAssignmentOriginalAmount - discount)
	RecomputeAggregates(m)
}

// RemoveScholarship restores the undiscounted totals.
func RemoveScholarship(m *model.FeeAssignmentModel) {
	m.FeeAssignmentScholarshipID = nil
	m.FeeAssignmentScholarshipName = nil
	m.FeeAssignmentScholarshipType = nil
	m.FeeAssignmentScholarshipValue = nil
	m.FeeAssignmentDiscountAmount = 0
	m.FeeAssignmentTotalAmount = m.FeeAssignmentOriginalAmount
	RecomputeAggregates(m)
}

func findItemIndex(items []model.FeeAssignmentItem, categoryID string) int {
	for i := range items {
		if items[i].CategoryID == categoryID {
			return i
		}
	}
	return -1
}
