package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"bursary_backend/internals/features/finance/fees/model"
)

var (
	tuitionID = uuid.NewString()
	busID     = uuid.NewString()
	lunchID   = uuid.NewString()
)

func structureItems() []model.FeeStructureItem {
	return []model.FeeStructureItem{
		{CategoryID: tuitionID, CategoryName: "Tuition", FeeType: "tuition", Amount: 50_000, IsMandatory: true},
		{CategoryID: busID, CategoryName: "School Bus", FeeType: "transport", Amount: 15_000, IsMandatory: false},
		{CategoryID: lunchID, CategoryName: "Lunch", FeeType: "feeding", Amount: 20_000, IsMandatory: false},
	}
}

func assignmentWith(items ...model.FeeAssignmentItem) *model.FeeAssignmentModel {
	var total float64
	for _, it := range items {
		total += it.Amount
	}
	m := &model.FeeAssignmentModel{
		FeeAssignmentItems:          datatypes.JSONSlice[model.FeeAssignmentItem](items),
		FeeAssignmentOriginalAmount: total,
		FeeAssignmentTotalAmount:    total,
	}
	RecomputeAggregates(m)
	return m
}

func TestBuildAssignmentItems(t *testing.T) {
	t.Run("empty selection keeps every item", func(t *testing.T) {
		items, original, err := BuildAssignmentItems(structureItems(), nil)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.InDelta(t, 85_000, original, 0.001)
		assert.Equal(t, "Tuition", items[0].CategoryName)
		assert.InDelta(t, 50_000, items[0].Balance, 0.001)
		assert.Zero(t, items[0].AmountPaid)
	})

	t.Run("selection narrows optional items only", func(t *testing.T) {
		items, original, err := BuildAssignmentItems(structureItems(), []string{busID})
		require.NoError(t, err)
		require.Len(t, items, 2, "mandatory tuition rides along unselected")
		assert.Equal(t, tuitionID, items[0].CategoryID)
		assert.Equal(t, busID, items[1].CategoryID)
		assert.InDelta(t, 65_000, original, 0.001)
	})

	t.Run("unknown selection still keeps mandatory items", func(t *testing.T) {
		items, original, err := BuildAssignmentItems(structureItems(), []string{uuid.NewString()})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.InDelta(t, 50_000, original, 0.001)
	})

	t.Run("no items is an error", func(t *testing.T) {
		optionalOnly := []model.FeeStructureItem{
			{CategoryID: busID, CategoryName: "School Bus", Amount: 15_000, IsMandatory: false},
		}
		_, _, err := BuildAssignmentItems(optionalOnly, []string{uuid.NewString()})
		assert.Error(t, err)
	})
}

func TestRecomputeAggregatesStatusLadder(t *testing.T) {
	tests := []struct {
		name       string
		paid       float64
		wantStatus model.AssignmentStatus
		wantBal    float64
	}{
		{name: "nothing paid", paid: 0, wantStatus: model.AssignmentUnpaid, wantBal: 50_000},
		{name: "part paid", paid: 20_000, wantStatus: model.AssignmentPartial, wantBal: 30_000},
		{name: "settled", paid: 50_000, wantStatus: model.AssignmentPaid, wantBal: 0},
		{name: "settled within tolerance", paid: 49_999.995, wantStatus: model.AssignmentPaid, wantBal: 0},
		{name: "overpaid", paid: 50_100, wantStatus: model.AssignmentOverpaid, wantBal: -100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := assignmentWith(model.FeeAssignmentItem{
				CategoryID: tuitionID, CategoryName: "Tuition", Amount: 50_000, IsMandatory: true,
				AmountPaid: tt.paid,
			})
			assert.Equal(t, tt.wantStatus, m.FeeAssignmentStatus)
			assert.InDelta(t, tt.wantBal, m.FeeAssignmentBalance, 0.011)
			assert.InDelta(t, tt.paid, m.FeeAssignmentAmountPaid, 0.011)
		})
	}
}

func TestApplyPaymentToAssignment(t *testing.T) {
	m := assignmentWith(
		model.FeeAssignmentItem{CategoryID: tuitionID, CategoryName: "Tuition", Amount: 50_000, IsMandatory: true},
		model.FeeAssignmentItem{CategoryID: busID, CategoryName: "School Bus", Amount: 15_000},
	)

	err := ApplyPaymentToAssignment(m, []AllocationLine{
		{CategoryID: tuitionID, Amount: 30_000},
		{CategoryID: busID, Amount: 15_000},
	})
	require.NoError(t, err)

	assert.InDelta(t, 45_000, m.FeeAssignmentAmountPaid, 0.001)
	assert.InDelta(t, 20_000, m.FeeAssignmentBalance, 0.001)
	assert.Equal(t, model.AssignmentPartial, m.FeeAssignmentStatus)
	assert.InDelta(t, 20_000, m.FeeAssignmentItems[0].Balance, 0.001)
	assert.Zero(t, m.FeeAssignmentItems[1].Balance)

	t.Run("unknown category rejected", func(t *testing.T) {
		err := ApplyPaymentToAssignment(m, []AllocationLine{{CategoryID: uuid.NewString(), Amount: 100}})
		assert.ErrorIs(t, err, ErrAllocationCategoryMismatch)
	})
}

func TestReversePaymentFromAssignment(t *testing.T) {
	m := assignmentWith(
		model.FeeAssignmentItem{CategoryID: tuitionID, CategoryName: "Tuition", Amount: 50_000, AmountPaid: 30_000},
	)
	require.Equal(t, model.AssignmentPartial, m.FeeAssignmentStatus)

	require.NoError(t, ReversePaymentFromAssignment(m, []AllocationLine{{CategoryID: tuitionID, Amount: 30_000}}))
	assert.Equal(t, model.AssignmentUnpaid, m.FeeAssignmentStatus)
	assert.Zero(t, m.FeeAssignmentAmountPaid)
	assert.InDelta(t, 50_000, m.FeeAssignmentBalance, 0.001)

	t.Run("reversal never drives paid below zero", func(t *testing.T) {
		m := assignmentWith(
			model.FeeAssignmentItem{CategoryID: tuitionID, CategoryName: "Tuition", Amount: 50_000, AmountPaid: 1_000},
		)
		require.NoError(t, ReversePaymentFromAssignment(m, []AllocationLine{{CategoryID: tuitionID, Amount: 5_000}}))
		assert.Zero(t, m.FeeAssignmentItems[0].AmountPaid)
		assert.Equal(t, model.AssignmentUnpaid, m.FeeAssignmentStatus)
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		err := ReversePaymentFromAssignment(m, []AllocationLine{{CategoryID: uuid.NewString(), Amount: 1}})
		assert.ErrorIs(t, err, ErrAllocationCategoryMismatch)
	})
}

func TestApplyAndRemoveScholarship(t *testing.T) {
	pct := 25.0
	award := &model.ScholarshipModel{
		ScholarshipID:            uuid.New(),
		ScholarshipName:          "PTA Merit Award",
		ScholarshipType:          model.ScholarshipPercentage,
		ScholarshipPercentageOff: &pct,
	}

	m := assignmentWith(
		model.FeeAssignmentItem{CategoryID: tuitionID, CategoryName: "Tuition", Amount: 80_000, IsMandatory: true},
	)

	ApplyScholarship(m, award)

	require.NotNil(t, m.FeeAssignmentScholarshipID)
	assert.Equal(t, award.ScholarshipID, *m.FeeAssignmentScholarshipID)
	assert.Equal(t, "PTA Merit Award", *m.FeeAssignmentScholarshipName)
	assert.Equal(t, "percentage", *m.FeeAssignmentScholarshipType)
	assert.InDelta(t, 25.0, *m.FeeAssignmentScholarshipValue, 0.001)
	assert.InDelta(t, 20_000, m.FeeAssignmentDiscountAmount, 0.001)
	assert.InDelta(t, 60_000, m.FeeAssignmentTotalAmount, 0.001)
	assert.InDelta(t, 60_000, m.FeeAssignmentBalance, 0.001)

	RemoveScholarship(m)

	assert.Nil(t, m.FeeAssignmentScholarshipID)
	assert.Nil(t, m.FeeAssignmentScholarshipValue)
	assert.Zero(t, m.FeeAssignmentDiscountAmount)
	assert.InDelta(t, 80_000, m.FeeAssignmentTotalAmount, 0.001)
	assert.InDelta(t, 80_000, m.FeeAssignmentBalance, 0.001)
	assert.Equal(t, model.AssignmentUnpaid, m.FeeAssignmentStatus)
}
