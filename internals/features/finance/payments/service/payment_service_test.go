package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	feeModel "bursary_backend/internals/features/finance/fees/model"
	"bursary_backend/internals/features/finance/payments/model"
)

func TestBuildAllocations(t *testing.T) {
	tuitionID := uuid.NewString()
	busID := uuid.NewString()

	assignment := &feeModel.FeeAssignmentModel{
		FeeAssignmentItems: datatypes.JSONSlice[feeModel.FeeAssignmentItem]{
			{CategoryID: tuitionID, CategoryName: "Tuition", FeeType: "tuition", Amount: 50_000},
			{CategoryID: busID, CategoryName: "School Bus", FeeType: "transport", Amount: 15_000},
		},
	}

	t.Run("denormalizes category details", func(t *testing.T) {
		allocations, err := BuildAllocations(assignment, []AllocationInput{
			{CategoryID: tuitionID, Amount: 30_000},
			{CategoryID: busID, Amount: 15_000},
		}, 45_000)
		require.NoError(t, err)
		require.Len(t, allocations, 2)

		assert.Equal(t, "Tuition", allocations[0].CategoryName)
		assert.Equal(t, "tuition", allocations[0].FeeType)
		assert.InDelta(t, 30_000, allocations[0].Amount, 0.001)
		assert.Equal(t, "School Bus", allocations[1].CategoryName)
		assert.Equal(t, "transport", allocations[1].FeeType)
	})

	t.Run("sum within tolerance passes", func(t *testing.T) {
		allocations, err := BuildAllocations(assignment, []AllocationInput{
			{CategoryID: tuitionID, Amount: 29_999.995},
			{CategoryID: busID, Amount: 15_000},
		}, 45_000)
		require.NoError(t, err)
		assert.Len(t, allocations, 2)
	})

	t.Run("sum mismatch rejected", func(t *testing.T) {
		_, err := BuildAllocations(assignment, []AllocationInput{
			{CategoryID: tuitionID, Amount: 30_000},
		}, 45_000)
		assert.ErrorIs(t, err, ErrAllocationSumMismatch)
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		_, err := BuildAllocations(assignment, []AllocationInput{
			{CategoryID: uuid.NewString(), Amount: 45_000},
		}, 45_000)
		assert.ErrorIs(t, err, ErrAllocationUnknownCategory)
	})
}

func TestBuildReceiptMessage(t *testing.T) {
	payment := &model.PaymentModel{
		PaymentReference:   "PAY-2025-A1B2C3D4",
		PaymentStudentName: "Chinelo Okafor",
		PaymentAmount:      45_000,
		PaymentMethod:      model.MethodBankTransfer,
		PaymentDate:        time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC),
		PaymentAllocations: datatypes.JSONSlice[model.PaymentAllocation]{
			{CategoryID: uuid.NewString(), CategoryName: "Tuition", FeeType: "tuition", Amount: 30_000},
			{CategoryID: uuid.NewString(), CategoryName: "School Bus", FeeType: "transport", Amount: 15_000},
		},
	}

	msg := BuildReceiptMessage(payment, "Mrs. Okafor", "okafor@example.com")

	assert.Equal(t, "Mrs. Okafor", msg.ToName)
	assert.Equal(t, "okafor@example.com", msg.ToAddress)
	assert.Equal(t, "Payment receipt PAY-2025-A1B2C3D4", msg.Subject)

	assert.Contains(t, msg.TextBody, "Chinelo Okafor")
	assert.Contains(t, msg.TextBody, "PAY-2025-A1B2C3D4")
	assert.Contains(t, msg.TextBody, "2025-09-12")
	assert.Contains(t, msg.TextBody, "NGN 45000.00")
	assert.Contains(t, msg.TextBody, "Tuition: NGN 30000.00")
	assert.Contains(t, msg.TextBody, "School Bus: NGN 15000.00")

	assert.Contains(t, msg.HTMLBody, "<strong>Chinelo Okafor</strong>")
	assert.Contains(t, msg.HTMLBody, "PAY-2025-A1B2C3D4")
	assert.Contains(t, msg.HTMLBody, "NGN 30000.00")
}
