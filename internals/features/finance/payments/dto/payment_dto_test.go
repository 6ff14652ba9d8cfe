package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "bursary_backend/internals/helpers"
)

func validCreateRequest() CreatePaymentRequest {
	return CreatePaymentRequest{
		FeeAssignmentID: uuid.NewString(),
		Amount:          45_000,
		Method:          "bank_transfer",
		PaymentDate:     "2025-09-12",
		Allocations: []PaymentAllocationRequest{
			{CategoryID: uuid.NewString(), Amount: 45_000},
		},
	}
}

func TestCreatePaymentRequestValidation(t *testing.T) {
	v := helper.Validate()

	t.Run("valid request passes", func(t *testing.T) {
		req := validCreateRequest()
		assert.NoError(t, v.Struct(&req))
	})

	t.Run("rejects unknown method", func(t *testing.T) {
		req := validCreateRequest()
		req.Method = "barter"
		err := v.Struct(&req)
		require.Error(t, err)
		assert.Contains(t, helper.ValidatorErrorsToMap(err), "payment_method")
	})

	t.Run("rejects empty allocations", func(t *testing.T) {
		req := validCreateRequest()
		req.Allocations = nil
		err := v.Struct(&req)
		require.Error(t, err)
		assert.Contains(t, helper.ValidatorErrorsToMap(err), "payment_allocations")
	})

	t.Run("rejects zero allocation amount", func(t *testing.T) {
		req := validCreateRequest()
		req.Allocations[0].Amount = 0
		assert.Error(t, v.Struct(&req))
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		req := validCreateRequest()
		req.PaymentDate = "12/09/2025"
		err := v.Struct(&req)
		require.Error(t, err)
		assert.Contains(t, helper.ValidatorErrorsToMap(err), "payment_date")
	})

	t.Run("rejects non-uuid assignment id", func(t *testing.T) {
		req := validCreateRequest()
		req.FeeAssignmentID = "not-a-uuid"
		assert.Error(t, v.Struct(&req))
	})

	t.Run("status accepts only pending or confirmed", func(t *testing.T) {
		req := validCreateRequest()
		confirmed := "confirmed"
		req.Status = &confirmed
		assert.NoError(t, v.Struct(&req))

		refunded := "refunded"
		req.Status = &refunded
		assert.Error(t, v.Struct(&req))
	})
}

func TestCreatePaymentRequestNormalize(t *testing.T) {
	req := validCreateRequest()
	req.Method = "  Bank_Transfer "
	blank := "   "
	req.PaidBy = &blank

	req.Normalize()

	assert.Equal(t, "bank_transfer", req.Method)
	assert.Nil(t, req.PaidBy, "blank payer collapses to nil")

	payer := " Mrs. Okafor "
	req.PaidBy = &payer
	req.Normalize()
	require.NotNil(t, req.PaidBy)
	assert.Equal(t, "Mrs. Okafor", *req.PaidBy)
}
