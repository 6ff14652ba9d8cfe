package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	feeModel "bursary_backend/internals/features/finance/fees/model"
	feeService "bursary_backend/internals/features/finance/fees/service"
	"bursary_backend/internals/features/finance/payments/model"
	helper "bursary_backend/internals/helpers"
	"bursary_backend/internals/services/mailer"
)

var (
	ErrAllocationSumMismatch     = errors.New("allocations must add up to the payment amount")
	ErrAllocationUnknownCategory = errors.New("allocation references a category not on the fee assignment")
)

// AllocationInput is the raw category/amount pair from the request.
type AllocationInput struct {
	CategoryID string
	Amount     float64
}

// BuildAllocations resolves request lines against the assignment snapshot,
// denormalizing category name and fee type, and checks the sum invariant.
func BuildAllocations(assignment *feeModel.FeeAssignmentModel, lines []AllocationInput, amount float64) ([]model.PaymentAllocation, error) {
	allocations := make([]model.PaymentAllocation, 0, len(lines))
	var sum float64

	for _, line := range lines {
		var matched *feeModel.FeeAssignmentItem
		for i := range assignment.FeeAssignmentItems {
			if assignment.FeeAssignmentItems[i].CategoryID == line.CategoryID {
				matched = &assignment.FeeAssignmentItems[i]
				break
			}
		}
		if matched == nil {
			return nil, ErrAllocationUnknownCategory
		}
		allocations = append(allocations, model.PaymentAllocation{
			CategoryID:   matched.CategoryID,
			CategoryName: matched.CategoryName,
			FeeType:      matched.FeeType,
			Amount:       helper.Round2(line.Amount),
		})
		sum += line.Amount
	}

	if !helper.MoneyEquals(sum, amount) {
		return nil, ErrAllocationSumMismatch
	}
	return allocations, nil
}

func toAllocationLines(allocations []model.PaymentAllocation) []feeService.AllocationLine {
	lines := make([]feeService.AllocationLine, 0, len(allocations))
	for _, a := range allocations {
		lines = append(lines, feeService.AllocationLine{CategoryID: a.CategoryID, Amount: a.Amount})
	}
	return lines
}

// ApplyPayment posts a confirmed payment onto its fee assignment and saves it.
func ApplyPayment(tx *gorm.DB, payment *model.PaymentModel) error {
	var assignment feeModel.FeeAssignmentModel
	if err := tx.First(&assignment, "fee_assignment_id = ?", payment.PaymentFeeAssignmentID).Error; err != nil {
		return err
	}
	if err := feeService.ApplyPaymentToAssignment(&assignment, toAllocationLines(payment.PaymentAllocations)); err != nil {
		return err
	}
	return tx.Save(&assignment).Error
}

// ReversePayment backs a refunded payment out of its fee assignment.
func ReversePayment(tx *gorm.DB, payment *model.PaymentModel) error {
	var assignment feeModel.FeeAssignmentModel
	if err := tx.First(&assignment, "fee_assignment_id = ?", payment.PaymentFeeAssignmentID).Error; err != nil {
		return err
	}
	if err := feeService.ReversePaymentFromAssignment(&assignment, toAllocationLines(payment.PaymentAllocations)); err != nil {
		return err
	}
	return tx.Save(&assignment).Error
}

// BuildReceiptMessage renders the confirmation receipt sent to the guardian.
func BuildReceiptMessage(p *model.PaymentModel, toName, toAddress string) mailer.Message {
	var lines strings.Builder
	for _, a := range p.PaymentAllocations {
		fmt.Fprintf(&lines, "  - %s: NGN %.2f\n", a.CategoryName, a.Amount)
	}

	text := fmt.Sprintf(
		"Dear %s,\n\nWe confirm receipt of a payment for %s.\n\nReference: %s\nDate: %s\nMethod: %s\nAmount: NGN %.2f\n\nBreakdown:\n%s\nThank you.\nThe Bursary Office",
		toName, p.PaymentStudentName, p.PaymentReference, helper.FormatDate(p.PaymentDate),
		p.PaymentMethod, p.PaymentAmount, lines.String(),
	)

	var rows strings.Builder
	for _, a := range p.PaymentAllocations {
		fmt.Fprintf(&rows, "<tr><td>%s</td><td style=\"text-align:right\">NGN %.2f</td></tr>", a.CategoryName, a.Amount)
	}
	html := fmt.Sprintf(
		"<p>Dear %s,</p><p>We confirm receipt of a payment for <strong>%s</strong>.</p><table><tr><td>Reference</td><td>%s</td></tr><tr><td>Date</td><td>%s</td></tr><tr><td>Method</td><td>%s</td></tr><tr><td>Amount</td><td><strong>NGN %.2f</strong></td></tr></table><p>Breakdown:</p><table>%s</table><p>Thank you.<br>The Bursary Office</p>",
		toName, p.PaymentStudentName, p.PaymentReference, helper.FormatDate(p.PaymentDate),
		p.PaymentMethod, p.PaymentAmount, rows.String(),
	)

	return mailer.Message{
		ToName:    toName,
		ToAddress: toAddress,
		Subject:   "Payment receipt " + p.PaymentReference,
		TextBody:  text,
		HTMLBody:  html,
	}
}
