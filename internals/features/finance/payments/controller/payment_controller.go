package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	feeModel "bursary_backend/internals/features/finance/fees/model"
	"bursary_backend/internals/features/finance/payments/dto"
	"bursary_backend/internals/features/finance/payments/model"
	svc "bursary_backend/internals/features/finance/payments/service"
	studentModel "bursary_backend/internals/features/students/model"
	helper "bursary_backend/internals/helpers"
	"bursary_backend/internals/services/mailer"
	"bursary_backend/internals/services/storage"
)

type PaymentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Storage   *storage.Store
	Mailer    mailer.Mailer
}

func NewPaymentController(db *gorm.DB, store *storage.Store, mail mailer.Mailer) *PaymentController {
	return &PaymentController{
		DB:        db,
		Validator: helper.Validate(),
		Storage:   store,
		Mailer:    mail,
	}
}

// generateUniqueReference retries on the unlikely suffix collision.
func (ctrl *PaymentController) generateUniqueReference(at time.Time) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		ref := helper.GeneratePaymentReference(at)
		var count int64
		if err := ctrl.DB.Model(&model.PaymentModel{}).Where("payment_reference = ?", ref).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return ref, nil
		}
	}
	return "", errors.New("could not generate a unique payment reference")
}

// POST /api/a/payments
func (ctrl *PaymentController) CreatePayment(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	assignmentID, _ := uuid.Parse(req.FeeAssignmentID)
	paymentDate, err := helper.ParseDate(req.PaymentDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment date")
	}
	if helper.IsFutureDate(paymentDate) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Payment date cannot be in the future")
	}

	var assignment feeModel.FeeAssignmentModel
	if err := ctrl.DB.First(&assignment, "fee_assignment_id = ?", assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify fee assignment")
	}

	lines := make([]svc.AllocationInput, 0, len(req.Allocations))
	for _, a := range req.Allocations {
		lines = append(lines, svc.AllocationInput{CategoryID: a.CategoryID, Amount: a.Amount})
	}
	allocations, err := svc.BuildAllocations(&assignment, lines, req.Amount)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	className := ""
	if err := ctrl.DB.Table("classes").
		Select("class_name").
		Where("class_id = ?", assignment.FeeAssignmentClassID).
		Scan(&className).Error; err != nil {
		log.Println("[WARN] Failed to resolve class name:", err)
	}

	reference, err := ctrl.generateUniqueReference(time.Now().UTC())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate payment reference")
	}

	recordedBy, _ := helper.GetUserNameFromToken(c)
	if recordedBy == "" {
		recordedBy = "system"
	}

	status := model.PaymentPending
	if req.Status != nil && *req.Status == string(model.PaymentConfirmed) {
		status = model.PaymentConfirmed
	}

	payment := &model.PaymentModel{
		PaymentStudentID:       assignment.FeeAssignmentStudentID,
		PaymentStudentName:     assignment.FeeAssignmentStudentName,
		PaymentClassID:         assignment.FeeAssignmentClassID,
		PaymentClassName:       className,
		PaymentFeeAssignmentID: assignmentID,
		PaymentAmount:          helper.Round2(req.Amount),
		PaymentMethod:          model.PaymentMethod(req.Method),
		PaymentDate:            paymentDate,
		PaymentAllocations:     datatypes.NewJSONSlice(allocations),
		PaymentReference:       reference,
		PaymentTransactionID:   req.TransactionID,
		PaymentPaidBy:          req.PaidBy,
		PaymentStatus:          status,
		PaymentNotes:           req.Notes,
		PaymentRecordedBy:      recordedBy,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		if status == model.PaymentConfirmed {
			return svc.ApplyPayment(tx, payment)
		}
		return nil
	})
	if err != nil {
		log.Println("[ERROR] Failed to create payment:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create payment")
	}

	if status == model.PaymentConfirmed {
		ctrl.sendReceipt(payment)
	}

	return helper.JsonCreated(c, "Payment created successfully", dto.ToPaymentResponse(payment))
}

// sendReceipt emails the guardian in the background; failures only log.
func (ctrl *PaymentController) sendReceipt(payment *model.PaymentModel) {
	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", payment.PaymentStudentID).Error; err != nil {
		log.Println("[WARN] Receipt email skipped, student lookup failed:", err)
		return
	}
	if student.StudentGuardianEmail == nil || *student.StudentGuardianEmail == "" {
		return
	}
	msg := svc.BuildReceiptMessage(payment, student.StudentGuardianName, *student.StudentGuardianEmail)
	go func() {
		if err := ctrl.Mailer.Send(msg); err != nil {
			log.Println("[WARN] Failed to send receipt email:", err)
		}
	}()
}

func (ctrl *PaymentController) filteredQuery(c *fiber.Ctx) (*gorm.DB, error) {
	tx := ctrl.DB.Model(&model.PaymentModel{})

	if studentID := strings.TrimSpace(c.Query("student_id")); studentID != "" {
		id, err := uuid.Parse(studentID)
		if err != nil {
			return nil, errors.New("invalid student_id filter")
		}
		tx = tx.Where("payment_student_id = ?", id)
	}
	if classID := strings.TrimSpace(c.Query("class_id")); classID != "" {
		id, err := uuid.Parse(classID)
		if err != nil {
			return nil, errors.New("invalid class_id filter")
		}
		tx = tx.Where("payment_class_id = ?", id)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !model.PaymentStatus(status).Valid() {
			return nil, errors.New("invalid status filter")
		}
		tx = tx.Where("payment_status = ?", status)
	}
	if method := strings.TrimSpace(c.Query("method")); method != "" {
		if !model.PaymentMethod(method).Valid() {
			return nil, errors.New("invalid method filter")
		}
		tx = tx.Where("payment_method = ?", method)
	}
	if from := strings.TrimSpace(c.Query("date_from")); from != "" {
		d, err := helper.ParseDate(from)
		if err != nil {
			return nil, errors.New("invalid date_from filter")
		}
		tx = tx.Where("payment_date >= ?", d)
	}
	if to := strings.TrimSpace(c.Query("date_to")); to != "" {
		d, err := helper.ParseDate(to)
		if err != nil {
			return nil, errors.New("invalid date_to filter")
		}
		tx = tx.Where("payment_date <= ?", d)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		if helper.IsValidPaymentReference(q) {
			// a complete reference can hit the unique index directly
			tx = tx.Where("payment_reference = ?", q)
		} else {
			pattern := "%" + q + "%"
			tx = tx.Where("payment_reference ILIKE ? OR payment_student_name ILIKE ?", pattern, pattern)
		}
	}
	return tx, nil
}

// GET /api/u/payments
// ?format=csv|xlsx streams the filtered rows as a download instead.
func (ctrl *PaymentController) GetPayments(c *fiber.Ctx) error {
	tx, err := ctrl.filteredQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if format := helper.ExportFormat(c); format != "" {
		return ctrl.exportPayments(c, tx, format)
	}

	page, perPage, offset := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve payments")
	}

	var payments []model.PaymentModel
	if err := tx.Order("payment_created_at DESC").Limit(perPage).Offset(offset).Find(&payments).Error; err != nil {
		log.Println("[ERROR] Failed to fetch payments:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve payments")
	}

	pagination := helper.BuildPaginationFromPage(page, perPage, total)
	return helper.JsonList(c, dto.ToPaymentResponses(payments), pagination)
}

func (ctrl *PaymentController) exportPayments(c *fiber.Ctx, tx *gorm.DB, format string) error {
	var payments []model.PaymentModel
	if err := tx.Order("payment_date ASC").Limit(10000).Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve payments")
	}

	header := []string{"Reference", "Student", "Class", "Amount", "Method", "Date", "Status", "Recorded By"}
	filename := "payments-" + time.Now().UTC().Format("20060102")

	switch format {
	case "csv":
		rows := make([][]string, 0, len(payments))
		for i := range payments {
			p := &payments[i]
			rows = append(rows, []string{
				p.PaymentReference, p.PaymentStudentName, p.PaymentClassName,
				fmt.Sprintf("%.2f", p.PaymentAmount), string(p.PaymentMethod),
				helper.FormatDate(p.PaymentDate), string(p.PaymentStatus), p.PaymentRecordedBy,
			})
		}
		return helper.SendCSV(c, filename+".csv", header, rows)
	case "xlsx":
		rows := make([][]any, 0, len(payments))
		for i := range payments {
			p := &payments[i]
			rows = append(rows, []any{
				p.PaymentReference, p.PaymentStudentName, p.PaymentClassName,
				p.PaymentAmount, string(p.PaymentMethod),
				helper.FormatDate(p.PaymentDate), string(p.PaymentStatus), p.PaymentRecordedBy,
			})
		}
		return helper.SendXLSX(c, filename+".xlsx", "Payments", header, rows)
	}
	return helper.JsonError(c, fiber.StatusBadRequest, "Unsupported export format")
}

// GET /api/u/payments/:id
func (ctrl *PaymentController) GetPaymentByID(c *fiber.Ctx) error {
	payment, fe := ctrl.findPayment(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonOK(c, "Payment fetched successfully", dto.ToPaymentResponse(payment))
}

func (ctrl *PaymentController) findPayment(c *fiber.Ctx) (*model.PaymentModel, *fiber.Error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid payment ID")
	}
	var payment model.PaymentModel
	if err := ctrl.DB.First(&payment, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Payment not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve payment")
	}
	return &payment, nil
}

// PATCH /api/a/payments/:id/confirm
func (ctrl *PaymentController) ConfirmPayment(c *fiber.Ctx) error {
	payment, fe := ctrl.findPayment(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if !payment.PaymentStatus.CanTransitionTo(model.PaymentConfirmed) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Cannot confirm a %s payment", payment.PaymentStatus))
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := svc.ApplyPayment(tx, payment); err != nil {
			return err
		}
		return tx.Model(payment).Update("payment_status", model.PaymentConfirmed).Error
	})
	if err != nil {
		log.Println("[ERROR] Failed to confirm payment:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to confirm payment")
	}
	payment.PaymentStatus = model.PaymentConfirmed

	ctrl.sendReceipt(payment)

	return helper.JsonUpdated(c, "Payment confirmed successfully", dto.ToPaymentResponse(payment))
}

// PATCH /api/a/payments/:id/cancel
func (ctrl *PaymentController) CancelPayment(c *fiber.Ctx) error {
	payment, fe := ctrl.findPayment(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var req dto.PaymentNotesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Notes = strings.TrimSpace(req.Notes)
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.Notes == "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Cancellation notes are required")
	}
	if !payment.PaymentStatus.CanTransitionTo(model.PaymentCancelled) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Cannot cancel a %s payment", payment.PaymentStatus))
	}

	if err := ctrl.DB.Model(payment).Updates(map[string]any{
		"payment_status": model.PaymentCancelled,
		"payment_notes":  req.Notes,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to cancel payment")
	}
	payment.PaymentStatus = model.PaymentCancelled
	payment.PaymentNotes = &req.Notes

	return helper.JsonUpdated(c, "Payment cancelled successfully", dto.ToPaymentResponse(payment))
}

// PATCH /api/a/payments/:id/refund
func (ctrl *PaymentController) RefundPayment(c *fiber.Ctx) error {
	payment, fe := ctrl.findPayment(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var req dto.PaymentNotesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Notes = strings.TrimSpace(req.Notes)
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.Notes == "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Refund notes are required")
	}
	if !payment.PaymentStatus.CanTransitionTo(model.PaymentRefunded) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Cannot refund a %s payment", payment.PaymentStatus))
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := svc.ReversePayment(tx, payment); err != nil {
			return err
		}
		return tx.Model(payment).Updates(map[string]any{
			"payment_status": model.PaymentRefunded,
			"payment_notes":  req.Notes,
		}).Error
	})
	if err != nil {
		log.Println("[ERROR] Failed to refund payment:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to refund payment")
	}
	payment.PaymentStatus = model.PaymentRefunded
	payment.PaymentNotes = &req.Notes

	return helper.JsonUpdated(c, "Payment refunded successfully", dto.ToPaymentResponse(payment))
}

// PATCH /api/a/payments/:id/notes
func (ctrl *PaymentController) UpdateNotes(c *fiber.Ctx) error {
	payment, fe := ctrl.findPayment(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var req dto.UpdatePaymentNotesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := ctrl.DB.Model(payment).Update("payment_notes", req.Notes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notes")
	}
	payment.PaymentNotes = req.Notes

	return helper.JsonUpdated(c, "Payment notes updated successfully", dto.ToPaymentResponse(payment))
}

// POST /api/a/payments/:id/receipt
func (ctrl *PaymentController) UploadReceipt(c *fiber.Ctx) error {
	if ctrl.Storage == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Object storage is not configured")
	}

	payment, fe := ctrl.findPayment(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	fileHeader, err := c.FormFile("receipt")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "A receipt file is required")
	}

	url, err := ctrl.Storage.UploadAttachment(c.Context(), "receipts", fileHeader)
	if err != nil {
		log.Println("[ERROR] Failed to upload receipt:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload receipt")
	}

	if err := ctrl.DB.Model(payment).Update("payment_receipt_url", url).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save receipt URL")
	}
	payment.PaymentReceiptURL = &url

	return helper.JsonUpdated(c, "Receipt uploaded successfully", dto.ToPaymentResponse(payment))
}
