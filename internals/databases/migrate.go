package database

import (
	"log"

	"gorm.io/gorm"

	classModel "bursary_backend/internals/features/academics/classes/model"
	assetModel "bursary_backend/internals/features/assets/model"
	bankingModel "bursary_backend/internals/features/banking/model"
	expenseModel "bursary_backend/internals/features/finance/expenses/model"
	feeModel "bursary_backend/internals/features/finance/fees/model"
	paymentModel "bursary_backend/internals/features/finance/payments/model"
	payrollModel "bursary_backend/internals/features/hr/payroll/model"
	staffModel "bursary_backend/internals/features/hr/staff/model"
	studentModel "bursary_backend/internals/features/students/model"
	authModel "bursary_backend/internals/features/users/auth/model"
	userModel "bursary_backend/internals/features/users/user/model"
)

// MigrateAll creates or updates every table the app owns. Parents come
// before children so FK constraints can be created in one pass.
func MigrateAll(db *gorm.DB) error {
	// gen_random_uuid() ships with PostgreSQL 13+, older servers need pgcrypto.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		log.Printf("[MIGRATE] pgcrypto extension: %v", err)
	}

	return db.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&authModel.RefreshToken{},

		&classModel.ClassModel{},
		&studentModel.StudentModel{},

		&feeModel.FeeCategoryModel{},
		&feeModel.FeeStructureModel{},
		&feeModel.ScholarshipModel{},
		&feeModel.FeeAssignmentModel{},
		&paymentModel.PaymentModel{},

		&expenseModel.ExpenseCategoryModel{},
		&expenseModel.ExpenseModel{},

		&staffModel.StaffMemberModel{},
		&payrollModel.SalaryPaymentModel{},
		&payrollModel.StaffLoanModel{},
		&payrollModel.StaffBonusModel{},
		&payrollModel.StaffPenaltyModel{},

		&assetModel.AssetModel{},

		&bankingModel.BankAccountModel{},
		&bankingModel.BankTransactionModel{},
		&bankingModel.TransferModel{},
	)
}
