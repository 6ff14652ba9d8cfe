package finance

import (
	"log"

	"gorm.io/gorm"

	expenseModel "bursary_backend/internals/features/finance/expenses/model"
	feeModel "bursary_backend/internals/features/finance/fees/model"
)

// SeedFeeCategories inserts the standard Nigerian school fee heads. Existing
// names are left untouched so re-running the seed is safe.
func SeedFeeCategories(db *gorm.DB) {
	defaults := []feeModel.FeeCategoryModel{
		{FeeCategoryName: "Tuition", FeeCategoryType: feeModel.FeeTuition, FeeCategoryIsMandatory: true},
		{FeeCategoryName: "Development Levy", FeeCategoryType: feeModel.FeeDevelopment, FeeCategoryIsMandatory: true},
		{FeeCategoryName: "Examination", FeeCategoryType: feeModel.FeeExamination, FeeCategoryIsMandatory: true},
		{FeeCategoryName: "PTA Levy", FeeCategoryType: feeModel.FeePTA, FeeCategoryIsMandatory: true},
		{FeeCategoryName: "Uniform", FeeCategoryType: feeModel.FeeUniform},
		{FeeCategoryName: "Feeding", FeeCategoryType: feeModel.FeeFeeding},
		{FeeCategoryName: "School Bus", FeeCategoryType: feeModel.FeeTransport},
		{FeeCategoryName: "Books", FeeCategoryType: feeModel.FeeBooks},
		{FeeCategoryName: "Sports", FeeCategoryType: feeModel.FeeSports},
		{FeeCategoryName: "Computer", FeeCategoryType: feeModel.FeeComputer},
	}

	created := 0
	for _, cat := range defaults {
		var existing feeModel.FeeCategoryModel
		if err := db.Where("fee_category_name = ?", cat.FeeCategoryName).First(&existing).Error; err == nil {
			continue
		}
		cat.FeeCategoryIsActive = true
		if err := db.Create(&cat).Error; err != nil {
			log.Printf("[SEED] Fee category '%s' failed: %v", cat.FeeCategoryName, err)
			continue
		}
		created++
	}
	log.Printf("[SEED] Fee categories done (%d created)", created)
}

// SeedExpenseCategories inserts the usual operating expense heads.
func SeedExpenseCategories(db *gorm.DB) {
	defaults := []expenseModel.ExpenseCategoryModel{
		{ExpenseCategoryName: "Staff Welfare", ExpenseCategoryGroup: "personnel"},
		{ExpenseCategoryName: "Electricity", ExpenseCategoryGroup: "utilities"},
		{ExpenseCategoryName: "Water", ExpenseCategoryGroup: "utilities"},
		{ExpenseCategoryName: "Diesel & Generator", ExpenseCategoryGroup: "utilities"},
		{ExpenseCategoryName: "Building Maintenance", ExpenseCategoryGroup: "maintenance"},
		{ExpenseCategoryName: "Vehicle Maintenance", ExpenseCategoryGroup: "maintenance"},
		{ExpenseCategoryName: "Stationery & Printing", ExpenseCategoryGroup: "supplies"},
		{ExpenseCategoryName: "Teaching Materials", ExpenseCategoryGroup: "supplies"},
		{ExpenseCategoryName: "Internet & Airtime", ExpenseCategoryGroup: "services"},
		{ExpenseCategoryName: "Security", ExpenseCategoryGroup: "services"},
	}

	created := 0
	for _, cat := range defaults {
		var existing expenseModel.ExpenseCategoryModel
		if err := db.Where("expense_category_name = ?", cat.ExpenseCategoryName).First(&existing).Error; err == nil {
			continue
		}
		cat.ExpenseCategoryIsActive = true
		if err := db.Create(&cat).Error; err != nil {
			log.Printf("[SEED] Expense category '%s' failed: %v", cat.ExpenseCategoryName, err)
			continue
		}
		created++
	}
	log.Printf("[SEED] Expense categories done (%d created)", created)
}
