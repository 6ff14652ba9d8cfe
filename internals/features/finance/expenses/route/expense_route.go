package route

import (
	expenseController "bursary_backend/internals/features/finance/expenses/controller"
	"bursary_backend/internals/services/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ExpenseUserRoutes(r fiber.Router, db *gorm.DB) {
	categoryCtrl := expenseController.NewExpenseCategoryController(db)
	expenseCtrl := expenseController.NewExpenseController(db, nil)

	categories := r.Group("/expense-categories")
	categories.Get("/", categoryCtrl.GetCategories)
	categories.Get("/:id", categoryCtrl.GetCategoryByID)

	expenses := r.Group("/expenses")
	expenses.Get("/", expenseCtrl.GetExpenses)
	expenses.Get("/monthly-summary", expenseCtrl.GetMonthlySummary)
	expenses.Get("/:id", expenseCtrl.GetExpenseByID)
}

func ExpenseAdminRoutes(r fiber.Router, db *gorm.DB, store *storage.Store) {
	categoryCtrl := expenseController.NewExpenseCategoryController(db)
	expenseCtrl := expenseController.NewExpenseController(db, store)

	categories := r.Group("/expense-categories")
	categories.Post("/", categoryCtrl.CreateCategory)
	categories.Put("/:id", categoryCtrl.UpdateCategory)
	categories.Delete("/:id", categoryCtrl.DeleteCategory)

	expenses := r.Group("/expenses")
	expenses.Post("/", expenseCtrl.CreateExpense)
	expenses.Patch("/:id/pay", expenseCtrl.MarkPaid)
	expenses.Patch("/:id/reject", expenseCtrl.RejectExpense)
	expenses.Post("/:id/invoice", expenseCtrl.UploadInvoice)
}
