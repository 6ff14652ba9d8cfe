package route

import (
	bankingController "bursary_backend/internals/features/banking/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func BankingUserRoutes(r fiber.Router, db *gorm.DB) {
	accountCtl := bankingController.NewBankAccountController(db)
	txnCtl := bankingController.NewBankTransactionController(db)
	transferCtl := bankingController.NewTransferController(db)

	accounts := r.Group("/bank-accounts")
	accounts.Get("/", accountCtl.GetBankAccounts)
	accounts.Get("/:id", accountCtl.GetBankAccountByID)

	txns := r.Group("/bank-transactions")
	txns.Get("/", txnCtl.GetTransactions)
	txns.Get("/:id", txnCtl.GetTransactionByID)

	transfers := r.Group("/transfers")
	transfers.Get("/", transferCtl.GetTransfers)
	transfers.Get("/:id", transferCtl.GetTransferByID)
}

func BankingAdminRoutes(r fiber.Router, db *gorm.DB) {
	accountCtl := bankingController.NewBankAccountController(db)
	txnCtl := bankingController.NewBankTransactionController(db)
	transferCtl := bankingController.NewTransferController(db)

	accounts := r.Group("/bank-accounts")
	accounts.Post("/", accountCtl.CreateBankAccount)
	accounts.Put("/:id", accountCtl.UpdateBankAccount)
	accounts.Delete("/:id", accountCtl.DeleteBankAccount)

	txns := r.Group("/bank-transactions")
	txns.Post("/", txnCtl.RecordTransaction)
	txns.Patch("/:id/clear", txnCtl.ClearTransaction)
	txns.Patch("/:id/reconcile", txnCtl.ReconcileTransaction)

	transfers := r.Group("/transfers")
	transfers.Post("/", transferCtl.CreateTransfer)
	transfers.Patch("/:id/approve", transferCtl.ApproveTransfer)
	transfers.Patch("/:id/complete", transferCtl.CompleteTransfer)
	transfers.Patch("/:id/reject", transferCtl.RejectTransfer)
	transfers.Patch("/:id/cancel", transferCtl.CancelTransfer)
}
