package controller

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeModel "bursary_backend/internals/features/finance/fees/model"
	"bursary_backend/internals/features/reports/service"
	helper "bursary_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// tabular is the common face of the report builders: rows for CSV/XLSX plus
// printable sections for HTML.
type tabular interface {
	service.Printable
	CSVHeader() []string
	CSVRows() [][]string
}

// respond serves a built report in the requested format. JSON is the
// default; csv/xlsx download, html is the standalone printable document.
func (ctrl *ReportController) respond(c *fiber.Ctx, name, title string, report tabular) error {
	switch helper.ExportFormat(c) {
	case "csv":
		return helper.SendCSV(c, name+".csv", report.CSVHeader(), report.CSVRows())
	case "xlsx":
		rows := make([][]any, 0, len(report.CSVRows()))
		for _, row := range report.CSVRows() {
			cells := make([]any, len(row))
			for i, cell := range row {
				cells[i] = cell
			}
			rows = append(rows, cells)
		}
		return helper.SendXLSX(c, name+".xlsx", title, report.CSVHeader(), rows)
	case "html":
		doc := service.RenderPrintableHTML(title, time.Now().UTC(), report)
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(doc)
	}
	return helper.JsonOK(c, title+" generated successfully", report)
}

// asOfParam reads ?as_of= and defaults to today.
func asOfParam(c *fiber.Ctx) (time.Time, error) {
	raw := strings.TrimSpace(c.Query("as_of"))
	if raw == "" {
		return time.Now().UTC(), nil
	}
	return helper.ParseDate(raw)
}

// GET /api/u/reports/balance-sheet
func (ctrl *ReportController) BalanceSheet(c *fiber.Ctx) error {
	asOf, err := asOfParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid as_of date")
	}

	report, err := service.BuildBalanceSheet(ctrl.DB, asOf)
	if err != nil {
		log.Println("[ERROR] Failed to build balance sheet:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build balance sheet")
	}
	return ctrl.respond(c, "balance-sheet-"+report.AsOf, "Balance Sheet", report)
}

// GET /api/u/reports/asset-register
func (ctrl *ReportController) AssetRegister(c *fiber.Ctx) error {
	asOf, err := asOfParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid as_of date")
	}

	report, err := service.BuildAssetRegister(ctrl.DB, asOf)
	if err != nil {
		log.Println("[ERROR] Failed to build asset register:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build asset register")
	}
	return ctrl.respond(c, "asset-register-"+report.AsOf, "Asset Register", report)
}

// GET /api/u/reports/depreciation-schedule
func (ctrl *ReportController) DepreciationSchedule(c *fiber.Ctx) error {
	report, err := service.BuildDepreciationSchedule(ctrl.DB)
	if err != nil {
		log.Println("[ERROR] Failed to build depreciation schedule:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build depreciation schedule")
	}
	return ctrl.respond(c, "depreciation-schedule", "Depreciation Schedule", report)
}

// GET /api/u/reports/fee-collection?academic_year=2024/2025&term=first
func (ctrl *ReportController) FeeCollection(c *fiber.Ctx) error {
	academicYear := strings.TrimSpace(c.Query("academic_year"))
	if !helper.IsValidAcademicYear(academicYear) {
		return helper.JsonError(c, fiber.StatusBadRequest, "academic_year must look like 2024/2025")
	}
	term := feeModel.Term(strings.TrimSpace(c.Query("term")))
	if !term.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "term must be first, second or third")
	}

	report, err := service.BuildFeeCollectionSummary(ctrl.DB, academicYear, term)
	if err != nil {
		log.Println("[ERROR] Failed to build fee collection summary:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build fee collection summary")
	}
	return ctrl.respond(c, "fee-collection-"+string(term), "Fee Collection Summary", report)
}

// GET /api/u/reports/outstanding-fees
func (ctrl *ReportController) OutstandingFees(c *fiber.Ctx) error {
	asOf, err := asOfParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid as_of date")
	}

	report, err := service.BuildOutstandingFeesReport(ctrl.DB, asOf)
	if err != nil {
		log.Println("[ERROR] Failed to build outstanding fees report:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build outstanding fees report")
	}
	return ctrl.respond(c, "outstanding-fees-"+report.AsOf, "Outstanding Fees", report)
}

// GET /api/u/reports/expense-summary?date_from=&date_to=
func (ctrl *ReportController) ExpenseSummary(c *fiber.Ctx) error {
	from, err := helper.ParseDate(strings.TrimSpace(c.Query("date_from")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date_from")
	}
	to, err := helper.ParseDate(strings.TrimSpace(c.Query("date_to")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date_to")
	}
	if to.Before(from) {
		return helper.JsonError(c, fiber.StatusBadRequest, "date_to must not precede date_from")
	}

	report, err := service.BuildExpenseSummary(ctrl.DB, from, to)
	if err != nil {
		log.Println("[ERROR] Failed to build expense summary:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build expense summary")
	}
	return ctrl.respond(c, "expense-summary-"+report.DateFrom, "Expense Summary", report)
}
