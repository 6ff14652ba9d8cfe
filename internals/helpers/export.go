package helper

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

/* ===============================
   Tabular export (CSV / XLSX)
=================================*/

// ExportFormat reads ?format= and normalizes it. Empty means JSON.
func ExportFormat(c *fiber.Ctx) string {
	switch c.Query("format") {
	case "csv":
		return "csv"
	case "xlsx":
		return "xlsx"
	case "html":
		return "html"
	default:
		return ""
	}
}

// SendCSV writes a header row plus data rows and serves the result as a
// downloadable CSV attachment.
func SendCSV(c *fiber.Ctx, filename string, header []string, rows [][]string) error {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)

	if err := w.Write(header); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to write csv header")
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to write csv row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to flush csv")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}

// SendXLSX builds a single-sheet workbook with a bold header row and serves
// it as a downloadable attachment.
func SendXLSX(c *fiber.Ctx, filename, sheet string, header []string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to name sheet")
	}

	headerRow := make([]any, len(header))
	widths := make([]float64, len(header))
	for i, h := range header {
		headerRow[i] = h
		widths[i] = float64(len(h))
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to write header")
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		lastCol, _ := excelize.CoordinatesToCellName(len(header), 1)
		_ = f.SetCellStyle(sheet, "A1", lastCol, bold)
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to write row")
		}
		for j, v := range row {
			if w := float64(len(fmt.Sprint(v))); j < len(widths) && w > widths[j] {
				widths[j] = w
			}
		}
	}

	// approximate auto-width, capped so one long note does not blow the sheet up
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if w > 60 {
			w = 60
		}
		_ = f.SetColWidth(sheet, col, col, w+2)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to build workbook")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}
