package helper

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportFormat(t *testing.T) {
	app := fiber.New()
	app.Get("/report", func(c *fiber.Ctx) error {
		return c.SendString(ExportFormat(c))
	})

	tests := []struct {
		query string
		want  string
	}{
		{query: "?format=csv", want: "csv"},
		{query: "?format=xlsx", want: "xlsx"},
		{query: "?format=html", want: "html"},
		{query: "", want: ""},
		{query: "?format=pdf", want: ""},
		{query: "?format=CSV", want: ""},
	}
	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest("GET", "/report"+tt.query, nil))
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, tt.want, string(body), "query %q", tt.query)
	}
}

func TestSendCSV(t *testing.T) {
	app := fiber.New()
	app.Get("/export", func(c *fiber.Ctx) error {
		return SendCSV(c, "fees.csv",
			[]string{"Class", "Expected", "Collected"},
			[][]string{
				{"JSS 1A", "500000.00", "350000.00"},
				{"Total, all classes", "500000.00", "350000.00"},
			},
		)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/export", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="fees.csv"`, resp.Header.Get(fiber.HeaderContentDisposition))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), "Class,Expected,Collected\n")
	assert.Contains(t, string(body), "JSS 1A,500000.00,350000.00\n")
	assert.Contains(t, string(body), `"Total, all classes"`, "fields with commas are quoted")
}

func TestSendXLSX(t *testing.T) {
	app := fiber.New()
	app.Get("/export", func(c *fiber.Ctx) error {
		return SendXLSX(c, "assets.xlsx", "Asset Register",
			[]string{"Tag", "Name", "Book Value"},
			[][]any{
				{"AST-1A2B3C4D", "School Bus", 4_200_000.00},
			},
		)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/export", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="assets.xlsx"`, resp.Header.Get(fiber.HeaderContentDisposition))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err, "response must be a readable workbook")
	defer f.Close()

	require.Contains(t, f.GetSheetList(), "Asset Register")

	header, err := f.GetCellValue("Asset Register", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Tag", header)

	tag, err := f.GetCellValue("Asset Register", "A2")
	require.NoError(t, err)
	assert.Equal(t, "AST-1A2B3C4D", tag)

	name, err := f.GetCellValue("Asset Register", "B2")
	require.NoError(t, err)
	assert.Equal(t, "School Bus", name)
}
