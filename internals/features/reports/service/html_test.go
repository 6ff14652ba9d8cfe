package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stubPrintable struct {
	sections []HTMLSection
}

func (s stubPrintable) Sections() []HTMLSection { return s.sections }

func TestRenderPrintableHTML(t *testing.T) {
	report := stubPrintable{sections: []HTMLSection{
		{
			Heading: "Assets",
			Notes:   []string{"Figures as of 2025-08-31"},
			Header:  []string{"Name", "Book Value"},
			Rows: [][]string{
				{"School Bus", "4200000.00"},
				{"Total", "4200000.00"},
			},
		},
		{
			Header: []string{"Liability", "Amount"},
			Rows:   [][]string{{"Unpaid salaries", "1500000.00"}},
		},
	}}

	out := RenderPrintableHTML("Balance Sheet", time.Date(2025, 8, 31, 9, 30, 0, 0, time.UTC), report)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Balance Sheet</title>")
	assert.Contains(t, out, "<h1>Balance Sheet</h1>")
	assert.Contains(t, out, "Generated 2025-08-31 09:30 UTC")
	assert.Contains(t, out, "<h2>Assets</h2>")
	assert.Contains(t, out, "<li>Figures as of 2025-08-31</li>")
	assert.Contains(t, out, "<th>Book Value</th>")
	assert.Contains(t, out, "<td>School Bus</td>")
	assert.Contains(t, out, "<td>Unpaid salaries</td>")
	assert.NotContains(t, out, "<script")

	// second section has no heading, so only one h2 renders
	assert.Equal(t, 1, strings.Count(out, "<h2>"))
}

func TestRenderPrintableHTMLEscapesContent(t *testing.T) {
	report := stubPrintable{sections: []HTMLSection{
		{
			Heading: "R&D <lab>",
			Header:  []string{"Name"},
			Rows:    [][]string{{`<script>alert("x")</script>`}},
		},
	}}

	out := RenderPrintableHTML(`Fees & "Levies"`, time.Now(), report)

	assert.Contains(t, out, "Fees &amp; &#34;Levies&#34;")
	assert.Contains(t, out, "R&amp;D &lt;lab&gt;")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.NotContains(t, out, `<script>alert`)
}
