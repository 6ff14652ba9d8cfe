package service

import (
	"html"
	"strings"
	"time"
)

// HTMLSection is one table block of a printable report: an optional list of
// note lines followed by a header row and data rows.
type HTMLSection struct {
	Heading string
	Notes   []string
	Header  []string
	Rows    [][]string
}

// Printable is what every report builder exposes for the HTML format.
type Printable interface {
	Sections() []HTMLSection
}

// RenderPrintableHTML produces a standalone document suited to "open and
// print": inline styles only, no scripts, no app chrome. The front end opens
// it in a new window and calls window.print().
func RenderPrintableHTML(title string, generatedAt time.Time, report Printable) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n<title>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</title>\n<style>\n")
	b.WriteString(`body { font-family: "Helvetica Neue", Arial, sans-serif; color: #1a1a1a; margin: 32px; }
h1 { font-size: 20px; margin-bottom: 2px; }
h2 { font-size: 15px; margin: 24px 0 6px; }
p.meta { color: #555; font-size: 11px; margin-top: 0; }
ul.notes { font-size: 12px; color: #333; padding-left: 18px; margin: 4px 0 8px; }
table { border-collapse: collapse; width: 100%; font-size: 12px; }
th, td { border: 1px solid #999; padding: 4px 8px; text-align: left; }
th { background: #efefef; }
tr:last-child td { font-weight: bold; }
@media print { body { margin: 8mm; } }
`)
	b.WriteString("</style>\n</head>\n<body>\n<h1>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</h1>\n<p class=\"meta\">Generated ")
	b.WriteString(generatedAt.UTC().Format("2006-01-02 15:04 UTC"))
	b.WriteString("</p>\n")

	for _, section := range report.Sections() {
		if section.Heading != "" {
			b.WriteString("<h2>")
			b.WriteString(html.EscapeString(section.Heading))
			b.WriteString("</h2>\n")
		}
		if len(section.Notes) > 0 {
			b.WriteString("<ul class=\"notes\">\n")
			for _, note := range section.Notes {
				b.WriteString("<li>")
				b.WriteString(html.EscapeString(note))
				b.WriteString("</li>\n")
			}
			b.WriteString("</ul>\n")
		}

		b.WriteString("<table>\n<thead>\n<tr>")
		for _, h := range section.Header {
			b.WriteString("<th>")
			b.WriteString(html.EscapeString(h))
			b.WriteString("</th>")
		}
		b.WriteString("</tr>\n</thead>\n<tbody>\n")
		for _, row := range section.Rows {
			b.WriteString("<tr>")
			for _, cell := range row {
				b.WriteString("<td>")
				b.WriteString(html.EscapeString(cell))
				b.WriteString("</td>")
			}
			b.WriteString("</tr>\n")
		}
		b.WriteString("</tbody>\n</table>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}
