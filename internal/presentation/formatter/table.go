package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-logline/internal/util"
)

// Summarizer is implemented by datasets that print a footer below the table.
type Summarizer interface {
	Summary() string
}

type TableFormatter struct {
	opts Options
}

func NewTableFormatter(opts Options) *TableFormatter {
	return &TableFormatter{opts: opts}
}

func (f *TableFormatter) Format(w io.Writer, data Dataset) error {
	headers := data.Headers()
	rows := f.clip(data.Rows())
	widths := f.calculateColumnWidths(headers, rows)

	var b strings.Builder
	f.writeBorder(&b, widths, "top")
	f.writeRow(&b, headers, headers, widths, true)
	f.writeBorder(&b, widths, "middle")
	for _, row := range rows {
		f.writeRow(&b, headers, row, widths, false)
	}
	f.writeBorder(&b, widths, "bottom")

	if s, ok := data.(Summarizer); ok {
		b.WriteString(s.Summary())
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// clip truncates over-wide cells and makes control characters visible so a
// stray newline in a cell cannot break the table.
func (f *TableFormatter) clip(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, cell := range row {
			cell = visible(cell)
			out[i][j] = util.Truncate(cell, f.opts.MaxColumnWidth)
		}
	}
	return out
}

func visible(s string) string {
	if !strings.ContainsAny(s, "\n\r\t") {
		return s
	}
	return strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`).Replace(s)
}

// calculateColumnWidths determines the display width of each column
func (f *TableFormatter) calculateColumnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = util.GetDisplayWidth(header)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if w := util.GetDisplayWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func (f *TableFormatter) writeBorder(b *strings.Builder, widths []int, borderType string) {
	var left, middle, right string

	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	b.WriteString(left)
	for i, width := range widths {
		b.WriteString(strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			b.WriteString(middle)
		}
	}
	b.WriteString(right)
	b.WriteByte('\n')
}

func (f *TableFormatter) writeRow(b *strings.Builder, headers, values []string, widths []int, header bool) {
	b.WriteString("│")
	for i, width := range widths {
		value := ""
		if i < len(values) {
			value = values[i]
		}

		cell := util.PadString(value, width, !isNumericColumn(headers[i]))
		switch {
		case header:
			cell = util.Colorize(cell, util.ColorBold, f.opts.Color)
		default:
			cell = util.Colorize(cell, cellColor(headers[i], value), f.opts.Color)
		}
		fmt.Fprintf(b, " %s │", cell)
	}
	b.WriteByte('\n')
}

func isNumericColumn(header string) bool {
	switch header {
	case "Code", "Timestamp":
		return true
	}
	return false
}

// cellColor picks a colour for columns whose values are categorical.
func cellColor(header, value string) string {
	switch header {
	case "Kind", "Severity":
		switch value {
		case "error":
			return util.ColorRed
		case "warning":
			return util.ColorYellow
		case "info", KindMessage:
			return util.ColorGreen
		case KindUnknown:
			return util.ColorGray
		}
	case "Valid":
		if value == "true" {
			return util.ColorGreen
		}
		return util.ColorRed
	}
	return ""
}

func (r LogLineResults) Summary() string {
	return fmt.Sprintf("%d line(s), %d unknown", len(r), r.UnknownCount())
}

func (r CardResults) Summary() string {
	return fmt.Sprintf("%d number(s), %d invalid", len(r), r.InvalidCount())
}
