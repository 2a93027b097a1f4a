package formatter

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnknownFormat is returned by NewFormatter for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Supported format names
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatCSV   = "csv"
)

// Formatter renders a Dataset to w.
type Formatter interface {
	Format(w io.Writer, data Dataset) error
}

// Options tunes formatter output.
type Options struct {
	// Color enables ANSI colours in table output.
	Color bool
	// MaxColumnWidth truncates table cells wider than this; 0 disables it.
	MaxColumnWidth int
}

// SupportedFormats lists the names NewFormatter accepts.
func SupportedFormats() []string {
	return []string{FormatTable, FormatJSON, FormatCSV}
}

// NewFormatter returns the formatter registered under name.
func NewFormatter(name string, opts Options) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FormatTable, "":
		return NewTableFormatter(opts), nil
	case FormatJSON:
		return NewJSONFormatter(), nil
	case FormatCSV:
		return NewCSVFormatter(), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownFormat, name, strings.Join(SupportedFormats(), ", "))
	}
}
