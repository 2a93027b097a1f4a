package formatter

import (
	"encoding/csv"
	"io"
)

type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(w io.Writer, data Dataset) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(data.Headers()); err != nil {
		return err
	}
	for _, row := range data.Rows() {
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
