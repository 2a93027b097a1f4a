package formatter

import (
	"strconv"

	"github.com/penwyp/go-logline/internal/core/model"
)

// Dataset is anything the formatters can render: a header row, string rows
// for table/csv, and a structured value for json.
type Dataset interface {
	Headers() []string
	Rows() [][]string
	JSONValue() interface{}
}

// Record kinds
const (
	KindMessage = "message"
	KindUnknown = "unknown"
)

// LogLineRecord is the flattened, serialisable view of one classified line.
type LogLineRecord struct {
	Input     string `json:"input"`
	Kind      string `json:"kind"`
	Severity  string `json:"severity,omitempty"`
	Code      *int   `json:"code,omitempty"`
	Timestamp *int64 `json:"timestamp,omitempty"`
	Text      string `json:"text"`
}

// NewLogLineRecord flattens a parse result together with its input.
func NewLogLineRecord(input string, line model.LogLine) LogLineRecord {
	record := LogLineRecord{Input: input, Kind: KindUnknown}

	switch l := line.(type) {
	case model.Message:
		ts := l.Timestamp
		record.Kind = KindMessage
		record.Severity = l.Severity.Kind().String()
		record.Timestamp = &ts
		record.Text = l.Text
		if e, ok := l.Severity.(model.Error); ok {
			code := e.Code
			record.Code = &code
		}
	case model.Unknown:
		record.Text = l.Text
	}

	return record
}

// LogLineResults is a Dataset of classified lines.
type LogLineResults []LogLineRecord

func (r LogLineResults) Headers() []string {
	return []string{"Input", "Kind", "Severity", "Code", "Timestamp", "Text"}
}

func (r LogLineResults) Rows() [][]string {
	rows := make([][]string, 0, len(r))
	for _, rec := range r {
		code, ts := "", ""
		if rec.Code != nil {
			code = strconv.Itoa(*rec.Code)
		}
		if rec.Timestamp != nil {
			ts = strconv.FormatInt(*rec.Timestamp, 10)
		}
		rows = append(rows, []string{rec.Input, rec.Kind, rec.Severity, code, ts, rec.Text})
	}
	return rows
}

func (r LogLineResults) JSONValue() interface{} {
	if r == nil {
		return []LogLineRecord{}
	}
	return []LogLineRecord(r)
}

// UnknownCount returns how many records fell back to the unknown kind.
func (r LogLineResults) UnknownCount() int {
	n := 0
	for _, rec := range r {
		if rec.Kind == KindUnknown {
			n++
		}
	}
	return n
}

// CardRecord is the result of validating one card number.
type CardRecord struct {
	Input  string `json:"input"`
	Digits string `json:"digits,omitempty"`
	Valid  bool   `json:"valid"`
	Error  string `json:"error,omitempty"`
}

// CardResults is a Dataset of card validations.
type CardResults []CardRecord

func (r CardResults) Headers() []string {
	return []string{"Input", "Digits", "Valid", "Error"}
}

func (r CardResults) Rows() [][]string {
	rows := make([][]string, 0, len(r))
	for _, rec := range r {
		rows = append(rows, []string{rec.Input, rec.Digits, strconv.FormatBool(rec.Valid), rec.Error})
	}
	return rows
}

func (r CardResults) JSONValue() interface{} {
	if r == nil {
		return []CardRecord{}
	}
	return []CardRecord(r)
}

// InvalidCount returns how many numbers failed validation.
func (r CardResults) InvalidCount() int {
	n := 0
	for _, rec := range r {
		if !rec.Valid {
			n++
		}
	}
	return n
}
