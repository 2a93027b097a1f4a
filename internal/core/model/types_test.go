package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityKindString(t *testing.T) {
	tests := []struct {
		kind     SeverityKind
		expected string
	}{
		{KindInfo, "info"},
		{KindWarning, "warning"},
		{KindError, "error"},
		{SeverityKind(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestKindForMarker(t *testing.T) {
	for _, kind := range []SeverityKind{KindInfo, KindWarning, KindError} {
		got, ok := KindForMarker(kind.Marker())
		assert.True(t, ok)
		assert.Equal(t, kind, got)
	}

	for _, marker := range []byte{'i', 'w', 'e', 'X', ' ', 0} {
		_, ok := KindForMarker(marker)
		assert.False(t, ok, "marker %q should be rejected", marker)
	}
}

func TestSeverityEquality(t *testing.T) {
	assert.Equal(t, Severity(Error{Code: 2}), Severity(Error{Code: 2}))
	assert.NotEqual(t, Severity(Error{Code: 2}), Severity(Error{Code: 3}))
	assert.NotEqual(t, Severity(Info{}), Severity(Warning{}))
	assert.True(t, Severity(Info{}) == Severity(Info{}))

	assert.Equal(t, KindError, Error{Code: 7}.Kind())
	assert.Equal(t, KindWarning, Warning{}.Kind())
	assert.Equal(t, KindInfo, Info{}.Kind())
}

func TestLogLineEquality(t *testing.T) {
	a := LogLine(Message{Severity: Error{Code: 2}, Timestamp: 562, Text: "help help"})
	b := LogLine(Message{Severity: Error{Code: 2}, Timestamp: 562, Text: "help help"})
	assert.True(t, a == b)

	c := LogLine(Message{Severity: Error{Code: 2}, Timestamp: 563, Text: "help help"})
	assert.False(t, a == c)

	assert.False(t, LogLine(Unknown{Text: "x"}) == LogLine(Message{Severity: Info{}, Text: "x"}))
}

func TestIsUnknown(t *testing.T) {
	assert.True(t, IsUnknown(Unknown{Text: ""}))
	assert.False(t, IsUnknown(Message{Severity: Info{}, Timestamp: 1, Text: "a"}))
}
