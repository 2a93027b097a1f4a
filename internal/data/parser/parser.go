package parser

import (
	"strconv"

	"github.com/penwyp/go-logline/internal/core/model"
)

// Parse classifies a single line of text.
//
// A line has the shape "<marker> <fields...> <text>" where the marker token
// starts with I, W or E:
//
//	I <timestamp> <text>
//	W <timestamp> <text>
//	E <code> <timestamp> <text>
//
// Lines that are empty, blank or carry an unrecognised marker come back as
// Unknown holding the whole input. Once a marker has been accepted, a bad
// field yields Unknown holding only the residual input from the point the
// field failed.
func Parse(line string) model.LogLine {
	if line == "" {
		return model.Unknown{Text: line}
	}

	marker, c, ok := newCursor(line).token()
	if !ok {
		return model.Unknown{Text: line}
	}
	if c, ok = c.delimiter(); !ok {
		return model.Unknown{Text: line}
	}

	kind, ok := model.KindForMarker(marker[0])
	if !ok {
		return model.Unknown{Text: line}
	}

	switch kind {
	case model.KindInfo:
		return parseBody(c, model.Info{})
	case model.KindWarning:
		return parseBody(c, model.Warning{})
	case model.KindError:
		return parseError(c)
	}
	return model.Unknown{Text: line}
}

// ParseAll classifies each line independently, preserving order.
func ParseAll(lines []string) []model.LogLine {
	out := make([]model.LogLine, len(lines))
	for i, line := range lines {
		out[i] = Parse(line)
	}
	return out
}

func parseError(c cursor) model.LogLine {
	code, c, ok := c.integer(strconv.IntSize)
	if !ok {
		return model.Unknown{Text: c.Residual()}
	}
	return parseBody(c, model.Error{Code: int(code)})
}

// parseBody reads the "<timestamp> <text>" tail shared by every kind.
func parseBody(c cursor, severity model.Severity) model.LogLine {
	ts, c, ok := c.integer(64)
	if !ok {
		return model.Unknown{Text: c.Residual()}
	}

	text, c, ok := c.line()
	if !ok {
		return model.Unknown{Text: c.Residual()}
	}

	return model.Message{Severity: severity, Timestamp: ts, Text: text}
}
