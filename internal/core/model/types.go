package model

// Timestamp is the integer timestamp field of a log line.
type Timestamp = int64

// LogLine is the result of classifying one line of text. It is either a
// Message or an Unknown, never both.
type LogLine interface {
	logLine()
}

// Message is a well-formed log line.
type Message struct {
	Severity  Severity
	Timestamp Timestamp
	Text      string
}

// Unknown holds text that could not be classified. Depending on where parsing
// stopped this is the whole input or only the unconsumed remainder of it.
type Unknown struct {
	Text string
}

func (Message) logLine() {}
func (Unknown) logLine() {}

// IsUnknown reports whether l is the Unknown variant.
func IsUnknown(l LogLine) bool {
	_, ok := l.(Unknown)
	return ok
}
