package model

// SeverityKind identifies which severity variant a message carries.
type SeverityKind int

const (
	KindInfo SeverityKind = iota
	KindWarning
	KindError
)

// String returns the lower-case name of the kind
func (k SeverityKind) String() string {
	switch k {
	case KindInfo:
		return "info"
	case KindWarning:
		return "warning"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Marker returns the type marker character that selects this kind in a log line.
func (k SeverityKind) Marker() byte {
	switch k {
	case KindInfo:
		return 'I'
	case KindWarning:
		return 'W'
	case KindError:
		return 'E'
	default:
		return 0
	}
}

// KindForMarker maps a type marker to its severity kind.
func KindForMarker(marker byte) (SeverityKind, bool) {
	switch marker {
	case 'I':
		return KindInfo, true
	case 'W':
		return KindWarning, true
	case 'E':
		return KindError, true
	default:
		return 0, false
	}
}

// Severity is the closed set of message severities: Info, Warning and Error.
// Values are comparable, so two severities are equal when their variant and
// payload match.
type Severity interface {
	Kind() SeverityKind
	severity()
}

type Info struct{}

type Warning struct{}

// Error carries the numeric error code read from the line.
type Error struct {
	Code int
}

func (Info) Kind() SeverityKind    { return KindInfo }
func (Warning) Kind() SeverityKind { return KindWarning }
func (Error) Kind() SeverityKind   { return KindError }

func (Info) severity()    {}
func (Warning) severity() {}
func (Error) severity()   {}
