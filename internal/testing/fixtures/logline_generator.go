// Package fixtures generates seeded log lines and card numbers for tests.
package fixtures

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/penwyp/go-logline/internal/core/model"
)

// Case pairs an input line with the result a parser should produce for it.
type Case struct {
	Line string
	Want model.LogLine
}

var (
	words      = []string{"disk", "full", "retry", "la", "help", "warn", "timeout", "ok", "cache", "miss"}
	badMarkers = []string{"X", "i", "w", "e", "#", "1", "Zed", "[INFO]"}
	badNumbers = []string{"abc", "12x", "--1", "0x1F", "1.5", "1e3", "+", "-"}
)

// LineGenerator produces deterministic cases from a seed.
type LineGenerator struct {
	rng *rand.Rand
}

// NewLineGenerator creates a new generator; equal seeds yield equal sequences.
func NewLineGenerator(seed uint64) *LineGenerator {
	return &LineGenerator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (g *LineGenerator) text() string {
	n := 1 + g.rng.IntN(4)
	parts := make([]string, n)
	for i := range parts {
		parts[i] = words[g.rng.IntN(len(words))]
	}
	return strings.Join(parts, " ")
}

func (g *LineGenerator) pick(values []string) string {
	return values[g.rng.IntN(len(values))]
}

// Message returns a well-formed line of a random kind.
func (g *LineGenerator) Message() Case {
	ts := g.rng.Int64N(1 << 40)
	text := g.text()

	switch g.rng.IntN(3) {
	case 0:
		return Case{
			Line: fmt.Sprintf("I %d %s", ts, text),
			Want: model.Message{Severity: model.Info{}, Timestamp: ts, Text: text},
		}
	case 1:
		return Case{
			Line: fmt.Sprintf("W %d %s", ts, text),
			Want: model.Message{Severity: model.Warning{}, Timestamp: ts, Text: text},
		}
	default:
		code := g.rng.IntN(1000)
		return Case{
			Line: fmt.Sprintf("E %d %d %s", code, ts, text),
			Want: model.Message{Severity: model.Error{Code: code}, Timestamp: ts, Text: text},
		}
	}
}

// BadMarker returns a line rejected at the type marker, which falls back to
// the whole line.
func (g *LineGenerator) BadMarker() Case {
	line := fmt.Sprintf("%s %d %s", g.pick(badMarkers), g.rng.IntN(100), g.text())
	return Case{Line: line, Want: model.Unknown{Text: line}}
}

// BadField returns a line with a valid marker and a malformed integer field,
// which falls back to the residual input starting at that field.
func (g *LineGenerator) BadField() Case {
	bad := g.pick(badNumbers)
	text := g.text()

	switch g.rng.IntN(3) {
	case 0:
		residual := fmt.Sprintf("%s %s", bad, text)
		return Case{Line: "I " + residual, Want: model.Unknown{Text: residual}}
	case 1:
		residual := fmt.Sprintf("%s %d %s", bad, g.rng.IntN(100), text)
		return Case{Line: "E " + residual, Want: model.Unknown{Text: residual}}
	default:
		residual := fmt.Sprintf("%s %s", bad, text)
		return Case{Line: fmt.Sprintf("E %d %s", g.rng.IntN(100), residual), Want: model.Unknown{Text: residual}}
	}
}

// Cases returns n cases mixing all three shapes.
func (g *LineGenerator) Cases(n int) []Case {
	cases := make([]Case, n)
	for i := range cases {
		switch g.rng.IntN(3) {
		case 0:
			cases[i] = g.Message()
		case 1:
			cases[i] = g.BadMarker()
		default:
			cases[i] = g.BadField()
		}
	}
	return cases
}

// CardNumber returns a 16-digit number whose last digit is a correct Luhn
// check digit.
func (g *LineGenerator) CardNumber() int64 {
	body := int64(1+g.rng.IntN(9)) * 100_000_000_000_000
	body += g.rng.Int64N(100_000_000_000_000)
	return body*10 + int64(checkDigit(body))
}

// checkDigit computes the digit that completes body to a Luhn-valid number.
func checkDigit(body int64) int {
	sum := 0
	double := true
	for ; body > 0; body /= 10 {
		d := int(body % 10)
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return (10 - sum%10) % 10
}
