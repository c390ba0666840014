// Package diagnostics formats transformer diagnostics with source context,
// line/column information, and visual indicators (carets) pointing to the
// offending location.
package diagnostics

import (
	"fmt"
	"strings"

	"golang.org/x/text/width"

	"github.com/zerosugarjs/zerosugar/internal/lexer"
)

// Kind classifies why a transformation failed.
type Kind int

const (
	// ParseError means the parser reported at least one syntax error.
	ParseError Kind = iota
	// UnsupportedConstruct means the input used a construct the core
	// deliberately refuses to lower (using-declarations, JSX, TS-only
	// syntax, await in for-of, etc).
	UnsupportedConstruct
	// InvariantViolation means an internal invariant broke — a node shape
	// that should already have been rewritten by an earlier pass reappeared
	// later. This indicates a bug in the core, not a bad input program.
	InvariantViolation
)

func (k Kind) String() string {
	switch k {
	case ParseError:
		return "ParseError"
	case UnsupportedConstruct:
		return "UnsupportedConstruct"
	case InvariantViolation:
		return "InvariantViolation"
	default:
		return "UnknownError"
	}
}

// Diagnostic is a single positioned error.
type Diagnostic struct {
	Kind    Kind
	Message string
	Source  string
	File    string
	Pos     lexer.Position
}

// New creates a Diagnostic.
func New(kind Kind, pos lexer.Position, message, source, file string) *Diagnostic {
	return &Diagnostic{Kind: kind, Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	return d.Format(false)
}

// Format renders the diagnostic with a source-line-and-caret view.
// If color is true, ANSI color codes are used for terminal output.
func (d *Diagnostic) Format(color bool) string {
	var sb strings.Builder

	if d.File != "" {
		sb.WriteString(fmt.Sprintf("%s in %s:%d:%d\n", d.Kind, d.File, d.Pos.Line, d.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("%s at line %d:%d\n", d.Kind, d.Pos.Line, d.Pos.Column))
	}

	if line := d.sourceLine(d.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", d.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+d.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(d.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (d *Diagnostic) sourceLine(lineNum int) string {
	if d.Source == "" {
		return ""
	}
	lines := strings.Split(d.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// displayWidth measures s in terminal columns rather than runes: an
// east-asian wide or fullwidth rune (as seen in file paths and messages
// carrying CJK identifiers) occupies two columns, everything else one.
func displayWidth(s string) int {
	cols := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			cols += 2
		default:
			cols++
		}
	}
	return cols
}

func padRight(s string, cols int) string {
	if pad := cols - displayWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// FormatTable renders diags as an aligned, column-padded table: kind,
// location, and message, one row per diagnostic. Column widths are
// measured with displayWidth, so a location or message containing
// east-asian-wide identifiers still lines up.
func FormatTable(diags []*Diagnostic) string {
	if len(diags) == 0 {
		return ""
	}

	type row struct{ kind, loc, msg string }
	rows := make([]row, len(diags))
	kindW, locW := displayWidth("KIND"), displayWidth("LOCATION")
	for i, d := range diags {
		loc := fmt.Sprintf("%d:%d", d.Pos.Line, d.Pos.Column)
		if d.File != "" {
			loc = d.File + ":" + loc
		}
		rows[i] = row{kind: d.Kind.String(), loc: loc, msg: d.Message}
		if w := displayWidth(rows[i].kind); w > kindW {
			kindW = w
		}
		if w := displayWidth(loc); w > locW {
			locW = w
		}
	}

	var sb strings.Builder
	sb.WriteString(padRight("KIND", kindW) + "  " + padRight("LOCATION", locW) + "  MESSAGE\n")
	for _, r := range rows {
		sb.WriteString(padRight(r.kind, kindW) + "  " + padRight(r.loc, locW) + "  " + r.msg + "\n")
	}
	return sb.String()
}

// Join formats multiple diagnostics into one joined report.
func Join(diags []*Diagnostic, color bool) string {
	if len(diags) == 0 {
		return ""
	}
	if len(diags) == 1 {
		return diags[0].Format(color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("transformation failed with %d error(s):\n\n", len(diags)))
	for i, d := range diags {
		sb.WriteString(fmt.Sprintf("[%d of %d]\n", i+1, len(diags)))
		sb.WriteString(d.Format(color))
		if i < len(diags)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
