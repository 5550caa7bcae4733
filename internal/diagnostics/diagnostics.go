// Package diagnostics implements the calculator's line-numbered error
// reporting. There is no recovery logic: a reported error means the current
// line was abandoned and the interpreter moved on.
package diagnostics

import (
	"fmt"
	"io"
)

// Code identifies one of the calculator's user-facing errors.
type Code int

const (
	WrongCommand Code = iota
	DegByWrongVariable
	AtWrongValue
	StackUnderflow
	WrongPoly
	ComposeWrongParameter
)

var messages = map[Code]string{
	WrongCommand:          "WRONG COMMAND",
	DegByWrongVariable:    "DEG BY WRONG VARIABLE",
	AtWrongValue:          "AT WRONG VALUE",
	StackUnderflow:        "STACK UNDERFLOW",
	WrongPoly:             "WRONG POLY",
	ComposeWrongParameter: "COMPOSE WRONG PARAMETER",
}

// Message returns the user-facing text for the code.
func (c Code) Message() string {
	if msg, ok := messages[c]; ok {
		return msg
	}
	return "UNEXPECTED ERROR CODE"
}

func (c Code) String() string {
	return c.Message()
}

// Reporter writes line-numbered diagnostics to a single destination,
// usually stderr.
type Reporter struct {
	w io.Writer
}

// NewReporter returns a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Report emits one diagnostic for the given 1-based input line.
func (r *Reporter) Report(line int, code Code) {
	fmt.Fprintf(r.w, "ERROR %d %s\n", line, code.Message())
}
