// Package calc implements the stack-based command interpreter of the
// polynomial calculator.
//
// Each input line is either a polynomial in the bracketed notation, which
// is parsed and pushed, or a command operating on the stack. Empty lines
// and lines starting with '#' are ignored. Commands print their results to
// the interpreter's output writer; malformed lines produce a line-numbered
// diagnostic and leave the stack untouched.
package calc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/AaRaBiNoZa/multivariable-polynomial-calculator/internal/config"
	"github.com/AaRaBiNoZa/multivariable-polynomial-calculator/internal/diagnostics"
	"github.com/AaRaBiNoZa/multivariable-polynomial-calculator/internal/parser"
	"github.com/AaRaBiNoZa/multivariable-polynomial-calculator/internal/poly"
)

// Interpreter executes calculator lines against an operand stack.
type Interpreter struct {
	out   io.Writer
	errs  *diagnostics.Reporter
	stack Stack

	// Prompt, when non-nil, is invoked before each line is read by Run.
	Prompt func()

	// AfterLine, when non-nil, is invoked after each line Run executed,
	// with ok reporting whether the line completed without a diagnostic.
	AfterLine func(n int, line string, ok bool)
}

// New returns an interpreter printing results to out and diagnostics
// through errs.
func New(out io.Writer, errs *diagnostics.Reporter) *Interpreter {
	return &Interpreter{out: out, errs: errs}
}

// Run executes lines from r until EOF. The returned error is a read
// failure, never a calculator diagnostic.
func (i *Interpreter) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), config.MaxLineLen)
	for n := 1; ; n++ {
		if i.Prompt != nil {
			i.Prompt()
		}
		if !sc.Scan() {
			return sc.Err()
		}
		line := sc.Text()
		ok := i.Exec(n, line)
		if i.AfterLine != nil {
			i.AfterLine(n, line, ok)
		}
	}
}

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

// Exec executes a single line with the given 1-based number and reports
// whether it completed without a diagnostic.
func (i *Interpreter) Exec(n int, line string) bool {
	if line == "" || line[0] == config.CommentChar {
		return true
	}
	if isLetter(line[0]) {
		return i.execCommand(n, line)
	}
	p, err := parser.Parse(line)
	if err != nil {
		return i.report(n, diagnostics.WrongPoly)
	}
	i.stack.Push(p)
	return true
}

func (i *Interpreter) report(n int, code diagnostics.Code) bool {
	i.errs.Report(n, code)
	return false
}

func (i *Interpreter) printBool(v bool) {
	if v {
		fmt.Fprintln(i.out, "1")
	} else {
		fmt.Fprintln(i.out, "0")
	}
}

func (i *Interpreter) execCommand(n int, line string) bool {
	switch line {
	case config.CmdZero:
		i.stack.Push(poly.Zero())
	case config.CmdIsCoeff:
		if i.stack.Len() < 1 {
			return i.report(n, diagnostics.StackUnderflow)
		}
		i.printBool(i.stack.Peek().IsCoeff())
	case config.CmdIsZero:
		if i.stack.Len() < 1 {
			return i.report(n, diagnostics.StackUnderflow)
		}
		i.printBool(i.stack.Peek().IsZero())
	case config.CmdClone:
		if i.stack.Len() < 1 {
			return i.report(n, diagnostics.StackUnderflow)
		}
		i.stack.Push(i.stack.Peek().Clone())
	case config.CmdNeg:
		if i.stack.Len() < 1 {
			return i.report(n, diagnostics.StackUnderflow)
		}
		i.stack.Push(i.stack.Pop().Neg())
	case config.CmdDeg:
		if i.stack.Len() < 1 {
			return i.report(n, diagnostics.StackUnderflow)
		}
		fmt.Fprintln(i.out, i.stack.Peek().Deg())
	case config.CmdPrint:
		if i.stack.Len() < 1 {
			return i.report(n, diagnostics.StackUnderflow)
		}
		fmt.Fprintln(i.out, i.stack.Peek().String())
	case config.CmdPop:
		if i.stack.Len() < 1 {
			return i.report(n, diagnostics.StackUnderflow)
		}
		i.stack.Pop()
	case config.CmdAdd, config.CmdMul, config.CmdSub:
		if i.stack.Len() < 2 {
			return i.report(n, diagnostics.StackUnderflow)
		}
		first, second := i.stack.Pop(), i.stack.Pop()
		switch line {
		case config.CmdAdd:
			i.stack.Push(first.Add(second))
		case config.CmdMul:
			i.stack.Push(first.Mul(second))
		case config.CmdSub:
			i.stack.Push(first.Sub(second))
		}
	case config.CmdIsEq:
		if i.stack.Len() < 2 {
			return i.report(n, diagnostics.StackUnderflow)
		}
		first, second := i.stack.Pop(), i.stack.Pop()
		i.printBool(first.Equal(second))
		i.stack.Push(second)
		i.stack.Push(first)
	default:
		return i.execParametric(n, line)
	}
	return true
}

// execParametric handles the commands taking a numeric argument: DEG_BY,
// AT and COMPOSE. The command name must be followed by exactly one space
// and the bare number; a non-whitespace character after the name makes the
// whole line an unknown command, while bad whitespace or a malformed or
// out-of-range number is that command's own parameter error.
func (i *Interpreter) execParametric(n int, line string) bool {
	switch {
	case hasName(line, config.CmdDegBy):
		return i.execDegBy(n, line[len(config.CmdDegBy):])
	case hasName(line, config.CmdAt):
		return i.execAt(n, line[len(config.CmdAt):])
	case hasName(line, config.CmdCompose):
		return i.execCompose(n, line[len(config.CmdCompose):])
	default:
		return i.report(n, diagnostics.WrongCommand)
	}
}

// hasName reports whether the line is the given command name, possibly
// followed by an argument. A longer word ("DEG_BYX") is a different,
// unknown command.
func hasName(line, name string) bool {
	if len(line) < len(name) || line[:len(name)] != name {
		return false
	}
	return len(line) == len(name) || !isWordChar(line[len(name)])
}

func isWordChar(ch byte) bool {
	return isLetter(ch) || ch == '_'
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// argNumber extracts the numeric argument text: exactly one space, then a
// number starting with one of the allowed first bytes. ok is false when the
// argument is missing or malformed; such lines are parameter errors, not
// unknown commands, because the command name itself matched.
func argNumber(arg string, allowMinus bool) (string, bool) {
	if len(arg) < 2 || arg[0] != ' ' {
		return "", false
	}
	num := arg[1:]
	if num[0] >= '0' && num[0] <= '9' || allowMinus && num[0] == '-' {
		return num, true
	}
	return "", false
}

func (i *Interpreter) execDegBy(n int, arg string) bool {
	if len(arg) > 0 && !isSpace(arg[0]) {
		return i.report(n, diagnostics.WrongCommand)
	}
	num, ok := argNumber(arg, false)
	if !ok {
		return i.report(n, diagnostics.DegByWrongVariable)
	}
	varIdx, err := strconv.ParseUint(num, 10, 64)
	if err != nil {
		return i.report(n, diagnostics.DegByWrongVariable)
	}
	if i.stack.Len() < 1 {
		return i.report(n, diagnostics.StackUnderflow)
	}
	fmt.Fprintln(i.out, i.stack.Peek().DegBy(varIdx))
	return true
}

func (i *Interpreter) execAt(n int, arg string) bool {
	if len(arg) > 0 && !isSpace(arg[0]) {
		return i.report(n, diagnostics.WrongCommand)
	}
	num, ok := argNumber(arg, true)
	if !ok {
		return i.report(n, diagnostics.AtWrongValue)
	}
	x, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return i.report(n, diagnostics.AtWrongValue)
	}
	if i.stack.Len() < 1 {
		return i.report(n, diagnostics.StackUnderflow)
	}
	i.stack.Push(i.stack.Pop().At(x))
	return true
}

func (i *Interpreter) execCompose(n int, arg string) bool {
	if len(arg) > 0 && !isSpace(arg[0]) {
		return i.report(n, diagnostics.WrongCommand)
	}
	num, ok := argNumber(arg, false)
	if !ok {
		return i.report(n, diagnostics.ComposeWrongParameter)
	}
	count, err := strconv.ParseUint(num, 10, 64)
	if err != nil {
		return i.report(n, diagnostics.ComposeWrongParameter)
	}
	// The stack must hold the composed polynomial plus count substitutes.
	if count >= uint64(i.stack.Len()) {
		return i.report(n, diagnostics.StackUnderflow)
	}
	p := i.stack.Pop()
	qs := make([]poly.Poly, count)
	for j := count; j > 0; j-- {
		qs[j-1] = i.stack.Pop()
	}
	i.stack.Push(p.Compose(qs))
	return true
}
