package cmdline

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/samber/mo"
	"go.uber.org/zap"
)

// CmdLine is a pull-based cursor over the process arguments. Each call to
// Next stages one classified token which the caller claims through IsFlag,
// IsFlagWithValue, IsPositional or IsPositionalAt. A token that is still
// unclaimed when Next is called again is reported as a parse error.
type CmdLine struct {
	program      string
	help         string
	rest         []string
	token        Token
	argIdx       int
	onlyArgsLeft bool
	policy       ErrorPolicy
	err          mo.Option[Error]

	stdout io.Writer
	stderr io.Writer
	exit   func(code int)
	logger *zap.Logger
}

// FromEnvArgs builds a CmdLine from os.Args.
func FromEnvArgs(opts ...Option) *CmdLine {
	return FromArgs(os.Args, opts...)
}

// FromString splits s on single spaces and builds a CmdLine from the parts.
// There is no quoting; it is meant for tests and small tools.
func FromString(s string, opts ...Option) *CmdLine {
	return FromArgs(strings.Split(s, " "), opts...)
}

// FromArgs builds a CmdLine from args, whose first element is the path of the
// invoked executable. It panics if args is empty or the path has no usable
// final segment.
func FromArgs(args []string, opts ...Option) *CmdLine {
	if len(args) == 0 {
		panic(errors.AssertionFailedf("at least one argument (the program path) is required"))
	}
	program := programName(strings.TrimSpace(args[0]))
	c := &CmdLine{
		program: program,
		help:    fmt.Sprintf("Usage: %v OPTIONS", program),
		rest:    slices.Clone(args[1:]),
		token:   Token{TokenNone{}},
		argIdx:  -1,
		policy:  ExitOnError,
		err:     mo.None[Error](),
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		exit:    os.Exit,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Next stages the next argument and reports whether there was one. It
// returns false at the end of input and, permanently, once an error has been
// recorded.
func (c *CmdLine) Next() bool {
	if c.err.IsPresent() {
		c.maybeExitOnError()
		return false
	}

	switch v := c.token[0].(type) {
	case TokenNone, nil:
	case TokenFlag:
		c.rejectFlag(string(v))
		return false
	case TokenFlagWithValue:
		c.rejectFlag(v.Name)
		return false
	case TokenPositional:
		c.setErr(&ErrorTooManyArguments{Arg: string(v)})
		c.maybeExitOnError()
		return false
	default:
		panic("unreachable")
	}

	arg, ok := c.pop()
	if !ok {
		return false
	}

	if c.onlyArgsLeft {
		c.stage(Token{TokenPositional(arg)})
		return true
	}

	switch arg {
	case "--":
		next, ok := c.pop()
		if !ok {
			return false
		}
		c.onlyArgsLeft = true
		c.stage(Token{TokenPositional(next)})
	case "--help":
		c.PrintHelp()
		c.exit(0)
		return false
	default:
		c.stage(ParseToken(arg))
	}
	return true
}

func (c *CmdLine) rejectFlag(name string) {
	if name == "" {
		c.setErr(&ErrorEmptyFlagName{})
	} else {
		c.setErr(&ErrorUnknownOption{Name: name})
	}
	c.maybeExitOnError()
}

func (c *CmdLine) pop() (string, bool) {
	if len(c.rest) == 0 {
		return "", false
	}
	arg := c.rest[0]
	c.rest = c.rest[1:]
	return arg, true
}

func (c *CmdLine) stage(t Token) {
	if t.IsPositional() {
		c.argIdx++
	}
	c.token = t
	c.logger.Debug("staged token", zap.Stringer("token", t), zap.Int("argIdx", c.argIdx))
}

func (c *CmdLine) claim() {
	c.logger.Debug("claimed token", zap.Stringer("token", c.token))
	c.token = Token{TokenNone{}}
}

func (c *CmdLine) setErr(e Error) {
	if c.err.IsPresent() {
		return
	}
	c.logger.Debug("parse error", zap.Error(e), zap.Stringer("token", c.token))
	c.err = mo.Some(e)
}

func matches(name, long, short string) bool {
	return name == long || name == short
}

// IsFlag claims a staged flag named long or short. A matching flag given an
// inline value records an ErrorUnexpectedValue and is left staged.
func (c *CmdLine) IsFlag(long, short string) bool {
	switch v := c.token[0].(type) {
	case TokenFlag:
		if matches(string(v), long, short) {
			c.claim()
			return true
		}
		return false
	case TokenFlagWithValue:
		if matches(v.Name, long, short) {
			c.setErr(&ErrorUnexpectedValue{Name: v.Name, Value: v.Value})
		}
		return false
	case TokenNone, TokenPositional, nil:
		return false
	default:
		panic("unreachable")
	}
}

// IsFlagWithValue claims a staged flag named long or short together with its
// value. The value is either inline (--name=value) or the following argument,
// which must not itself look like a flag.
func (c *CmdLine) IsFlagWithValue(long, short string) (string, bool) {
	switch v := c.token[0].(type) {
	case TokenFlagWithValue:
		if matches(v.Name, long, short) {
			c.claim()
			return v.Value, true
		}
		return "", false
	case TokenFlag:
		name := string(v)
		if !matches(name, long, short) {
			return "", false
		}
		if next, ok := c.pop(); ok {
			if value, ok := ParseToken(next)[0].(TokenPositional); ok {
				c.claim()
				return string(value), true
			}
		}
		c.setErr(&ErrorMissingValue{Name: name})
		return "", false
	case TokenNone, TokenPositional, nil:
		return "", false
	default:
		panic("unreachable")
	}
}

// IsPositional claims a staged positional argument.
func (c *CmdLine) IsPositional() (string, bool) {
	switch v := c.token[0].(type) {
	case TokenPositional:
		c.claim()
		return string(v), true
	case TokenNone, TokenFlag, TokenFlagWithValue, nil:
		return "", false
	default:
		panic("unreachable")
	}
}

// IsPositionalAt claims a staged positional argument only if it is the
// idx-th positional seen so far, counting from zero.
func (c *CmdLine) IsPositionalAt(idx int) (string, bool) {
	if c.argIdx != idx {
		return "", false
	}
	return c.IsPositional()
}

// ArgIdx is the index of the most recently staged positional argument, or -1.
func (c *CmdLine) ArgIdx() int {
	return c.argIdx
}

// Peek returns the staged token without claiming it.
func (c *CmdLine) Peek() Token {
	return c.token
}

// Remaining returns the raw arguments not consumed yet.
func (c *CmdLine) Remaining() RawArgs {
	return RawArgs{slice: slices.Clone(c.rest)}
}

// Result is nil unless an error has been recorded, in which case it is the
// first one.
func (c *CmdLine) Result() error {
	if e, ok := c.err.Get(); ok {
		return e
	}
	return nil
}

// SetError records a caller-defined error, e.g. after semantic validation of
// the extracted values. It is ignored if an error is already recorded.
func (c *CmdLine) SetError(msg string) {
	c.setErr(&ErrorCustom{A: errors.New(msg)})
}

func (c *CmdLine) SetExitOnError(exit bool) {
	if exit {
		c.policy = ExitOnError
	} else {
		c.policy = ContinueOnError
	}
}

func (c *CmdLine) SetErrorPolicy(policy ErrorPolicy) {
	c.policy = policy
}

func (c *CmdLine) maybeExitOnError() {
	e, ok := c.err.Get()
	if !ok || c.policy != ExitOnError {
		return
	}
	c.SyntaxError(e.Error())
}

func (c *CmdLine) Program() string {
	return c.program
}

func (c *CmdLine) Help() string {
	return c.help
}

func (c *CmdLine) SetHelp(help string) {
	c.help = help
}

func (c *CmdLine) PrintHelp() {
	_, _ = fmt.Fprintln(c.stdout, c.help)
}

// SyntaxError prints msg with a hint to use --help and exits with code 1.
func (c *CmdLine) SyntaxError(msg string) {
	_, _ = fmt.Fprintf(c.stderr, "%v: %v\n\nUse --help for more information!\n", c.coloredProgram(), msg)
	c.exit(1)
}

// RuntimeError prints msg and exits with code 1.
func (c *CmdLine) RuntimeError(msg string) {
	_, _ = fmt.Fprintf(c.stderr, "%v: %v\n\n", c.coloredProgram(), msg)
	c.exit(1)
}

func (c *CmdLine) coloredProgram() string {
	return color.New(color.FgRed, color.Bold).Sprint(c.program)
}
