package cmdline

import (
	"io"

	"go.uber.org/zap"
)

// ErrorPolicy decides what Next does once an error has been recorded.
type ErrorPolicy int

const (
	// ExitOnError prints the error with a --help hint and exits with code 1.
	ExitOnError ErrorPolicy = iota
	// ContinueOnError makes Next return false and leaves the error to Result.
	ContinueOnError
)

type Option func(*CmdLine)

func WithErrorPolicy(policy ErrorPolicy) Option {
	return func(c *CmdLine) {
		c.policy = policy
	}
}

// WithHelp replaces the default "Usage: <program> OPTIONS" text.
func WithHelp(help string) Option {
	return func(c *CmdLine) {
		c.help = help
	}
}

func WithStdout(w io.Writer) Option {
	return func(c *CmdLine) {
		c.stdout = w
	}
}

func WithStderr(w io.Writer) Option {
	return func(c *CmdLine) {
		c.stderr = w
	}
}

// WithExitFunc replaces os.Exit for --help and errors under ExitOnError.
// If exit returns, Next returns false.
func WithExitFunc(exit func(code int)) Option {
	return func(c *CmdLine) {
		c.exit = exit
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *CmdLine) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	}
}
