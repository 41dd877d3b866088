// Command cmdline prints how its arguments are classified.
//
//	cmdline [--verbose|-v] [--file|-f FILE] CMD [ARGS...]
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jcbhmr/go-cmdline"
)

func newLogger() *zap.Logger {
	if os.Getenv("CMDLINE_LOG") != "debug" {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func main() {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	c := cmdline.FromEnvArgs(
		cmdline.WithLogger(logger),
		cmdline.WithHelp("Usage: cmdline [--verbose|-v] [--file|-f FILE] CMD [ARGS...]"),
	)

	fmt.Printf("program: %v\n", c.Program())

	for c.Next() {
		if c.IsFlag("verbose", "v") {
			fmt.Println("--verbose")
		} else if cmd, ok := c.IsPositionalAt(0); ok {
			fmt.Printf("cmd: %v\n", cmd)
		} else if arg, ok := c.IsPositional(); ok {
			fmt.Printf("arg[%v] = %v\n", c.ArgIdx(), arg)
		} else if file, ok := c.IsFlagWithValue("file", "f"); ok {
			fmt.Printf("--file=%v\n", file)
		}
	}
}
