package cmdline_test

import (
	"fmt"

	"github.com/jcbhmr/go-cmdline"
)

func ExampleCmdLine() {
	c := cmdline.FromString(
		"/usr/bin/cmdline --verbose cmd --file=myfile.txt arg1 -- --arg2",
		cmdline.WithErrorPolicy(cmdline.ContinueOnError),
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
	fmt.Printf("result: %v\n", c.Result())

	// Output:
	// program: cmdline
	// --verbose
	// cmd: cmd
	// --file=myfile.txt
	// arg[1] = arg1
	// arg[2] = --arg2
	// result: <nil>
}

func ExampleCmdLine_SetError() {
	c := cmdline.FromString("cmdline --level 9", cmdline.WithErrorPolicy(cmdline.ContinueOnError))
	for c.Next() {
		if level, ok := c.IsFlagWithValue("level", "l"); ok && level > "5" {
			c.SetError(fmt.Sprintf("level out of range: %v", level))
		}
	}
	fmt.Println(c.Result())

	// Output:
	// level out of range: 9
}
