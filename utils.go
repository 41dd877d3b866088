package cmdline

import (
	"path/filepath"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// programName reduces the executable path to its final segment.
func programName(executable string) string {
	name := filepath.Base(executable)
	switch name {
	case ".", "..", string(filepath.Separator):
		panic(errors.AssertionFailedf("invalid first argument %q: must be the path to the executable", executable))
	}
	if !utf8.ValidString(name) {
		panic(errors.AssertionFailedf("invalid first argument %q: program name is not valid UTF-8", executable))
	}
	return name
}
