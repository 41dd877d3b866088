package cmdline

import "iter"

// RawArgs is a snapshot of the arguments a CmdLine has not consumed.
type RawArgs struct {
	slice []string
}

func (a RawArgs) Iter() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, arg := range a.slice {
			if !yield(arg) {
				return
			}
		}
	}
}

func (a RawArgs) Peek() (string, bool) {
	if len(a.slice) > 0 {
		return a.slice[0], true
	}
	return "", false
}

func (a RawArgs) Len() int {
	return len(a.slice)
}

func (a RawArgs) AsSlice() []string {
	return a.slice
}
