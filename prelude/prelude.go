/*
A small prelude for matching tokens.

It allows you to write None/Positional/Flag/FlagWithValue without a Token prefix.
*/
package prelude

import "github.com/jcbhmr/go-cmdline"

type None = cmdline.TokenNone
type Positional = cmdline.TokenPositional
type Flag = cmdline.TokenFlag
type FlagWithValue = cmdline.TokenFlagWithValue
