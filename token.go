package cmdline

import (
	"fmt"
	"strings"
)

// Token is the classified form of a single raw argument. It holds exactly one
// of TokenNone, TokenPositional, TokenFlag or TokenFlagWithValue.
type Token [1]interface {
	isToken()
}
type TokenNone struct{}
type TokenPositional string
type TokenFlag string
type TokenFlagWithValue struct {
	Name  string
	Value string
}

func (TokenNone) isToken()          {}
func (TokenPositional) isToken()    {}
func (TokenFlag) isToken()          {}
func (TokenFlagWithValue) isToken() {}

// ParseToken applies the flag syntax to a raw argument. Anything starting with
// a dash is a flag: all leading dashes are stripped and the rest is split on
// the first '='. Everything else is positional and kept verbatim.
func ParseToken(s string) Token {
	if !strings.HasPrefix(s, "-") {
		return Token{TokenPositional(s)}
	}
	name := strings.TrimLeft(s, "-")
	if name, value, ok := strings.Cut(name, "="); ok {
		return Token{TokenFlagWithValue{Name: name, Value: value}}
	}
	return Token{TokenFlag(name)}
}

func (t Token) IsNone() bool {
	switch t[0].(type) {
	case TokenNone, nil:
		return true
	default:
		return false
	}
}

func (t Token) IsPositional() bool {
	_, ok := t[0].(TokenPositional)
	return ok
}

func (t Token) String() string {
	switch v := t[0].(type) {
	case TokenNone, nil:
		return "<none>"
	case TokenPositional:
		return fmt.Sprintf("%q", string(v))
	case TokenFlag:
		return "--" + string(v)
	case TokenFlagWithValue:
		return fmt.Sprintf("--%v=%v", v.Name, v.Value)
	default:
		panic("unreachable")
	}
}
