package cmdline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseToken(t *testing.T) {
	tests := []struct {
		arg  string
		want Token
	}{
		{"file.txt", Token{TokenPositional("file.txt")}},
		{"", Token{TokenPositional("")}},
		{"a-b", Token{TokenPositional("a-b")}},
		{"-v", Token{TokenFlag("v")}},
		{"--verbose", Token{TokenFlag("verbose")}},
		{"---verbose", Token{TokenFlag("verbose")}},
		{"-", Token{TokenFlag("")}},
		{"--", Token{TokenFlag("")}},
		{"--file=a.txt", Token{TokenFlagWithValue{Name: "file", Value: "a.txt"}}},
		{"-f=a=b", Token{TokenFlagWithValue{Name: "f", Value: "a=b"}}},
		{"--file=", Token{TokenFlagWithValue{Name: "file", Value: ""}}},
		{"--=x", Token{TokenFlagWithValue{Name: "", Value: "x"}}},
		{"-abc", Token{TokenFlag("abc")}},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			require.Equal(t, tt.want, ParseToken(tt.arg))
		})
	}
}

func TestTokenString(t *testing.T) {
	require.Equal(t, "<none>", Token{TokenNone{}}.String())
	require.Equal(t, "<none>", Token{}.String())
	require.Equal(t, `"x"`, Token{TokenPositional("x")}.String())
	require.Equal(t, "--v", Token{TokenFlag("v")}.String())
	require.Equal(t, "--file=a", Token{TokenFlagWithValue{Name: "file", Value: "a"}}.String())
}

func TestTokenPredicates(t *testing.T) {
	require.True(t, Token{}.IsNone())
	require.True(t, Token{TokenNone{}}.IsNone())
	require.False(t, Token{TokenFlag("x")}.IsNone())
	require.True(t, Token{TokenPositional("x")}.IsPositional())
	require.False(t, Token{TokenFlagWithValue{Name: "x"}}.IsPositional())
}
