package webidl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var tokenListTests = []struct {
	in       string
	expected DOMTokenList
	str      string
}{
	{"", DOMTokenList{}, ""},
	{"   ", DOMTokenList{}, ""},
	{"a", DOMTokenList{"a"}, "a"},
	{"a b", DOMTokenList{"a", "b"}, "a b"},
	{"\ta\n\nb\f c\r", DOMTokenList{"a", "b", "c"}, "a b c"},
	{"a b a", DOMTokenList{"a", "b"}, "a b"},
	{"a\u00a0b", DOMTokenList{"a\u00a0b"}, "a\u00a0b"},
}

func TestParseTokenList(t *testing.T) {
	for _, tt := range tokenListTests {
		list := ParseTokenList(tt.in)
		assert.Equal(t, tt.expected, list, "input %q", tt.in)
		assert.Equal(t, len(tt.expected), list.Len())
		assert.Equal(t, tt.str, list.String())
	}
}

func TestDOMTokenListContains(t *testing.T) {
	list := ParseTokenList("card  card--wide")
	assert.True(t, list.Contains("card"))
	assert.True(t, list.Contains("card--wide"))
	assert.False(t, list.Contains("card--"))
}
