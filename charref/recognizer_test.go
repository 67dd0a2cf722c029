package charref

import (
	"testing"

	assert "github.com/stretchr/testify/require"
)

func feed(t *testing.T, r *Recognizer, s string) {
	t.Helper()
	for _, ch := range s {
		if !r.Parse(ch) {
			return
		}
	}
}

func TestNamedReferenceWithSemicolon(t *testing.T) {
	r := NewRecognizer()
	feed(t, r, "amp;x")

	repl, ok := r.GetMatch()
	assert.True(t, ok)
	assert.Equal(t, "&", repl)
	assert.True(t, r.EndsWithSemicolon())
	assert.Equal(t, 0, r.GetRewindCount())
	assert.Equal(t, len("&amp;"), r.GetMatchLength())
}

func TestLegacyReferenceWithoutSemicolon(t *testing.T) {
	r := NewRecognizer()
	feed(t, r, "amp ")

	repl, ok := r.GetMatch()
	assert.True(t, ok)
	assert.Equal(t, "&", repl)
	assert.False(t, r.EndsWithSemicolon())
	// "amp " fed 4 chars, matched "amp" (3): one char (' ') must rewind.
	assert.Equal(t, 1, r.GetRewindCount())
}

func TestUnknownReferencePreservesRaw(t *testing.T) {
	r := NewRecognizer()
	feed(t, r, "foo;")

	_, ok := r.GetMatch()
	assert.False(t, ok)
}

func TestLongestPrefixFallback(t *testing.T) {
	// "notin" is a valid legacy-style partial of a longer reference
	// family in the real WHATWG table; here we exercise fallback using
	// our trie's own content: "amp" is legacy-terminal, "ampX" is not
	// a continuation, so after "amp" the walk dies on 'X'.
	r := NewRecognizer()
	feed(t, r, "ampX")

	repl, ok := r.GetMatch()
	assert.True(t, ok)
	assert.Equal(t, "&", repl)
	assert.Equal(t, 1, r.GetRewindCount())
}

func TestLegacyBlockedInAttribute(t *testing.T) {
	assert.True(t, LegacyBlockedInAttribute('=', true))
	assert.True(t, LegacyBlockedInAttribute('9', true))
	assert.True(t, LegacyBlockedInAttribute('A', true))
	assert.True(t, LegacyBlockedInAttribute('z', true))
	assert.False(t, LegacyBlockedInAttribute(' ', true))
	assert.False(t, LegacyBlockedInAttribute(0, false))
}

func TestSupplementalEntityRequiresSemicolon(t *testing.T) {
	r := NewRecognizer()
	feed(t, r, "apos")
	_, ok := r.GetMatch()
	assert.False(t, ok, "apos without semicolon must not match: HTML5 never made it legacy")

	r.Reset()
	feed(t, r, "apos;")
	repl, ok := r.GetMatch()
	assert.True(t, ok)
	assert.Equal(t, "'", repl)
}
