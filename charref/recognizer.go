// Package charref implements the named- and numeric-character-
// reference recognizer of spec.md §3/§4.3: a deterministic,
// maximal-munch matcher over the HTML5 named-character-reference
// list, with the WHATWG legacy-compatibility fallback rules, plus
// numeric reference decoding with Windows-1252 fix-up.
package charref

// match records the best (longest, semicolon-preferred-by-construction
// since it is simply whichever terminal was most recently passed)
// terminal seen so far along the current Parse walk.
type match struct {
	length        int
	replacement   string
	withSemicolon bool
}

// Recognizer is a single named/numeric reference parse in progress.
// It is reused across references the way the teacher reuses a single
// rfc6242.Decoder scan buffer: call Reset between references instead
// of allocating a new Recognizer.
type Recognizer struct {
	cur  *node
	fed  []rune
	best *match

	numericHex bool
	digits     []rune
}

// NewRecognizer returns a ready-to-use Recognizer positioned at the
// trie root.
func NewRecognizer() *Recognizer {
	r := &Recognizer{}
	r.Reset()
	return r
}

// Reset prepares the Recognizer for a new reference, discarding any
// previous match state.
func (r *Recognizer) Reset() {
	r.cur = root
	r.fed = r.fed[:0]
	r.best = nil
	r.numericHex = false
	r.digits = r.digits[:0]
}

// Parse feeds one character of a named reference (the characters
// following '&', NOT including '&' itself). It returns true while the
// trie still has a path for the characters fed so far; it returns
// false the first time ch has no transition from the current state,
// at which point GetMatch/GetRewindCount/EndsWithSemicolon/
// GetMatchLength describe the best terminal passed along the way, if
// any (spec.md §4.3 algorithm).
func (r *Recognizer) Parse(ch rune) bool {
	// A semicolon-terminated match is final: nothing in the table
	// extends past one, so refuse any further character without
	// recording it — the caller should in any case stop consuming
	// once EndsWithSemicolon is true.
	if r.best != nil && r.best.withSemicolon {
		return false
	}

	r.fed = append(r.fed, ch)
	next, ok := r.cur.children[ch]
	if !ok {
		return false
	}
	r.cur = next
	if next.terminal {
		r.best = &match{length: len(r.fed), replacement: next.replacement, withSemicolon: next.withSemicolon}
	}
	return true
}

// GetMatch returns the decoded replacement text, if any terminal was
// reached.
func (r *Recognizer) GetMatch() (string, bool) {
	if r.best == nil {
		return "", false
	}
	return r.best.replacement, true
}

// GetMatchLength returns the length, in input characters, of the
// matched reference token including the leading '&'.
func (r *Recognizer) GetMatchLength() int {
	if r.best == nil {
		return 0
	}
	return r.best.length + 1
}

// GetRewindCount returns how many of the characters fed to Parse lie
// past the matched prefix and must be pushed back onto the character
// source (spec.md §4.3: "longest-prefix fallback").
func (r *Recognizer) GetRewindCount() int {
	matched := 0
	if r.best != nil {
		matched = r.best.length
	}
	return len(r.fed) - matched
}

// EndsWithSemicolon reports whether the matched reference consumed a
// trailing semicolon.
func (r *Recognizer) EndsWithSemicolon() bool {
	return r.best != nil && r.best.withSemicolon
}

// Fed returns every character passed to Parse so far, in order. The
// scanner uses this to reconstruct the raw reference name for
// diagnostics and for the legacy-match replay text.
func (r *Recognizer) Fed() []rune { return r.fed }

// IsHex reports whether SetHex was called for the numeric reference
// currently being parsed.
func (r *Recognizer) IsHex() bool { return r.numericHex }

// LegacyBlockedInAttribute implements the WHATWG attribute-value
// fallback rule (spec.md §4.3, Testable Property 4): a semicolon-less
// legacy match is not substituted when scanned inside an attribute
// value and immediately followed by '=', a digit, or an ASCII letter.
func LegacyBlockedInAttribute(next rune, hasNext bool) bool {
	if !hasNext {
		return false
	}
	switch {
	case next == '=':
		return true
	case next >= '0' && next <= '9':
		return true
	case next >= 'A' && next <= 'Z':
		return true
	case next >= 'a' && next <= 'z':
		return true
	default:
		return false
	}
}
