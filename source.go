package gohtml

import (
	"io"
	"unicode/utf8"

	"github.com/nekohtml/gohtml/charsrc"
)

// Source describes one input to tokenize or push as a nested entity
// (spec.md §4.6). It mirrors charsrc.SourceSpec; the gohtml-level type
// exists so callers never need to import package charsrc directly.
type Source = charsrc.SourceSpec

// RuneSource is the pre-decoded character stream interface a Source
// may supply instead of a byte Reader.
type RuneSource = charsrc.RuneSource

// NewByteSource builds a Source reading bytes from r, with an
// optional encoding hint (empty defers to BOM detection and then the
// Tokenizer's DefaultEncoding option).
func NewByteSource(r io.Reader, encodingHint string) Source {
	return Source{Reader: r, Encoding: encodingHint, EnablePlayback: true}
}

// NewStringSource builds a Source over an already-decoded string,
// skipping byte-level encoding detection entirely.
func NewStringSource(s string) Source {
	return Source{Runes: &stringRuneSource{s: s}}
}

type stringRuneSource struct {
	s   string
	pos int
}

func (r *stringRuneSource) ReadRune() (rune, int, error) {
	if r.pos >= len(r.s) {
		return 0, 0, io.EOF
	}
	ch, size := utf8.DecodeRuneInString(r.s[r.pos:])
	r.pos += size
	return ch, size, nil
}
