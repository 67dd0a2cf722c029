// Package charsrc implements the character-entity layer of spec.md
// §3/§4.2: a growable lookahead buffer of decoded characters, with
// line/column/offset bookkeeping, stacked over nested input sources
// (spec.md §4.6). "Entity" here is the source-side sense defined in
// the GLOSSARY — an input frame — not an HTML character reference;
// that sense lives in package charref.
package charsrc

import (
	"io"

	"github.com/pkg/errors"
)

// DefaultCapacity is the character buffer's starting size (spec.md §4.2).
const DefaultCapacity = 2048

// growthFactor is how much the buffer grows by when it needs more room.
const growthFactor = 1.25

// RuneSource supplies decoded characters one at a time. charsrc.Decoder
// implements it over an encoding-aware transcoder; tests and
// push_input_source callers may supply any other implementation (e.g.
// a source wrapping an already-decoded string).
type RuneSource interface {
	ReadRune() (r rune, size int, err error)
}

// Position is a saved (offset, characterOffset, line, column) tuple, a
// snapshot callers must capture before any Rewind that might cross a
// newline (spec.md §4.2 rewind invariant).
type Position struct {
	Offset         int
	CharacterOffset int
	Line           int
	Column         int
}

// Entity is a single decoding frame: spec.md §3 "CurrentEntity".
type Entity struct {
	buf    []rune
	offset int // read cursor; 0 <= offset <= length
	length int // valid characters in buf

	eof bool
	src RuneSource

	Encoding string

	PublicID       string
	BaseSystemID   string
	LiteralSystemID string
	ExpandedSystemID string

	Line            int
	Column          int
	CharacterOffset int
}

// NewEntity creates a fresh decoding frame reading from src.
func NewEntity(src RuneSource, encoding string) *Entity {
	return &Entity{
		buf:      make([]rune, DefaultCapacity),
		src:      src,
		Encoding: encoding,
		Line:     1,
		Column:   1,
	}
}

// Len reports how many characters remain unread in the buffer.
func (e *Entity) Len() int { return e.length - e.offset }

// AtEOF reports whether the underlying source is exhausted and every
// buffered character has been consumed.
func (e *Entity) AtEOF() bool { return e.eof && e.Len() == 0 }

// grow enlarges buf so it can hold at least extra more characters
// past the current length, growing by growthFactor each step the way
// spec.md §4.2 specifies ("grows by 25% when full").
func (e *Entity) grow(extra int) {
	need := e.length + extra
	if need <= len(e.buf) {
		return
	}
	newCap := len(e.buf)
	if newCap == 0 {
		newCap = DefaultCapacity
	}
	for newCap < need {
		newCap = int(float64(newCap)*growthFactor) + 1
	}
	grown := make([]rune, newCap)
	copy(grown, e.buf[:e.length])
	e.buf = grown
}

// Compact moves the last keepTail characters before offset down to
// the start of the buffer and rebases offset/length accordingly. This
// is spec.md §4.2's "load(remain): preserves remain tail chars at
// buffer start", used when a name scan spans a buffer boundary.
func (e *Entity) Compact(keepTail int) {
	if keepTail < 0 || keepTail > e.offset {
		keepTail = e.offset
	}
	start := e.offset - keepTail
	n := copy(e.buf, e.buf[start:e.length])
	e.length = n
	e.offset = keepTail
}

// Fill ensures at least min characters are available past the current
// offset, reading from src and growing the buffer as needed without
// discarding any already-read position — spec.md §4.2's "load(length):
// used by the entity recognizer to extend the buffer without
// invalidating already-read positions (so a failed entity match can be
// fully rewound)". It returns the number of characters newly appended,
// or -1 if the source is permanently exhausted and none were added.
func (e *Entity) Fill(min int) (int, error) {
	if e.Len() >= min {
		return 0, nil
	}
	if e.eof {
		if e.Len() == 0 {
			return -1, nil
		}
		return 0, nil
	}

	need := min - e.Len()
	e.grow(need)

	appended := 0
	for e.Len() < min {
		r, _, err := e.src.ReadRune()
		if err != nil {
			e.eof = true
			if err == io.EOF {
				break
			}
			return appended, errors.Wrap(err, "charsrc: fill")
		}
		e.buf[e.length] = r
		e.length++
		appended++
	}
	if appended == 0 && e.Len() == 0 {
		return -1, nil
	}
	return appended, nil
}

// Peek returns the character at lookahead n (0 == the next character
// to be read by NextRune) without consuming it, filling the buffer as
// necessary. ok is false at end of stream.
func (e *Entity) Peek(n int) (r rune, ok bool) {
	if _, err := e.Fill(n + 1); err != nil {
		return 0, false
	}
	if e.Len() <= n {
		return 0, false
	}
	return e.buf[e.offset+n], true
}

// NextRune consumes and returns the next character, updating
// line/column/characterOffset bookkeeping. A \r\n pair is collapsed
// into a single newline and a single character-offset increment
// (spec.md §4.2).
func (e *Entity) NextRune() (rune, bool) {
	if _, err := e.Fill(1); err != nil {
		return 0, false
	}
	if e.Len() == 0 {
		return 0, false
	}

	r := e.buf[e.offset]
	e.offset++

	if r == '\r' {
		if nxt, ok := e.Peek(0); ok && nxt == '\n' {
			e.offset++
		}
		r = '\n'
	}

	e.CharacterOffset++
	if r == '\n' {
		e.Line++
		e.Column = 1
	} else {
		e.Column++
	}
	return r, true
}

// Mark snapshots the current position so a caller can Rewind across a
// newline safely (spec.md §4.2).
func (e *Entity) Mark() Position {
	return Position{Offset: e.offset, CharacterOffset: e.CharacterOffset, Line: e.Line, Column: e.Column}
}

// Seek restores a previously captured Position.
func (e *Entity) Seek(p Position) {
	e.offset = p.Offset
	e.CharacterOffset = p.CharacterOffset
	e.Line = p.Line
	e.Column = p.Column
}

// Rewind decrements offset, characterOffset and column by n. Callers
// must never rewind across a newline unless they also restore
// line/column via a saved Position (spec.md §4.2).
func (e *Entity) Rewind(n int) {
	if n > e.offset {
		n = e.offset
	}
	e.offset -= n
	e.CharacterOffset -= n
	e.Column -= n
}
