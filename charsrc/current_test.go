package charsrc

import (
	"io"
	"testing"

	assert "github.com/stretchr/testify/require"
)

type stringSource struct {
	runes []rune
	pos   int
}

func newStringSource(s string) *stringSource { return &stringSource{runes: []rune(s)} }

func (s *stringSource) ReadRune() (rune, int, error) {
	if s.pos >= len(s.runes) {
		return 0, 0, io.EOF
	}
	r := s.runes[s.pos]
	s.pos++
	return r, 1, nil
}

func TestEntityNextRuneTracksLineColumn(t *testing.T) {
	e := NewEntity(newStringSource("ab\ncd"), "utf-8")

	for _, want := range []struct {
		r         rune
		line, col int
	}{
		{'a', 1, 2}, {'b', 1, 3}, {'\n', 2, 1}, {'c', 2, 2}, {'d', 2, 3},
	} {
		r, ok := e.NextRune()
		assert.True(t, ok)
		assert.Equal(t, want.r, r)
		assert.Equal(t, want.line, e.Line)
		assert.Equal(t, want.col, e.Column)
	}

	_, ok := e.NextRune()
	assert.False(t, ok)
	assert.True(t, e.AtEOF())
}

func TestEntityCollapsesCRLF(t *testing.T) {
	e := NewEntity(newStringSource("a\r\nb\rc"), "utf-8")

	var got []rune
	for {
		r, ok := e.NextRune()
		if !ok {
			break
		}
		got = append(got, r)
	}
	assert.Equal(t, []rune{'a', '\n', 'b', '\n', 'c'}, got)
	assert.Equal(t, 5, e.CharacterOffset)
}

func TestEntityRewindAndSeek(t *testing.T) {
	e := NewEntity(newStringSource("hello"), "utf-8")

	mark := e.Mark()
	r1, _ := e.NextRune()
	r2, _ := e.NextRune()
	assert.Equal(t, 'h', r1)
	assert.Equal(t, 'e', r2)

	e.Rewind(2)
	r1b, _ := e.NextRune()
	assert.Equal(t, 'h', r1b)

	e.Seek(mark)
	r1c, _ := e.NextRune()
	assert.Equal(t, 'h', r1c)
}

func TestEntityPeekDoesNotConsume(t *testing.T) {
	e := NewEntity(newStringSource("xyz"), "utf-8")

	r, ok := e.Peek(1)
	assert.True(t, ok)
	assert.Equal(t, 'y', r)

	first, _ := e.NextRune()
	assert.Equal(t, 'x', first)
}

func TestEntityCompactPreservesTail(t *testing.T) {
	e := NewEntity(newStringSource("abcdef"), "utf-8")
	for i := 0; i < 4; i++ {
		e.NextRune()
	}
	// offset == 4 ("abcd" consumed); keep last 2 ("cd") at the front.
	e.Compact(2)
	assert.Equal(t, 2, e.offset)

	r, _ := e.NextRune()
	assert.Equal(t, 'e', r)
}

func TestEntityGrowsBufferBeyondDefaultCapacity(t *testing.T) {
	huge := make([]rune, DefaultCapacity*3)
	for i := range huge {
		huge[i] = 'x'
	}
	e := NewEntity(newStringSource(string(huge)), "utf-8")

	n, err := e.Fill(DefaultCapacity * 2)
	assert.NoError(t, err)
	assert.Equal(t, DefaultCapacity*2, n)
	assert.True(t, len(e.buf) >= DefaultCapacity*2)
}

func TestEntityStackPushPopClear(t *testing.T) {
	var s Stack
	assert.Nil(t, s.Top())

	outer := NewEntity(newStringSource("outer"), "utf-8")
	inner := NewEntity(newStringSource("inner"), "utf-8")

	s.Push(outer)
	assert.Equal(t, outer, s.Top())

	s.Push(inner)
	assert.Equal(t, inner, s.Top())
	assert.Equal(t, 2, s.Depth())

	popped := s.Pop()
	assert.Equal(t, inner, popped)
	assert.Equal(t, outer, s.Top())

	s.Clear()
	assert.Equal(t, 0, s.Depth())
}
