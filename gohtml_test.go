package gohtml

import (
	"fmt"
	"testing"

	require "github.com/stretchr/testify/require"

	"github.com/nekohtml/gohtml/event"
)

type collectingSink struct {
	event.BaseSink
	events []string
}

func (c *collectingSink) StartDocument(enc string, _ *event.Augmentations) {
	c.events = append(c.events, "start-document")
}
func (c *collectingSink) StartElement(name event.QualifiedName, attrs event.Attributes, _ *event.Augmentations) {
	c.events = append(c.events, fmt.Sprintf("start(%s)", name.Raw))
}
func (c *collectingSink) Characters(text string, _ *event.Augmentations) {
	c.events = append(c.events, fmt.Sprintf("text(%q)", text))
}
func (c *collectingSink) EndElement(name event.QualifiedName, _ *event.Augmentations) {
	c.events = append(c.events, fmt.Sprintf("end(%s)", name.Raw))
}
func (c *collectingSink) EndDocument(_ *event.Augmentations) {
	c.events = append(c.events, "end-document")
}

func drain(t *testing.T, tok *Tokenizer) {
	t.Helper()
	for i := 0; i < 100000; i++ {
		done, err := tok.Scan(true)
		require.NoError(t, err)
		if done {
			return
		}
	}
	t.Fatal("tokenizer did not terminate")
}

func TestTokenizerEndToEndSmallDocument(t *testing.T) {
	sink := &collectingSink{}
	tok := NewTokenizer(sink, nil, nil)

	err := tok.PushInputSource(NewStringSource(`<html><body><p>hi &amp; bye</p></body></html>`))
	require.NoError(t, err)

	drain(t, tok)
	tok.Cleanup(false)

	require.Equal(t, "start-document", sink.events[0])
	require.Equal(t, "end-document", sink.events[len(sink.events)-1])
	require.Contains(t, sink.events, "start(html)")
	require.Contains(t, sink.events, `text("hi & bye")`)
	require.Contains(t, sink.events, "end(p)")
}

func TestTokenizerHonoursOptions(t *testing.T) {
	sink := &collectingSink{}
	opts := NewOptions(WithElementCase(CaseLower))
	tok := NewTokenizer(sink, nil, opts)

	err := tok.PushInputSource(NewStringSource(`<DIV>x</DIV>`))
	require.NoError(t, err)
	drain(t, tok)

	require.Contains(t, sink.events, "start(div)")
	require.Contains(t, sink.events, "end(div)")
}
