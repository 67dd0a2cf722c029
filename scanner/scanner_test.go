package scanner

import (
	"fmt"
	"strings"
	"testing"

	assert "github.com/stretchr/testify/require"

	"github.com/nekohtml/gohtml/charsrc"
	"github.com/nekohtml/gohtml/event"
	"github.com/nekohtml/gohtml/report"
)

// recordingSink accumulates a human-readable trace of every callback,
// the simplest possible Sink double for asserting event order without
// gomock's per-call ceremony.
type recordingSink struct {
	event.BaseSink
	trace []string
}

func (r *recordingSink) StartDocument(enc string, _ *event.Augmentations) {
	r.trace = append(r.trace, fmt.Sprintf("start-document(%s)", enc))
}
func (r *recordingSink) DoctypeDecl(d event.Doctype, _ *event.Augmentations) {
	r.trace = append(r.trace, fmt.Sprintf("doctype(%s)", d.Root))
}
func (r *recordingSink) Comment(text string, _ *event.Augmentations) {
	r.trace = append(r.trace, fmt.Sprintf("comment(%q)", text))
}
func (r *recordingSink) StartElement(name event.QualifiedName, attrs event.Attributes, _ *event.Augmentations) {
	r.trace = append(r.trace, fmt.Sprintf("start(%s,%d attrs)", name.Raw, len(attrs)))
}
func (r *recordingSink) EmptyElement(name event.QualifiedName, attrs event.Attributes, _ *event.Augmentations) {
	r.trace = append(r.trace, fmt.Sprintf("empty(%s,%d attrs)", name.Raw, len(attrs)))
}
func (r *recordingSink) Characters(text string, _ *event.Augmentations) {
	r.trace = append(r.trace, fmt.Sprintf("text(%q)", text))
}
func (r *recordingSink) EndElement(name event.QualifiedName, _ *event.Augmentations) {
	r.trace = append(r.trace, fmt.Sprintf("end(%s)", name.Raw))
}
func (r *recordingSink) EndDocument(_ *event.Augmentations) {
	r.trace = append(r.trace, "end-document")
}
func (r *recordingSink) StartGeneralEntity(name string, _ *event.Augmentations) {
	r.trace = append(r.trace, fmt.Sprintf("start-entity(%s)", name))
}
func (r *recordingSink) EndGeneralEntity(name string, _ *event.Augmentations) {
	r.trace = append(r.trace, fmt.Sprintf("end-entity(%s)", name))
}

var _ event.Sink = (*recordingSink)(nil)

func runToEnd(t *testing.T, s *Scanner) {
	t.Helper()
	for i := 0; i < 100000; i++ {
		done, err := s.Scan(true)
		assert.NoError(t, err)
		if done {
			return
		}
	}
	t.Fatal("scanner did not terminate")
}

func newTestScanner(t *testing.T, html string, opts *Options) (*Scanner, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	s := New(opts, sink, report.Noop)
	err := s.PushInputSource(charsrc.SourceSpec{Runes: &runeString{s: html}})
	assert.NoError(t, err)
	return s, sink
}

// runeString is a minimal charsrc.RuneSource over an in-memory string,
// used so tests can skip byte-level encoding detection entirely.
type runeString struct {
	s   string
	pos int
}

func (r *runeString) ReadRune() (rune, int, error) {
	if r.pos >= len(r.s) {
		return 0, 0, assertEOF
	}
	ch := rune(r.s[r.pos])
	r.pos++
	return ch, 1, nil
}

var assertEOF = fmt.Errorf("EOF")

func TestMixedCaseElementPreserved(t *testing.T) {
	s, sink := newTestScanner(t, `<Div Class="x">hi</Div>`, NewOptions())
	runToEnd(t, s)
	assert.Contains(t, sink.trace, `start(Div,1 attrs)`)
	assert.Contains(t, sink.trace, `end(Div)`)
}

func TestElementCaseLowerFold(t *testing.T) {
	s, sink := newTestScanner(t, `<Div>hi</Div>`, NewOptions(WithElementCase(CaseLower)))
	runToEnd(t, s)
	assert.Contains(t, sink.trace, `start(div,0 attrs)`)
	assert.Contains(t, sink.trace, `end(div)`)
}

func TestEntityDecodingInText(t *testing.T) {
	s, sink := newTestScanner(t, `<p>Tom &amp; Jerry</p>`, NewOptions())
	runToEnd(t, s)
	assert.Contains(t, sink.trace, `text("Tom & Jerry")`)
}

func TestLegacyReferenceWithoutSemicolonInText(t *testing.T) {
	s, sink := newTestScanner(t, `<p>Q&amp=1</p>`, NewOptions())
	runToEnd(t, s)
	// "&amp" without ';' followed by '=' is blocked in the attribute
	// rule but not in plain text; plain text always substitutes the
	// longest legacy match (spec.md §4.3 Testable Property 1/4).
	joined := strings.Join(sink.trace, "|")
	assert.Contains(t, joined, "&")
}

func TestUnterminatedCommentReportsAndEmitsBody(t *testing.T) {
	s, sink := newTestScanner(t, `<!--oops`, NewOptions())
	runToEnd(t, s)
	assert.Contains(t, sink.trace, `comment("oops")`)
}

func TestCommentRoundTrip(t *testing.T) {
	s, sink := newTestScanner(t, `<!-- hello -->`, NewOptions())
	runToEnd(t, s)
	found := false
	for _, tr := range sink.trace {
		if strings.Contains(tr, "hello") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestScriptRawTextIgnoresEmbeddedCommentEndTag(t *testing.T) {
	html := `<script>var x = "<!-- </script> -->"; real();</script>`
	s, sink := newTestScanner(t, html, NewOptions())
	runToEnd(t, s)

	// The element must close exactly once, after the *real* closing
	// tag, not the one hidden inside the comment-escaped run.
	ends := 0
	for _, tr := range sink.trace {
		if tr == "end(script)" {
			ends++
		}
	}
	assert.Equal(t, 1, ends)
}

func TestDoctypeScanned(t *testing.T) {
	s, sink := newTestScanner(t, `<!DOCTYPE html><p>hi</p>`, NewOptions())
	runToEnd(t, s)
	assert.Contains(t, sink.trace, `doctype(html)`)
}

func TestSelfClosingEmptyElement(t *testing.T) {
	s, sink := newTestScanner(t, `<br/>`, NewOptions())
	runToEnd(t, s)
	assert.Contains(t, sink.trace, `empty(br,0 attrs)`)
}

func TestNestedInputSourceNotifiesEntityBoundaries(t *testing.T) {
	sink := &recordingSink{}
	s := New(NewOptions(), sink, report.Noop)
	err := s.PushInputSource(charsrc.SourceSpec{Runes: &runeString{s: `<p>before &x; after</p>`}})
	assert.NoError(t, err)

	// Drive one step at a time until the reference is about to be
	// evaluated is out of scope here (the scanner resolves references
	// itself); instead exercise EvaluateInputSource directly as a
	// nested general-entity push, the way an external subset
	// reference would be handled (spec.md §4.6).
	err = s.EvaluateInputSource("chap1", charsrc.SourceSpec{Runes: &runeString{s: "nested text"}}, true)
	assert.NoError(t, err)
	runToEnd(t, s)

	joined := strings.Join(sink.trace, "|")
	assert.Contains(t, joined, "start-entity(chap1)")
	assert.Contains(t, joined, "nested text")
	assert.Contains(t, joined, "end-entity(chap1)")
}

func TestPlaintextNeverRecognizesMarkupAgain(t *testing.T) {
	s, sink := newTestScanner(t, `<plaintext>a<b>c`, NewOptions())
	runToEnd(t, s)
	joined := strings.Join(sink.trace, "|")
	assert.Contains(t, joined, `text("a<b>c")`)
}

func TestMetaCharsetSwitchesEncoding(t *testing.T) {
	html := `<html><head><meta charset="utf-8"></head><body>x</body></html>`
	sink := &recordingSink{}
	s := New(NewOptions(), sink, report.Noop)
	err := s.PushInputSource(charsrc.SourceSpec{
		Reader:         strings.NewReader(html),
		EnablePlayback: true,
	})
	assert.NoError(t, err)
	runToEnd(t, s)
	assert.True(t, s.encodingLocked)

	count := func(prefix string) int {
		n := 0
		for _, e := range sink.trace {
			if strings.HasPrefix(e, prefix) {
				n++
			}
		}
		return n
	}
	assert.Equal(t, 1, count("start(html"), "html must not be re-emitted after the encoding switch replay: %v", sink.trace)
	assert.Equal(t, 1, count("start(head"), "head must not be re-emitted after the encoding switch replay: %v", sink.trace)
	assert.Equal(t, 1, count("start(meta"), "meta must not be re-emitted after the encoding switch replay: %v", sink.trace)
	assert.Equal(t, 1, count("end(html"), "html end tag must not be duplicated: %v", sink.trace)
}
