// Package scanner implements the core of spec.md §3/§4: the mode
// dispatcher tying the byte source (package playback), the character
// buffer (package charsrc), the character-reference recognizer
// (package charref) and the event sink (package event) together into
// a single pull-based Scan(complete bool) loop, the way the teacher's
// client/message.go handleIncomingMessages loop pulls one xml.Token at
// a time and dispatches on its concrete type.
package scanner

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/nekohtml/gohtml/charref"
	"github.com/nekohtml/gohtml/charsrc"
	"github.com/nekohtml/gohtml/event"
	"github.com/nekohtml/gohtml/playback"
	"github.com/nekohtml/gohtml/report"
)

// frame is per-entity-frame bookkeeping the scanner keeps alongside
// charsrc.Stack, which itself only knows about character buffering.
type frame struct {
	name   string
	notify bool
}

// Scanner is a single document's worth of tokenizing state: spec.md
// §3 "Scanner"/"Dispatcher". It is not safe for concurrent use — like
// the teacher's rfc6242.Decoder, a single logical caller drives it
// (spec.md §5 "single-threaded cooperative model").
type Scanner struct {
	opts *Options
	sink event.Sink
	gate *suppressGate
	rep  report.Reporter

	entities charsrc.Stack
	frames   []frame

	mode          ContentMode
	openElement   string // lower-cased name of the open special element, for end-tag matching
	scriptEscaped bool   // inside a <!--...--> run within <script> raw text

	// elementStack is a lightweight open-element ancestry, lower-cased
	// names only, maintained purely to support the body-triggered
	// playback release — it is NOT tree construction and never
	// balances mismatched tags.
	elementStack       []string
	bodyBufferReleased bool

	recog *charref.Recognizer

	textBuf      strings.Builder
	textBeginSet bool
	textBeginLn  int
	textBeginCol int
	textBeginOff int

	playbackBuf    *playback.Buffer
	encodingLocked bool

	parseID string
	started bool
	ended   bool
}

// New builds a Scanner. Call PushInputSource at least once before the
// first Scan call.
func New(opts *Options, sink event.Sink, rep report.Reporter) *Scanner {
	if opts == nil {
		opts = NewOptions()
	}
	if rep == nil {
		rep = report.Noop
	}
	gate := &suppressGate{ForwardingSink: event.ForwardingSink{Next: sink}}
	return &Scanner{
		opts:    opts,
		sink:    gate,
		gate:    gate,
		rep:     rep,
		recog:   charref.NewRecognizer(),
		parseID: uuid.NewString(),
	}
}

// pushElement records name as newly opened, for depth/ancestry
// purposes only (see elementStack's doc comment). Void elements never
// push: they have no matching end tag to pop them back off.
// Releasing the playback buffer the first time body is seen bounds
// memory per spec.md §5.
func (s *Scanner) pushElement(name string) {
	if voidElements[name] {
		return
	}
	s.elementStack = append(s.elementStack, name)
	if name == "body" {
		s.releasePlaybackBuffer()
	}
}

// popElement pops the top of elementStack if it matches name
// (case-insensitively normalized to lower already by the caller);
// a mismatch is left alone rather than corrupting the stack, since
// this scanner does not attempt mismatched-tag recovery.
func (s *Scanner) popElement(name string) {
	n := len(s.elementStack)
	if n == 0 || s.elementStack[n-1] != name {
		return
	}
	s.elementStack = s.elementStack[:n-1]
}

// releasePlaybackBuffer stops the playback buffer from retaining any
// more bytes, the first time it is called (spec.md §5 "released at
// the first <body>, bounding memory").
func (s *Scanner) releasePlaybackBuffer() {
	if s.bodyBufferReleased || s.playbackBuf == nil {
		return
	}
	s.playbackBuf.Clear()
	s.bodyBufferReleased = true
}

// PushInputSource opens spec and installs it as the new active frame
// (spec.md §4.6 push_input_source). The first call establishes the
// top-level document frame; later calls are re-entrant pushes (a
// nested general/external entity).
func (s *Scanner) PushInputSource(spec charsrc.SourceSpec) error {
	return s.pushNamed(spec, "", false)
}

// EvaluateInputSource pushes spec as a named general entity reference,
// bracketing the frame's lifetime with StartGeneralEntity/
// EndGeneralEntity sink calls when notify is true (spec.md §4.6,
// driven by the NotifyXMLBuiltinRefs/NotifyHTMLBuiltinRefs options at
// the call site).
func (s *Scanner) EvaluateInputSource(name string, spec charsrc.SourceSpec, notify bool) error {
	return s.pushNamed(spec, name, notify)
}

func (s *Scanner) pushNamed(spec charsrc.SourceSpec, name string, notify bool) error {
	if s.entities.Depth() == 0 {
		spec.EnablePlayback = true
	}
	ent, buf, err := spec.Open(s.opts.DefaultEncoding)
	if err != nil {
		return errors.Wrap(err, "scanner: push input source")
	}
	if s.entities.Depth() == 0 {
		s.playbackBuf = buf
	}
	s.entities.Push(ent)
	s.frames = append(s.frames, frame{name: name, notify: notify})
	if notify {
		s.sink.StartGeneralEntity(name, s.augs(s.point()))
	}
	return nil
}

func (s *Scanner) popFrame() {
	s.entities.Pop()
	n := len(s.frames) - 1
	if n < 0 {
		return
	}
	f := s.frames[n]
	s.frames = s.frames[:n]
	if f.notify {
		s.sink.EndGeneralEntity(f.name, s.augs(s.point()))
	}
}

// ParseID returns the correlation id stamped on every Augmentations
// this Scanner produces (spec.md §6 Augmentations.ParseID).
func (s *Scanner) ParseID() string { return s.parseID }

// Cleanup releases every held frame; closeAll additionally closes the
// top-level document's byte Reader when it implements io.Closer
// (spec.md §5 cancellation/cleanup(closeAll)). Readers of nested
// frames and RuneSource inputs are not closed.
func (s *Scanner) Cleanup(closeAll bool) {
	if closeAll && s.playbackBuf != nil {
		_ = s.playbackBuf.Close()
	}
	s.entities.Clear()
	s.frames = nil
}

// point returns a zero-width Location at the current read position,
// used for document-level events that have no span.
func (s *Scanner) point() event.Location {
	ent := s.entities.Top()
	if ent == nil {
		return event.Location{}
	}
	p := event.Location{BeginLine: ent.Line, BeginColumn: ent.Column, BeginOffset: ent.CharacterOffset}
	p.EndLine, p.EndColumn, p.EndOffset = p.BeginLine, p.BeginColumn, p.BeginOffset
	return p
}

// span closes out a Location begun at (line, col, off).
func (s *Scanner) span(line, col, off int) event.Location {
	ent := s.entities.Top()
	loc := event.Location{BeginLine: line, BeginColumn: col, BeginOffset: off}
	if ent != nil {
		loc.EndLine, loc.EndColumn, loc.EndOffset = ent.Line, ent.Column, ent.CharacterOffset
	}
	return loc
}

func (s *Scanner) augs(loc event.Location) *event.Augmentations {
	if !s.opts.Augmentations {
		return nil
	}
	return &event.Augmentations{Location: loc, ParseID: s.parseID}
}

// next consumes and returns the next character, transparently popping
// exhausted nested frames (spec.md §4.6: entity ends are invisible to
// the content/special scanners). It returns ok=false only once the
// outermost document frame is exhausted.
func (s *Scanner) next() (rune, bool) {
	for {
		ent := s.entities.Top()
		if ent == nil {
			return 0, false
		}
		if r, ok := ent.NextRune(); ok {
			return r, true
		}
		if s.entities.Depth() <= 1 {
			return 0, false
		}
		s.popFrame()
	}
}

// peek looks n characters ahead within the current top frame only: a
// lookahead request is not satisfied across a frame boundary, so a
// construct that needs multi-character lookahead is expected to have
// been fully supplied within one entity (the well-formedness
// expectation spec.md §9's Open Question on entity-frame boundaries
// leaves to the implementation; this is the decision recorded there).
func (s *Scanner) peek(n int) (rune, bool) {
	ent := s.entities.Top()
	if ent == nil {
		return 0, false
	}
	return ent.Peek(n)
}

func (s *Scanner) atDocumentEnd() bool {
	if s.entities.Depth() > 1 {
		return false
	}
	ent := s.entities.Top()
	return ent == nil || ent.AtEOF()
}

func (s *Scanner) beginText() {
	if s.textBeginSet {
		return
	}
	ent := s.entities.Top()
	if ent != nil {
		s.textBeginLn, s.textBeginCol, s.textBeginOff = ent.Line, ent.Column, ent.CharacterOffset
	}
	s.textBeginSet = true
}

// flushCharacters emits any pending text run as a single Characters
// event (spec.md §6: adjacent decoded text is coalesced).
func (s *Scanner) flushCharacters() {
	if s.textBuf.Len() == 0 {
		s.textBeginSet = false
		return
	}
	text := s.textBuf.String()
	s.textBuf.Reset()
	loc := s.span(s.textBeginLn, s.textBeginCol, s.textBeginOff)
	s.textBeginSet = false
	s.sink.Characters(text, s.augs(loc))
}

func (s *Scanner) emitStartDocument() {
	enc := ""
	if ent := s.entities.Top(); ent != nil {
		enc = ent.Encoding
	}
	s.sink.StartDocument(enc, s.augs(s.point()))
	if s.opts.InsertDoctype != nil {
		s.sink.DoctypeDecl(*s.opts.InsertDoctype, s.augs(s.point()))
	}
}

func (s *Scanner) emitEndDocument() {
	s.sink.EndDocument(s.augs(s.point()))
}

// Scan performs one pull of spec.md §5's `scan(complete bool)`
// contract: it produces at most one event-worth of progress (a run of
// characters, one tag, one comment, ...) and returns. complete==true
// tells the Scanner no further bytes will ever arrive on the
// top-level source, so end-of-stream should be treated as final
// rather than as "wait for more input". done reports whether
// EndDocument has now been emitted.
func (s *Scanner) Scan(complete bool) (done bool, err error) {
	if !s.started {
		s.emitStartDocument()
		s.started = true
	}
	if s.ended {
		return true, nil
	}

	if s.atDocumentEnd() {
		if !complete {
			return false, nil
		}
		s.flushCharacters()
		s.emitEndDocument()
		s.ended = true
		return true, nil
	}

	switch s.mode {
	case ModeNormal:
		err = s.scanContentStep()
	case ModeRCData, ModeRawText, ModeScriptData:
		err = s.scanSpecialStep()
	case ModePlaintext:
		err = s.scanPlaintextStep()
	}
	if err != nil {
		return s.ended, err
	}

	if complete && s.atDocumentEnd() {
		s.flushCharacters()
		s.emitEndDocument()
		s.ended = true
		return true, nil
	}
	return s.ended, nil
}
