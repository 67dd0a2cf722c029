package scanner

import (
	"strings"

	"github.com/nekohtml/gohtml/charref"
	"github.com/nekohtml/gohtml/event"
	"github.com/nekohtml/gohtml/report"
)

// scanContentStep advances ModeNormal scanning by one step: either a
// run of text (with character-reference decoding), or one full markup
// construct introduced by '<'.
func (s *Scanner) scanContentStep() error {
	ch, ok := s.peek(0)
	if !ok {
		// An exhausted nested frame is dropped so scanning resumes in
		// the frame that pushed it.
		if s.entities.Depth() > 1 {
			s.popFrame()
		}
		return nil
	}
	if ch == '<' {
		s.flushCharacters()
		return s.scanMarkup()
	}
	return s.scanTextRun()
}

// scanTextRun consumes characters up to the next '<' or EOF, decoding
// character references as it goes (spec.md §4.3), and appends them to
// the pending text buffer. It returns after one character or one
// resolved reference so a caller driving Scan one step at a time makes
// steady, bounded progress.
func (s *Scanner) scanTextRun() error {
	s.beginText()
	ch, _ := s.next()
	if ch == '&' {
		return s.scanCharRefInto(&s.textBuf, false, nil)
	}
	s.textBuf.WriteRune(ch)
	return nil
}

// scanCharRefInto resolves a character/entity reference just after the
// consumed '&' and appends its replacement text to dst. inAttribute
// applies the WHATWG legacy-in-attribute fallback rule (spec.md §4.3
// Testable Property 4). When rawDst is non-nil, the literal source
// text actually consumed for the reference (e.g. "&amp;", "&amp",
// "&#65;") is additionally appended there, verbatim and undecoded —
// spec.md §3's AttributeList wants the non-normalized attribute value
// to preserve exactly what the author wrote.
func (s *Scanner) scanCharRefInto(dst *strings.Builder, inAttribute bool, rawDst *strings.Builder) error {
	first, ok := s.peek(0)
	if !ok {
		dst.WriteByte('&')
		if rawDst != nil {
			rawDst.WriteByte('&')
		}
		return nil
	}

	if first == '#' {
		return s.scanNumericRefInto(dst, rawDst)
	}

	// Characters are consumed from the source as they are fed to the
	// Recognizer; any that turn out to lie past the matched prefix are
	// pushed back below via GetRewindCount (spec.md §4.3).
	s.recog.Reset()
	for {
		if s.recog.EndsWithSemicolon() {
			break
		}
		ch, ok := s.peek(0)
		if !ok {
			break
		}
		s.next()
		if !s.recog.Parse(ch) {
			break
		}
	}

	repl, matched := s.recog.GetMatch()

	rewind := s.recog.GetRewindCount()
	fed := s.recog.Fed()
	literal := "&" + string(fed[:len(fed)-rewind])
	if rawDst != nil {
		rawDst.WriteString(literal)
	}

	if !matched {
		name := string(fed)
		s.rewindConsumed(rewind)
		dst.WriteByte('&')
		if s.opts.ReportErrors {
			s.rep.ReportWarning(report.CodeUnknownNamedReference, name)
		}
		return nil
	}

	s.rewindConsumed(rewind)

	if !s.recog.EndsWithSemicolon() {
		if inAttribute {
			next, hasNext := s.peek(0)
			if charref.LegacyBlockedInAttribute(next, hasNext) {
				dst.WriteString(literal)
				return nil
			}
		}
	}

	if s.opts.NotifyHTMLBuiltinRefs {
		name := matchedRaw(s.recog)
		s.sink.StartGeneralEntity(name, s.augs(s.point()))
		dst.WriteString(repl)
		s.sink.EndGeneralEntity(name, s.augs(s.point()))
		return nil
	}
	dst.WriteString(repl)
	return nil
}

// rewindConsumed pushes back the trailing characters of a failed or
// over-long reference match onto the current frame so the next
// scanTextRun call picks them back up as ordinary text.
func (s *Scanner) rewindConsumed(rewind int) {
	if rewind <= 0 {
		return
	}
	if ent := s.entities.Top(); ent != nil {
		ent.Rewind(rewind)
	}
}

// matchedRaw reconstructs the input text of the reference the
// Recognizer just matched (excluding the leading '&').
func matchedRaw(r *charref.Recognizer) string {
	n := r.GetMatchLength() - 1 // matched chars, excluding '&'
	raw := r.Fed()
	if n < 0 || n > len(raw) {
		n = len(raw)
	}
	return string(raw[:n])
}

func (s *Scanner) scanNumericRefInto(dst *strings.Builder, rawDst *strings.Builder) error {
	s.next() // consume '#'
	s.recog.Reset()

	hexMarker := ""
	if ch, ok := s.peek(0); ok && charref.IsNumericStart(ch) {
		hexMarker = string(ch)
		s.next()
		s.recog.SetHex()
	}

	for {
		ch, ok := s.peek(0)
		if !ok || !s.recog.ParseNumeric(ch) {
			break
		}
		s.next()
	}

	hasSemicolon := false
	if ch, ok := s.peek(0); ok && ch == ';' {
		s.next()
		hasSemicolon = true
	}

	digits := s.recog.NumericDigits()
	if rawDst != nil {
		rawDst.WriteString("&#")
		rawDst.WriteString(hexMarker)
		rawDst.WriteString(digits)
		if hasSemicolon {
			rawDst.WriteByte(';')
		}
	}

	cp, remapped, ok := charref.DecodeNumeric(digits, s.recog.IsHex(), s.opts.FixMSWindowsRefs)
	if !ok {
		dst.WriteRune('�')
		if s.opts.ReportErrors {
			s.rep.ReportWarning(report.CodeInvalidCodePoint, 0)
		}
		return nil
	}
	if remapped && s.opts.ReportErrors {
		s.rep.ReportWarning(report.CodeInvalidCodePoint, cp)
	}
	dst.WriteRune(cp)
	return nil
}

// scanMarkup dispatches on the construct introduced by '<': a start
// or end tag, a comment, a DOCTYPE, a processing instruction, or a
// CDATA section.
func (s *Scanner) scanMarkup() error {
	begLn, begCol, begOff := s.pos()
	s.next() // consume '<'

	ch, ok := s.peek(0)
	if !ok {
		s.textBuf.WriteByte('<')
		return nil
	}

	switch {
	case ch == '!':
		return s.scanDeclaration(begLn, begCol, begOff)
	case ch == '?':
		return s.scanProcessingInstruction(begLn, begCol, begOff)
	case ch == '/':
		return s.scanEndTag(begLn, begCol, begOff)
	case isNameStart(ch):
		return s.scanStartTag(begLn, begCol, begOff)
	default:
		// Not markup after all; treat '<' as a literal character
		// (spec.md §4.5: an unrecognized '<' is reinterpreted as text).
		s.textBuf.WriteByte('<')
		return nil
	}
}

func (s *Scanner) pos() (line, col, off int) {
	ent := s.entities.Top()
	if ent == nil {
		return 1, 1, 0
	}
	return ent.Line, ent.Column, ent.CharacterOffset
}

func isNameStart(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isNameChar(ch rune) bool {
	return isNameStart(ch) || (ch >= '0' && ch <= '9') || ch == '-' || ch == '_' || ch == ':' || ch == '.'
}

func (s *Scanner) scanName() string {
	var b strings.Builder
	for {
		ch, ok := s.peek(0)
		if !ok || !isNameChar(ch) {
			break
		}
		s.next()
		b.WriteRune(ch)
	}
	return b.String()
}

func (s *Scanner) skipWhitespace() {
	for {
		ch, ok := s.peek(0)
		if !ok || !isWhitespace(ch) {
			return
		}
		s.next()
	}
}

func isWhitespace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	default:
		return false
	}
}

func (s *Scanner) foldElement(name string) string {
	return fold(name, s.opts.ElementCase)
}

func fold(name string, c CaseFold) string {
	switch c {
	case CaseUpper:
		return strings.ToUpper(name)
	case CaseLower:
		return strings.ToLower(name)
	default:
		return name
	}
}

func (s *Scanner) scanStartTag(begLn, begCol, begOff int) error {
	raw := s.scanName()
	lower := strings.ToLower(raw)
	name := event.QualifiedName{Raw: s.foldElement(raw)}

	attrs, selfCloseReq, err := s.scanAttributes()
	if err != nil {
		return err
	}

	loc := s.span(begLn, begCol, begOff)
	augs := s.augs(loc)

	if selfCloseReq && s.selfCloseAllowed(lower) {
		s.sink.EmptyElement(name, attrs, augs)
		if lower == "meta" {
			s.maybeSwitchEncodingFromMeta(attrs)
		}
		return nil
	}

	s.sink.StartElement(name, attrs, augs)
	s.pushElement(lower)

	if lower == "meta" {
		s.maybeSwitchEncodingFromMeta(attrs)
	}

	mode := modeFor(lower, s.opts.ParseNoscriptContent)
	if mode != ModeNormal {
		s.mode = mode
		s.openElement = lower
		s.scriptEscaped = false
	}
	return nil
}

// selfCloseAllowed reports whether a "/>"-terminated start tag for
// lower is honored as an EmptyElement rather than a regular start tag
// that enters the element's normal content mode (spec.md §6
// allow-selfclosing-iframe, allow-selfclosing-tags). Void elements
// always self-close: they have no content mode to enter either way.
func (s *Scanner) selfCloseAllowed(lower string) bool {
	if voidElements[lower] {
		return true
	}
	if lower == "iframe" {
		return s.opts.AllowSelfClosingIframe
	}
	return s.opts.AllowSelfClosingTags
}

func (s *Scanner) scanEndTag(begLn, begCol, begOff int) error {
	s.next() // consume '/'
	raw := s.scanName()
	lower := strings.ToLower(raw)
	s.skipWhitespace()
	if ch, ok := s.peek(0); ok && ch == '>' {
		s.next()
	}
	name := event.QualifiedName{Raw: s.foldElement(raw)}
	loc := s.span(begLn, begCol, begOff)
	s.sink.EndElement(name, s.augs(loc))
	s.popElement(lower)
	return nil
}

func (s *Scanner) scanProcessingInstruction(begLn, begCol, begOff int) error {
	s.next() // consume '?'
	target := s.scanName()
	s.skipWhitespace()
	var data strings.Builder
	for {
		ch, ok := s.peek(0)
		if !ok {
			s.reportUnexpectedEOF("processing instruction")
			break
		}
		if ch == '?' {
			if nxt, ok := s.peek(1); ok && nxt == '>' {
				s.next()
				s.next()
				break
			}
		}
		s.next()
		data.WriteRune(ch)
	}
	loc := s.span(begLn, begCol, begOff)
	s.sink.ProcessingInstruction(target, data.String(), s.augs(loc))
	return nil
}

func (s *Scanner) reportUnexpectedEOF(what string) {
	if s.opts.ReportErrors {
		s.rep.ReportWarning(report.CodeUnexpectedEndOfStream, what)
	}
}
