package scanner

import (
	"strings"

	"github.com/nekohtml/gohtml/event"
)

// scanSpecialStep advances RCDATA/RAWTEXT/script-data scanning by one
// step: it looks for the current open element's end tag (the only
// markup these modes recognize) and otherwise consumes one character
// of raw content, decoding references only in RCDATA mode (spec.md
// §4.5, §9 Concrete scenario 3: <script> raw text).
func (s *Scanner) scanSpecialStep() error {
	if s.mode == ModeScriptData {
		if s.scriptEscaped {
			if s.lookingAt("-->") {
				s.textBuf.WriteString("-->")
				s.scriptEscaped = false
				return nil
			}
		} else if s.lookingAt("<!--") {
			s.beginText()
			s.textBuf.WriteString("<!--")
			s.scriptEscaped = true
			return nil
		}
	}

	if !s.scriptEscaped && s.atEndTag(s.openElement) {
		return s.closeSpecialElement()
	}

	s.beginText()
	ch, ok := s.next()
	if !ok {
		s.reportUnexpectedEOF(s.openElement + " content")
		return nil
	}

	if s.mode == ModeRCData && ch == '&' {
		return s.scanCharRefInto(&s.textBuf, false, nil)
	}

	s.textBuf.WriteRune(ch)
	return nil
}

// atEndTag reports whether "</name" (case-insensitive, followed by
// whitespace, '>' or '/') begins at the current read position.
func (s *Scanner) atEndTag(name string) bool {
	if ch, ok := s.peek(0); !ok || ch != '<' {
		return false
	}
	if ch, ok := s.peek(1); !ok || ch != '/' {
		return false
	}
	for i, want := range name {
		ch, ok := s.peek(2 + i)
		if !ok || asciiUpper(ch) != asciiUpper(want) {
			return false
		}
	}
	ch, ok := s.peek(2 + len(name))
	if !ok {
		return false
	}
	return isWhitespace(ch) || ch == '>' || ch == '/'
}

func (s *Scanner) closeSpecialElement() error {
	s.flushCharacters()

	begLn, begCol, begOff := s.pos()
	s.next() // '<'
	s.next() // '/'
	raw := s.scanName()
	s.skipWhitespace()
	if ch, ok := s.peek(0); ok && ch == '>' {
		s.next()
	}

	_ = raw
	name := s.foldElement(strings.ToLower(s.openElement))
	loc := s.span(begLn, begCol, begOff)
	s.sink.EndElement(event.QualifiedName{Raw: name}, s.augs(loc))
	s.popElement(s.openElement)

	s.mode = ModeNormal
	s.openElement = ""
	s.scriptEscaped = false
	return nil
}
