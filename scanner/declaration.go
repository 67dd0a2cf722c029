package scanner

import (
	"strings"

	"github.com/nekohtml/gohtml/event"
	"github.com/nekohtml/gohtml/report"
)

// scanDeclaration handles everything introduced by "<!": comments,
// DOCTYPE declarations, and CDATA sections (spec.md §4.5).
func (s *Scanner) scanDeclaration(begLn, begCol, begOff int) error {
	s.next() // consume '!'

	if s.lookingAt("--") {
		return s.scanComment(begLn, begCol, begOff)
	}
	if s.lookingAtFold("DOCTYPE") {
		return s.scanDoctype(begLn, begCol, begOff)
	}
	if s.lookingAt("[CDATA[") {
		if s.opts.CDATASections {
			return s.scanCDATA(begLn, begCol, begOff)
		}
		return s.scanCDATAAsComment(begLn, begCol, begOff)
	}

	// Unrecognized "<!...": consume to the next '>' as a bogus
	// declaration rather than emitting it as markup, matching the
	// spec's general "never halts the scanner" stance (spec.md §7).
	for {
		ch, ok := s.next()
		if !ok {
			s.reportUnexpectedEOF("declaration")
			return nil
		}
		if ch == '>' {
			return nil
		}
	}
}

// lookingAt reports whether the literal s follows at the current read
// position and, if so, consumes it.
func (s *Scanner) lookingAt(lit string) bool {
	for i, want := range lit {
		ch, ok := s.peek(i)
		if !ok || ch != want {
			return false
		}
	}
	for range lit {
		s.next()
	}
	return true
}

// lookingAtFold is lookingAt with ASCII case-insensitive comparison,
// for "<!DOCTYPE" / "<!doctype" (spec.md §4.5: DOCTYPE keyword is
// case-insensitive).
func (s *Scanner) lookingAtFold(lit string) bool {
	for i, want := range lit {
		ch, ok := s.peek(i)
		if !ok || asciiUpper(ch) != asciiUpper(want) {
			return false
		}
	}
	for range lit {
		s.next()
	}
	return true
}

func asciiUpper(ch rune) rune {
	if ch >= 'a' && ch <= 'z' {
		return ch - ('a' - 'A')
	}
	return ch
}

// scanComment scans a comment body; the caller's lookingAt("--") has
// already consumed the opening "--".
func (s *Scanner) scanComment(begLn, begCol, begOff int) error {
	var text strings.Builder
	for {
		if s.lookingAt("-->") {
			loc := s.span(begLn, begCol, begOff)
			body := text.String()
			if !s.opts.StripCommentDelims {
				body = " " + body + " "
			}
			s.sink.Comment(body, s.augs(loc))
			return nil
		}
		ch, ok := s.next()
		if !ok {
			s.rep.ReportError(report.CodeUnterminatedComment, begLn)
			loc := s.span(begLn, begCol, begOff)
			s.sink.Comment(text.String(), s.augs(loc))
			return nil
		}
		text.WriteRune(ch)
	}
}

func (s *Scanner) scanDoctype(begLn, begCol, begOff int) error {
	s.skipWhitespace()
	root := s.scanName()
	s.skipWhitespace()

	var publicID, systemID string
	if s.lookingAtFold("PUBLIC") {
		s.skipWhitespace()
		publicID = s.scanQuoted()
		s.skipWhitespace()
		systemID = s.scanQuoted()
	} else if s.lookingAtFold("SYSTEM") {
		s.skipWhitespace()
		systemID = s.scanQuoted()
	}

	// Skip any internal subset and the closing '>'.
	depth := 0
	for {
		ch, ok := s.next()
		if !ok {
			s.reportUnexpectedEOF("DOCTYPE declaration")
			break
		}
		switch ch {
		case '[':
			depth++
		case ']':
			depth--
		case '>':
			if depth <= 0 {
				goto done
			}
		}
	}
done:
	if root == "" && s.opts.ReportErrors {
		s.rep.ReportWarning(report.CodeMissingDoctypeName)
	}

	d := event.Doctype{Root: root, PublicID: publicID, SystemID: systemID}
	if s.opts.OverrideDoctype != nil {
		d = *s.opts.OverrideDoctype
	}
	loc := s.span(begLn, begCol, begOff)
	s.sink.DoctypeDecl(d, s.augs(loc))
	return nil
}

// scanQuoted reads a single- or double-quoted literal, or returns ""
// if the next non-whitespace character is not a quote.
func (s *Scanner) scanQuoted() string {
	ch, ok := s.peek(0)
	if !ok || (ch != '"' && ch != '\'') {
		return ""
	}
	quote := ch
	s.next()
	var b strings.Builder
	for {
		ch, ok := s.next()
		if !ok || ch == quote {
			break
		}
		b.WriteRune(ch)
	}
	return b.String()
}

func (s *Scanner) scanCDATA(begLn, begCol, begOff int) error {
	s.sink.StartCDATA(s.augs(s.point()))
	s.beginText()
	for {
		if s.lookingAt("]]>") {
			break
		}
		ch, ok := s.next()
		if !ok {
			s.reportUnexpectedEOF("CDATA section")
			break
		}
		s.textBuf.WriteRune(ch)
	}
	s.flushCharacters()
	loc := s.span(begLn, begCol, begOff)
	s.sink.EndCDATA(s.augs(loc))
	return nil
}

// scanCDATAAsComment handles a "<![CDATA[...]]>" section when the
// cdata-sections option is off: spec.md §6 has it reported as a
// comment rather than dropped as a bogus declaration.
func (s *Scanner) scanCDATAAsComment(begLn, begCol, begOff int) error {
	var text strings.Builder
	for {
		if s.lookingAt("]]>") {
			break
		}
		ch, ok := s.next()
		if !ok {
			s.reportUnexpectedEOF("CDATA section")
			break
		}
		text.WriteRune(ch)
	}
	loc := s.span(begLn, begCol, begOff)
	body := text.String()
	if !s.opts.StripCommentDelims {
		body = " " + body + " "
	}
	s.sink.Comment(body, s.augs(loc))
	return nil
}
