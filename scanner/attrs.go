package scanner

import (
	"strings"

	"github.com/nekohtml/gohtml/event"
	"github.com/nekohtml/gohtml/report"
)

// scanAttributes scans the attribute list of a start tag, stopping at
// '>' or the self-closing "/>" marker (spec.md §3 AttributeList, §6
// normalize-attributes option).
func (s *Scanner) scanAttributes() (event.Attributes, bool, error) {
	var attrs event.Attributes

	for {
		s.skipWhitespace()
		ch, ok := s.peek(0)
		if !ok {
			s.reportUnexpectedEOF("start tag")
			return attrs, false, nil
		}
		if ch == '>' {
			s.next()
			return attrs, false, nil
		}
		if ch == '/' {
			if nxt, ok := s.peek(1); ok && nxt == '>' {
				s.next()
				s.next()
				return attrs, true, nil
			}
			s.next() // stray '/' inside a tag; ignore and continue
			continue
		}
		if !isNameStart(ch) {
			if s.opts.ReportErrors {
				s.rep.ReportWarning(report.CodeMalformedAttribute, string(ch))
			}
			s.next()
			continue
		}

		attr, err := s.scanAttribute()
		if err != nil {
			return attrs, false, err
		}
		attrs = append(attrs, attr)
	}
}

func (s *Scanner) foldAttr(name string) string {
	return fold(name, s.opts.AttrCase)
}

func (s *Scanner) scanAttribute() (event.Attribute, error) {
	raw := s.scanName()
	name := event.QualifiedName{Raw: s.foldAttr(raw)}

	s.skipWhitespace()

	var value, nonNormalized string
	specified := false
	if ch, ok := s.peek(0); ok && ch == '=' {
		s.next()
		s.skipWhitespace()
		specified = true
		value, nonNormalized = s.scanAttributeValue()
	}

	typ := event.AttrTypeCDATA
	if strings.EqualFold(raw, "id") {
		typ = event.AttrTypeID
	}

	return event.Attribute{
		Name:               name,
		Type:               typ,
		Value:              value,
		NonNormalizedValue: nonNormalized,
		Specified:          specified,
	}, nil
}

// scanAttributeValue reads a quoted or bare attribute value, decoding
// character references as it goes. It returns both the
// normalize-attributes result (if requested) and the raw,
// non-normalized text.
func (s *Scanner) scanAttributeValue() (value, nonNormalized string) {
	var decoded strings.Builder
	var raw strings.Builder

	quote := rune(0)
	if ch, ok := s.peek(0); ok && (ch == '"' || ch == '\'') {
		quote = ch
		s.next()
	}

	for {
		ch, ok := s.peek(0)
		if !ok {
			s.reportUnexpectedEOF("attribute value")
			break
		}
		if quote != 0 {
			if ch == quote {
				s.next()
				break
			}
		} else if isWhitespace(ch) || ch == '>' {
			break
		}

		if ch == '&' {
			s.next()
			_ = s.scanCharRefInto(&decoded, true, &raw)
			continue
		}

		s.next()
		decoded.WriteRune(ch)
		raw.WriteRune(ch)
	}

	nonNormalized = raw.String()
	if !s.opts.NormalizeAttributes {
		return decoded.String(), nonNormalized
	}
	return normalizeAttributeWhitespace(decoded.String()), nonNormalized
}

// normalizeAttributeWhitespace collapses runs of whitespace to a
// single space and trims the ends, the XML/HTML attribute-value
// normalization rule spec.md §6's normalize-attributes option asks
// for.
func normalizeAttributeWhitespace(s string) string {
	var b strings.Builder
	lastWasSpace := false
	for _, ch := range s {
		if isWhitespace(ch) {
			if !lastWasSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			lastWasSpace = true
			continue
		}
		b.WriteRune(ch)
		lastWasSpace = false
	}
	return strings.TrimRight(b.String(), " ")
}
