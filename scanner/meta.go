package scanner

import (
	"strings"

	"github.com/nekohtml/gohtml/charsrc"
	"github.com/nekohtml/gohtml/event"
	"github.com/nekohtml/gohtml/report"
)

// maybeSwitchEncodingFromMeta implements spec.md §4.4 change_encoding:
// a <meta charset="..."> or <meta http-equiv="Content-Type"
// content="...; charset=..."> seen while the playback buffer is still
// accumulating bytes can restart decoding with a different encoding,
// provided the new encoding round-trips compatibly with the bytes
// already consumed under the old one.
func (s *Scanner) maybeSwitchEncodingFromMeta(attrs event.Attributes) {
	if s.encodingLocked || s.opts.IgnoreSpecifiedCharset {
		return
	}
	if s.playbackBuf == nil || !s.playbackBuf.Buffering() {
		return
	}
	label, ok := extractMetaCharset(attrs)
	if !ok {
		return
	}
	s.switchEncoding(label)
}

func extractMetaCharset(attrs event.Attributes) (string, bool) {
	if v, ok := attrs.Get("charset"); ok && v != "" {
		return v, true
	}
	httpEquiv, ok := attrs.Get("http-equiv")
	if !ok || !strings.EqualFold(httpEquiv, "content-type") {
		return "", false
	}
	content, ok := attrs.Get("content")
	if !ok {
		return "", false
	}
	return parseCharsetFromContentType(content)
}

// parseCharsetFromContentType extracts the charset token from a
// "text/html; charset=..." style value.
func parseCharsetFromContentType(content string) (string, bool) {
	lower := strings.ToLower(content)
	idx := strings.Index(lower, "charset")
	if idx < 0 {
		return "", false
	}
	rest := content[idx+len("charset"):]
	rest = strings.TrimLeft(rest, " \t\n\r")
	if !strings.HasPrefix(rest, "=") {
		return "", false
	}
	rest = strings.TrimLeft(rest[1:], " \t\n\r")
	if rest == "" {
		return "", false
	}
	if rest[0] == '"' || rest[0] == '\'' {
		quote := rest[0]
		end := strings.IndexByte(rest[1:], quote)
		if end < 0 {
			return "", false
		}
		return rest[1 : 1+end], true
	}
	end := strings.IndexAny(rest, " \t\n\r;")
	if end < 0 {
		return rest, true
	}
	return rest[:end], true
}

func (s *Scanner) switchEncoding(label string) {
	ent := s.entities.Top()
	if ent == nil {
		return
	}

	candidate, candidateName, err := charsrc.ResolveEncoding(label)
	if err != nil {
		if s.opts.ReportErrors {
			s.rep.ReportWarning(report.CodeUnknownEncoding, label)
		}
		return
	}
	if candidateName == ent.Encoding {
		s.encodingLocked = true
		return
	}

	current, _, err := charsrc.ResolveEncoding(ent.Encoding)
	if err != nil {
		return
	}
	if !charsrc.CompatibleSwitch(current, candidate) {
		if s.opts.ReportErrors {
			s.rep.ReportError(report.CodeIncompatibleEncodingSwitch, ent.Encoding, candidateName)
		}
		return
	}

	// arm the suppress gate before replay starts: every event emitted so
	// far (<html>, <head>, this <meta> itself, ...) is about to be
	// produced a second time as the new decoder re-reads the buffered
	// prefix from byte zero, and spec.md §4.4 requires that replayed
	// prefix to stay invisible to the caller.
	s.gate.arm()

	s.playbackBuf.Playback()
	dec, err := charsrc.NewDecoder(s.playbackBuf, candidateName)
	if err != nil {
		return
	}
	newEnt := charsrc.NewEntity(dec, dec.Label)
	newEnt.PublicID, newEnt.BaseSystemID = ent.PublicID, ent.BaseSystemID
	newEnt.LiteralSystemID, newEnt.ExpandedSystemID = ent.LiteralSystemID, ent.ExpandedSystemID

	s.entities.Pop()
	s.entities.Push(newEnt)
	s.encodingLocked = true

	// The replay re-derives scanner state by re-running ordinary
	// scanning over the same bytes, so any mid-parse state has to be
	// rewound to how it looked at the very start rather than carried
	// forward from where the switch happened.
	s.mode = ModeNormal
	s.openElement = ""
	s.scriptEscaped = false
	s.elementStack = nil
	s.bodyBufferReleased = false
	s.textBuf.Reset()
	s.textBeginSet = false
}
