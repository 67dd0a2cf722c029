package charsrc

import (
	"io"

	"github.com/nekohtml/gohtml/playback"
)

// SourceSpec describes a single input source to open as an Entity
// frame, covering both the top-level document and push_input_source
// re-entrancy (spec.md §4.6). Exactly one of Reader or Runes should be
// set: Reader goes through encoding resolution, and through BOM
// detection only when EnablePlayback is set; Runes is for callers that
// hand over an already-decoded
// character stream (e.g. an in-memory string entity with a known
// encoding, or a test double).
type SourceSpec struct {
	Reader   io.Reader
	Runes    RuneSource
	Encoding string // IANA/WHATWG label; "" defers to BOM (EnablePlayback only) or defaultEncoding

	PublicID         string
	BaseSystemID     string
	LiteralSystemID  string
	ExpandedSystemID string

	// EnablePlayback requests a playback.Buffer wrapping Reader so a
	// later meta-charset directive can restart decoding from byte
	// zero (spec.md §4.4). Only meaningful with Reader set; the
	// top-level document source sets this, nested general entities
	// usually do not.
	EnablePlayback bool
}

// Open resolves s into a ready-to-push Entity. When Reader is set and
// EnablePlayback is true, the returned *playback.Buffer is also
// returned so the caller (scanner.Scanner) can hold onto it for a
// later change_encoding; it is nil otherwise.
func (s SourceSpec) Open(defaultEncoding string) (*Entity, *playback.Buffer, error) {
	if s.Runes != nil {
		ent := NewEntity(s.Runes, s.Encoding)
		s.populateIDs(ent)
		return ent, nil, nil
	}

	var buf *playback.Buffer
	var byteSrc io.Reader = s.Reader

	label := s.Encoding
	if s.EnablePlayback {
		buf = playback.New(s.Reader)
		byteSrc = buf
		bom, err := buf.DetectEncoding()
		if err != nil {
			return nil, nil, err
		}
		if label == "" {
			label = bom.IANA()
		}
	}
	if label == "" {
		label = defaultEncoding
	}
	if label == "" {
		label = DefaultEncoding
	}

	dec, err := NewDecoder(byteSrc, label)
	if err != nil {
		return nil, nil, err
	}
	ent := NewEntity(dec, dec.Label)
	s.populateIDs(ent)
	return ent, buf, nil
}

func (s SourceSpec) populateIDs(e *Entity) {
	e.PublicID = s.PublicID
	e.BaseSystemID = s.BaseSystemID
	e.LiteralSystemID = s.LiteralSystemID
	e.ExpandedSystemID = s.ExpandedSystemID
}
