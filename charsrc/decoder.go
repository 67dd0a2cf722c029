package charsrc

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// DefaultEncoding is the IANA label used when no BOM and no declared
// encoding are present (spec.md §4.1, §6 default-encoding option).
const DefaultEncoding = "windows-1252"

// ResolveEncoding maps an IANA/WHATWG label to a golang.org/x/text
// encoding.Encoding using the WHATWG "Encoding" algorithm implemented
// by golang.org/x/text/encoding/htmlindex — the same index browsers
// use to interpret a <meta charset> value — and returns the
// encoding's canonical name alongside it.
func ResolveEncoding(label string) (encoding.Encoding, string, error) {
	if label == "" {
		label = DefaultEncoding
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, "", errors.Wrapf(err, "resolve encoding %q", label)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = label
	}
	return enc, canonical, nil
}

// Decoder adapts a byte stream plus a resolved encoding.Encoding into
// a RuneSource, the way the teacher's codec.Decoder adapts an
// rfc6242.Decoder byte stream into an xml.Decoder token stream.
type Decoder struct {
	Label string
	enc   encoding.Encoding
	br    *bufio.Reader
}

// NewDecoder resolves label against r and returns a ready-to-use
// Decoder, or a wrapped error if the label cannot be resolved
// (scanner.Scanner returns that error from PushInputSource).
func NewDecoder(r io.Reader, label string) (*Decoder, error) {
	enc, canonical, err := ResolveEncoding(label)
	if err != nil {
		return nil, err
	}
	tr := transform.NewReader(r, enc.NewDecoder())
	return &Decoder{Label: canonical, enc: enc, br: bufio.NewReader(tr)}, nil
}

// ReadRune implements RuneSource.
func (d *Decoder) ReadRune() (rune, int, error) {
	return d.br.ReadRune()
}

// referenceProbe is an all-ASCII string that every ASCII-compatible
// encoding maps byte-for-byte to/from, used by CompatibleSwitch.
const referenceProbe = "charset=ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CompatibleSwitch implements the "round-trip compatibility" test of
// spec.md §4.4 change_encoding step 2: it encodes a reference ASCII
// string with each encoding and checks that decoding it back with the
// other encoding reproduces the original. Both directions must hold,
// so a switch is refused if the two encodings disagree about how
// plain ASCII content is represented on the wire (e.g. a UTF-16
// variant is never compatible with bytes already consumed as an
// 8-bit encoding).
func CompatibleSwitch(current, candidate encoding.Encoding) bool {
	forward, err := candidate.NewEncoder().String(referenceProbe)
	if err != nil {
		return false
	}
	back, err := current.NewDecoder().String(forward)
	if err != nil || back != referenceProbe {
		return false
	}

	forward2, err := current.NewEncoder().String(referenceProbe)
	if err != nil {
		return false
	}
	back2, err := candidate.NewDecoder().String(forward2)
	return err == nil && back2 == referenceProbe
}
