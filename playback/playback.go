// Package playback implements the byte source described in spec.md
// §3 "PlaybackBuffer" and §4.1: a filtering io.Reader, in the same
// spirit as the teacher's rfc6242.Decoder, except instead of framing
// NETCONF chunks it buffers consumed bytes so they can be replayed
// from byte zero after a `<meta charset>`/`<?xml encoding?>` directive
// changes the decoding encoding mid-stream.
package playback

import (
	"io"

	"github.com/pkg/errors"
)

// state is the Buffer's current disjoint mode (spec.md §3).
type state int

const (
	stateBuffering state = iota
	statePlayback
	stateCleared
)

// Buffer is a byte source with three disjoint states plus a small
// pushback region used for BOM detection. It is not safe for
// concurrent use — like the teacher's Decoder, a single logical
// scanner owns it (spec.md §5 Shared-resource policy).
type Buffer struct {
	Input io.Reader

	state state
	buf   []byte // accumulated bytes, valid in stateBuffering and stateCleared (inert) and replayed in statePlayback
	pos   int    // replay cursor into buf, valid in statePlayback

	pushback []byte // 0-3 bytes unread before the first real read
}

// New wraps r as a Buffer that starts in the buffering state.
func New(r io.Reader) *Buffer {
	return &Buffer{Input: r, state: stateBuffering}
}

// DetectEncoding reads up to 3 leading bytes looking for a byte-order
// mark (spec.md §4.1). Non-BOM bytes read in the process are pushed
// back into the 0-3 byte pushback region and are served to the first
// subsequent Read call. DetectEncoding must be called at most once,
// before any other Read.
func (b *Buffer) DetectEncoding() (bom BOM, err error) {
	lead := make([]byte, 3)
	n, err := io.ReadFull(b.Input, lead)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return BOMNone, errors.Wrap(err, "playback: detect encoding")
	}
	lead = lead[:n]

	bom = detectBOM(lead)
	consumed := bom.length()

	leftover := append([]byte(nil), lead[consumed:]...)
	b.pushback = leftover

	return bom, nil
}

// Read implements io.Reader. Behaviour depends on the current state:
// buffering appends every byte served to the internal vector;
// playback replays the vector from offset zero, then falls through to
// the underlying stream and transitions to cleared; cleared is a
// plain pass-through.
func (b *Buffer) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}

	if len(b.pushback) > 0 {
		n = copy(p, b.pushback)
		b.pushback = b.pushback[n:]
		if b.state == stateBuffering {
			b.buf = append(b.buf, p[:n]...)
		}
		return n, nil
	}

	switch b.state {
	case statePlayback:
		if b.pos < len(b.buf) {
			n = copy(p, b.buf[b.pos:])
			b.pos += n
			return n, nil
		}
		// Replay vector exhausted; fall through to live input and
		// stop buffering/replaying for good.
		b.state = stateCleared
		b.buf = nil
		return b.Input.Read(p)

	case stateBuffering:
		n, err = b.Input.Read(p)
		if n > 0 {
			b.buf = append(b.buf, p[:n]...)
		}
		return n, err

	default: // stateCleared
		return b.Input.Read(p)
	}
}

// Playback switches the Buffer from buffering to replay at offset
// zero (spec.md §4.1 `playback()`). It is a no-op if the Buffer has
// already been cleared.
func (b *Buffer) Playback() {
	if b.state == stateCleared {
		return
	}
	b.state = statePlayback
	b.pos = 0
}

// Clear discards the internal buffer. If playback is in progress the
// call is ignored; the buffer auto-clears once playback is exhausted,
// per spec.md §4.1. After Clear the Buffer never buffers again.
func (b *Buffer) Clear() {
	if b.state == statePlayback {
		return
	}
	b.state = stateCleared
	b.buf = nil
}

// Buffering reports whether the Buffer is still accumulating bytes
// for a possible future Playback call.
func (b *Buffer) Buffering() bool {
	return b.state == stateBuffering
}

// Close releases the underlying input if it implements io.Closer,
// supporting the closeAll=true case of spec.md §5 cleanup(closeAll).
func (b *Buffer) Close() error {
	if c, ok := b.Input.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
