package playback

import (
	"bytes"
	"io"
	"testing"

	assert "github.com/stretchr/testify/require"
)

func TestDetectEncodingBOM(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want BOM
		rest string
	}{
		{"Utf8BOM", []byte("\xEF\xBB\xBFhello"), BOMUTF8, "hello"},
		{"Utf16LEBOM", []byte("\xFF\xFEhello"), BOMUTF16LE, "hello"},
		{"Utf16BEBOM", []byte("\xFE\xFFhello"), BOMUTF16BE, "hello"},
		{"NoBOM", []byte("hello"), BOMNone, "hello"},
		{"ShortInput", []byte("h"), BOMNone, "h"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(bytes.NewReader(tt.in))
			bom, err := b.DetectEncoding()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, bom)

			got, err := io.ReadAll(b)
			assert.NoError(t, err)
			assert.Equal(t, tt.rest, string(got))
		})
	}
}

func TestPlaybackReplaysBufferedBytes(t *testing.T) {
	b := New(bytes.NewReader([]byte("abcdefgh")))

	first := make([]byte, 4)
	n, err := b.Read(first)
	assert.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "abcd", string(first))

	b.Playback()

	all, err := io.ReadAll(b)
	assert.NoError(t, err)
	assert.Equal(t, "abcdefgh", string(all))
}

func TestClearStopsBuffering(t *testing.T) {
	b := New(bytes.NewReader([]byte("abcdefgh")))

	buf := make([]byte, 4)
	_, err := b.Read(buf)
	assert.NoError(t, err)

	b.Clear()
	assert.False(t, b.Buffering())

	b.Playback() // no-op: already cleared

	rest, err := io.ReadAll(b)
	assert.NoError(t, err)
	assert.Equal(t, "efgh", string(rest))
}

func TestClearDuringPlaybackIsIgnored(t *testing.T) {
	b := New(bytes.NewReader([]byte("abcd")))
	_, _ = io.ReadAll(io.LimitReader(b, 2))
	b.Playback()
	b.Clear() // ignored: playback in progress

	all, err := io.ReadAll(b)
	assert.NoError(t, err)
	assert.Equal(t, "abcd", string(all))
}
