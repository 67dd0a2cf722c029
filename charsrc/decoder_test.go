package charsrc

import (
	"strings"
	"testing"

	assert "github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/htmlindex"
)

func TestResolveEncodingDefaultsToWindows1252(t *testing.T) {
	enc, canonical, err := ResolveEncoding("")
	assert.NoError(t, err)
	assert.NotNil(t, enc)
	assert.Equal(t, "windows-1252", canonical)
}

func TestResolveEncodingUnknownLabel(t *testing.T) {
	_, _, err := ResolveEncoding("not-a-real-charset")
	assert.Error(t, err)
}

func TestDecoderReadsUTF8(t *testing.T) {
	d, err := NewDecoder(strings.NewReader("héllo€"), "utf-8")
	assert.NoError(t, err)

	var got []rune
	for {
		r, _, err := d.ReadRune()
		if err != nil {
			break
		}
		got = append(got, r)
	}
	assert.Equal(t, []rune("héllo€"), got)
}

func TestCompatibleSwitchUTF8ToWindows1252(t *testing.T) {
	utf8enc, _, _ := ResolveEncoding("utf-8")
	cp1252, _, _ := ResolveEncoding("windows-1252")

	assert.True(t, CompatibleSwitch(utf8enc, cp1252))
}

func TestCompatibleSwitchRejectsUTF16(t *testing.T) {
	cp1252, _, _ := ResolveEncoding("windows-1252")
	utf16, err := htmlindex.Get("utf-16le")
	assert.NoError(t, err)

	assert.False(t, CompatibleSwitch(cp1252, utf16))
}
