package playback

// BOM is a detected byte-order mark.
type BOM int

const (
	// BOMNone means no recognised byte-order mark was present.
	BOMNone BOM = iota
	BOMUTF8
	BOMUTF16LE
	BOMUTF16BE
)

// IANA returns the encoding label implied by the BOM, or "" if none.
func (b BOM) IANA() string {
	switch b {
	case BOMUTF8:
		return "utf-8"
	case BOMUTF16LE:
		return "utf-16le"
	case BOMUTF16BE:
		return "utf-16be"
	default:
		return ""
	}
}

// length is the number of bytes the BOM itself occupies.
func (b BOM) length() int {
	switch b {
	case BOMUTF8:
		return 3
	case BOMUTF16LE, BOMUTF16BE:
		return 2
	default:
		return 0
	}
}

// detectBOM inspects up to the first 3 bytes of b and reports which
// BOM, if any, they form and how many of those bytes belong to it.
func detectBOM(b []byte) BOM {
	switch {
	case len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF:
		return BOMUTF8
	case len(b) >= 2 && b[0] == 0xFF && b[1] == 0xFE:
		return BOMUTF16LE
	case len(b) >= 2 && b[0] == 0xFE && b[1] == 0xFF:
		return BOMUTF16BE
	default:
		return BOMNone
	}
}
