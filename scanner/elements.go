package scanner

// ContentMode is the per-element tokenizer mode spec.md §4.5 assigns
// once an element's start tag has been scanned: most elements keep the
// scanner in normal markup-recognizing mode, but a handful of legacy
// and script-ish elements switch to a mode where '<' is not markup
// except for the element's own end tag.
type ContentMode int

const (
	// ModeNormal recognizes markup (tags, comments, references, PIs)
	// as usual.
	ModeNormal ContentMode = iota
	// ModeRCData recognizes character references but no nested tags;
	// only the matching end tag closes it (title, textarea).
	ModeRCData
	// ModeRawText recognizes neither references nor nested tags; only
	// the matching end tag closes it (style, iframe, noembed,
	// noframes, xmp, and noscript when ParseNoscriptContent is off).
	ModeRawText
	// ModeScriptData is ModeRawText plus the script-data-escaped
	// sub-states: an embedded "<!--" ... "-->" run inside a <script>
	// element does not end raw-text scanning even if it contains what
	// looks like "</script" (spec.md §9 Concrete scenario 3).
	ModeScriptData
	// ModePlaintext never recognizes markup again for the rest of the
	// document; only EOF ends it (the deprecated <plaintext> element).
	ModePlaintext
)

// specialElements names, by lower-cased tag name, every HTML element
// whose start tag switches the scanner out of ModeNormal. This list is
// carried over unchanged from the HTML5 tokenization rules' own table
// of raw-text/RCDATA/PLAINTEXT elements (spec.md §9 Open Question:
// "the special-elements table is implementation data, preserved
// as-is").
var specialElements = map[string]ContentMode{
	"script":   ModeScriptData,
	"style":    ModeRawText,
	"title":    ModeRCData,
	"textarea": ModeRCData,
	"iframe":   ModeRawText,
	"noembed":  ModeRawText,
	"noframes": ModeRawText,
	"xmp":      ModeRawText,
	"plaintext": ModePlaintext,
}

// voidElements names, by lower-cased tag name, every HTML element that
// never has a matching end tag (spec.md §5 "open-element stack": a
// void element's start tag does not increase nesting depth). This
// table is what lets the content scanner maintain an ancestry depth
// without doing real tree construction.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// noscriptMode resolves the mode for a <noscript> start tag according
// to the ParseNoscriptContent option (spec.md §6): when content
// parsing is requested (the document is meant to be read as if
// scripting were disabled), noscript is normal markup; otherwise its
// body is raw text, matching a scripting-enabled browser.
func noscriptMode(parseContent bool) ContentMode {
	if parseContent {
		return ModeNormal
	}
	return ModeRawText
}

// modeFor resolves the ContentMode a start tag for name should switch
// into.
func modeFor(name string, parseNoscriptContent bool) ContentMode {
	if name == "noscript" {
		return noscriptMode(parseNoscriptContent)
	}
	if m, ok := specialElements[name]; ok {
		return m
	}
	return ModeNormal
}
