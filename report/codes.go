package report

// Code is a stable, opaque diagnostic key (spec.md §6 Error reporter
// interface). Messages are looked up through a Table built by
// NewTable, which copies Messages and then applies the caller's
// overrides with a plain map merge.
type Code string

const (
	// CodeUnknownEncoding: a declared or supplied IANA label could not
	// be resolved to a decoder.
	CodeUnknownEncoding Code = "HTML1000"
	// CodeUnsupportedEncodingMapping: the encoding was resolved but
	// this build cannot map it (no golang.org/x/text table).
	CodeUnsupportedEncodingMapping Code = "HTML1001"
	// CodeUnexpectedEndOfStream: EOF inside a construct that expected
	// more input (unterminated tag/comment/CDATA/entity).
	CodeUnexpectedEndOfStream Code = "HTML1007"
	// CodeMissingDoctypeName: a DOCTYPE declaration had no root name.
	CodeMissingDoctypeName Code = "HTML1014"
	// CodeIncompatibleEncodingSwitch: change_encoding's round-trip
	// compatibility test failed; the switch was abandoned.
	CodeIncompatibleEncodingSwitch Code = "HTML1015"
	// CodeUnterminatedComment: `<!--` with no matching `-->` before EOF.
	CodeUnterminatedComment Code = "HTML1016"
	// CodeMalformedAttribute: an attribute name could not be scanned
	// at the current position (stray `<`, bad name start char, etc.).
	CodeMalformedAttribute Code = "HTML1017"
	// CodeUnknownNamedReference: `&name;` or legacy `&name` is not in
	// the HTML5 named-character-reference list.
	CodeUnknownNamedReference Code = "HTML1018"
	// CodeInvalidCodePoint: a numeric reference decoded to an invalid
	// or lone-surrogate code point; U+FFFD was substituted.
	CodeInvalidCodePoint Code = "HTML1019"
	// CodeBufferLimitExceeded: a single name/value exceeded the
	// configured growth cap (spec.md §5 time/memory bounds).
	CodeBufferLimitExceeded Code = "HTML1020"
)

// Messages is the default English localisation table. A caller may
// pass an override map to NewTable (or NewLogReporter); any key
// Messages defines that the caller's map omits keeps its default.
var Messages = map[Code]string{
	CodeUnknownEncoding:            "unknown encoding %q",
	CodeUnsupportedEncodingMapping: "unsupported encoding mapping for %q",
	CodeUnexpectedEndOfStream:      "unexpected end of stream while scanning %s",
	CodeMissingDoctypeName:         "DOCTYPE declaration is missing a root name",
	CodeIncompatibleEncodingSwitch: "cannot switch encoding from %q to %q: incompatible with bytes already consumed",
	CodeUnterminatedComment:        "unterminated comment starting at line %d",
	CodeMalformedAttribute:         "malformed attribute near %q",
	CodeUnknownNamedReference:      "unknown character reference %q",
	CodeInvalidCodePoint:           "invalid numeric character reference U+%X replaced with U+FFFD",
	CodeBufferLimitExceeded:        "scan buffer limit exceeded while scanning %s",
}
