// Package gohtml is a standalone HTML5 tokenizer: it turns a byte or
// character stream into the event.Sink callback sequence of spec.md
// §6 (start/end tags, attributes, text, comments, DOCTYPE, processing
// instructions, CDATA), handling encoding detection and mid-stream
// switching, character- and numeric-reference decoding, and the
// raw-text/RCDATA/PLAINTEXT element modes along the way.
//
// It does not build a DOM or a parse tree — pairing Tokenizer with a
// tree-construction Sink is left to the caller, the same separation
// of concerns the teacher's rfc6242.Decoder (framing) keeps from
// encoding/xml.Decoder (tree-shaped token consumption).
package gohtml
