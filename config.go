package gohtml

import "github.com/nekohtml/gohtml/scanner"

// Options, Option, CaseFold and the With*/New* constructors are
// re-exported from package scanner, the engine that actually consumes
// them — the same thin-facade shape the teacher uses for its top-level
// netconf package versus the real work in v2/netconf/client.
type (
	Options  = scanner.Options
	Option   = scanner.Option
	CaseFold = scanner.CaseFold
)

const (
	CaseDefault = scanner.CaseDefault
	CaseUpper   = scanner.CaseUpper
	CaseLower   = scanner.CaseLower
)

var DefaultOptions = scanner.DefaultOptions

var (
	NewOptions           = scanner.NewOptions
	NewOptionsFromConfig = scanner.NewOptionsFromConfig

	WithAugmentations          = scanner.WithAugmentations
	WithReportErrors           = scanner.WithReportErrors
	WithNotifyCharRefs         = scanner.WithNotifyCharRefs
	WithNotifyXMLBuiltinRefs   = scanner.WithNotifyXMLBuiltinRefs
	WithNotifyHTMLBuiltinRefs  = scanner.WithNotifyHTMLBuiltinRefs
	WithFixMSWindowsRefs       = scanner.WithFixMSWindowsRefs
	WithStripCommentDelims     = scanner.WithStripCommentDelims
	WithStripCDATADelims       = scanner.WithStripCDATADelims
	WithIgnoreSpecifiedCharset = scanner.WithIgnoreSpecifiedCharset
	WithCDATASections          = scanner.WithCDATASections
	WithOverrideDoctype        = scanner.WithOverrideDoctype
	WithInsertDoctype          = scanner.WithInsertDoctype
	WithParseNoscriptContent   = scanner.WithParseNoscriptContent
	WithAllowSelfClosingIframe = scanner.WithAllowSelfClosingIframe
	WithAllowSelfClosingTags   = scanner.WithAllowSelfClosingTags
	WithNormalizeAttributes    = scanner.WithNormalizeAttributes
	WithElementCase            = scanner.WithElementCase
	WithAttrCase                = scanner.WithAttrCase
	WithDefaultEncoding        = scanner.WithDefaultEncoding
	WithMaxBufferGrowth        = scanner.WithMaxBufferGrowth
)
