package scanner

import (
	"github.com/imdario/mergo"

	"github.com/nekohtml/gohtml/event"
)

// CaseFold selects how element/attribute names are cased on the way
// out (spec.md §6 "names/elems, names/attrs").
type CaseFold int

const (
	CaseDefault CaseFold = iota
	CaseUpper
	CaseLower
)

// Options holds every configurable behaviour spec.md §6 enumerates.
// The primary way to build one is the functional-option chain (see
// NewOptions/Option below), the pattern the teacher uses throughout
// (rfc6242.DecoderOption, cli.SendOption): each With* function is
// self-documenting at the call site and there is no ambiguity about
// an unset vs. explicitly-false boolean.
//
// NewOptionsFromConfig additionally supports bulk construction from a
// caller-built *Options merged onto DefaultOptions with
// github.com/imdario/mergo, the way client.NewRPCSessionWithConfig
// merges a caller's *Config onto client.DefaultConfig. That path is
// best suited to the string/numeric/enum fields below: mergo cannot
// distinguish an explicitly-false bool from an unset one, so prefer
// the With* builders for the boolean options.
type Options struct {
	Augmentations          bool
	ReportErrors           bool
	NotifyCharRefs         bool
	NotifyXMLBuiltinRefs   bool
	NotifyHTMLBuiltinRefs  bool
	FixMSWindowsRefs       bool
	StripCommentDelims     bool
	StripCDATADelims       bool
	IgnoreSpecifiedCharset bool
	CDATASections          bool
	OverrideDoctype        *event.Doctype
	InsertDoctype          *event.Doctype
	ParseNoscriptContent   bool
	AllowSelfClosingIframe bool
	AllowSelfClosingTags   bool
	NormalizeAttributes    bool
	ElementCase            CaseFold
	AttrCase               CaseFold
	DefaultEncoding        string
	MaxBufferGrowth        int
}

// DefaultOptions matches the teacher's DefaultConfig/DefaultTransportConfig
// convention of a single package-level value every constructor starts
// from.
var DefaultOptions = Options{
	ReportErrors:        true,
	NormalizeAttributes: true,
	DefaultEncoding:     "windows-1252",
	MaxBufferGrowth:     1 << 24, // 16M characters; stored only, the scanner does not enforce it
}

// Option configures an Options value built by NewOptions.
type Option func(*Options)

// NewOptions returns a new Options, starting from DefaultOptions and
// applying opts in order.
func NewOptions(opts ...Option) *Options {
	o := DefaultOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &o
}

// NewOptionsFromConfig merges cfg onto a copy of DefaultOptions with
// mergo, for fields left at their Go zero value in cfg.
func NewOptionsFromConfig(cfg *Options) *Options {
	resolved := *cfg
	_ = mergo.Merge(&resolved, DefaultOptions)
	return &resolved
}

func WithAugmentations(b bool) Option          { return func(o *Options) { o.Augmentations = b } }
func WithReportErrors(b bool) Option           { return func(o *Options) { o.ReportErrors = b } }
func WithNotifyCharRefs(b bool) Option         { return func(o *Options) { o.NotifyCharRefs = b } }
func WithNotifyXMLBuiltinRefs(b bool) Option   { return func(o *Options) { o.NotifyXMLBuiltinRefs = b } }
func WithNotifyHTMLBuiltinRefs(b bool) Option  { return func(o *Options) { o.NotifyHTMLBuiltinRefs = b } }
func WithFixMSWindowsRefs(b bool) Option       { return func(o *Options) { o.FixMSWindowsRefs = b } }
func WithStripCommentDelims(b bool) Option     { return func(o *Options) { o.StripCommentDelims = b } }
func WithStripCDATADelims(b bool) Option       { return func(o *Options) { o.StripCDATADelims = b } }
func WithIgnoreSpecifiedCharset(b bool) Option { return func(o *Options) { o.IgnoreSpecifiedCharset = b } }
func WithCDATASections(b bool) Option          { return func(o *Options) { o.CDATASections = b } }
func WithOverrideDoctype(d event.Doctype) Option {
	return func(o *Options) { o.OverrideDoctype = &d }
}
func WithInsertDoctype(d event.Doctype) Option {
	return func(o *Options) { o.InsertDoctype = &d }
}
func WithParseNoscriptContent(b bool) Option   { return func(o *Options) { o.ParseNoscriptContent = b } }
func WithAllowSelfClosingIframe(b bool) Option { return func(o *Options) { o.AllowSelfClosingIframe = b } }
func WithAllowSelfClosingTags(b bool) Option   { return func(o *Options) { o.AllowSelfClosingTags = b } }
func WithNormalizeAttributes(b bool) Option    { return func(o *Options) { o.NormalizeAttributes = b } }
func WithElementCase(c CaseFold) Option        { return func(o *Options) { o.ElementCase = c } }
func WithAttrCase(c CaseFold) Option           { return func(o *Options) { o.AttrCase = c } }
func WithDefaultEncoding(enc string) Option    { return func(o *Options) { o.DefaultEncoding = enc } }
func WithMaxBufferGrowth(n int) Option         { return func(o *Options) { o.MaxBufferGrowth = n } }
