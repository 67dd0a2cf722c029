package gohtml

import (
	"context"
	"log"
	"time"

	"github.com/imdario/mergo"
)

// unique type to prevent assignment from outside this package.
type tokenizerEventContextKey struct{}

// ContextTrace returns the Trace associated with ctx, or
// NoOpTrace if none was attached.
func ContextTrace(ctx context.Context) *Trace {
	trace, _ := ctx.Value(tokenizerEventContextKey{}).(*Trace)
	if trace == nil {
		trace = NoOpTrace
	} else {
		_ = mergo.Merge(trace, NoOpTrace)
	}
	return trace
}

// WithTrace returns a context carrying trace, retrievable with
// ContextTrace. A Tokenizer created with NewTokenizerContext uses the
// hooks this way instead of direct construction, mirroring the
// teacher's WithClientTrace/ContextClientTrace pair.
func WithTrace(ctx context.Context, trace *Trace) context.Context {
	return context.WithValue(ctx, tokenizerEventContextKey{}, trace)
}

// Trace defines optional observability hooks around a Tokenizer's
// scan loop and encoding decisions.
type Trace struct {
	// ScanStart is called before each Scan(complete) pull.
	ScanStart func(parseID string, complete bool)

	// ScanDone is called after a Scan(complete) pull completes.
	ScanDone func(parseID string, done bool, err error, d time.Duration)

	// EncodingResolved describes the initial encoding choice (from BOM,
	// declaration, or default). Tokenizer does not invoke this hook.
	EncodingResolved func(parseID, encoding string)

	// EncodingSwitched describes a <meta charset> directive that
	// restarted decoding under a new encoding. Tokenizer does not
	// invoke this hook.
	EncodingSwitched func(parseID, from, to string)

	// EncodingSwitchRefused describes a requested encoding switch that
	// failed the round-trip compatibility test. Tokenizer does not
	// invoke this hook.
	EncodingSwitchRefused func(parseID, from, to string)

	// PushInputSource is called by Tokenizer.PushInputSource (with an
	// empty name) and Tokenizer.EvaluateInputSource (with the entity
	// name) before the frame is pushed. PopInputSource is not invoked
	// by Tokenizer; frame ends are not reported through Trace.
	PushInputSource func(parseID, name string)
	PopInputSource  func(parseID, name string)
}

// DefaultTrace logs errors the way the teacher's DefaultLoggingHooks
// does for NETCONF — only the channel most operators want without
// asking.
var DefaultTrace = &Trace{
	EncodingSwitchRefused: func(parseID, from, to string) {
		log.Printf("gohtml: parse %s: refused encoding switch %s -> %s\n", parseID, from, to)
	},
}

// NoOpTrace is a Trace whose hooks do nothing; ContextTrace falls back
// to it so callers never need a nil check before invoking a hook.
var NoOpTrace = &Trace{
	ScanStart:             func(string, bool) {},
	ScanDone:              func(string, bool, error, time.Duration) {},
	EncodingResolved:      func(string, string) {},
	EncodingSwitched:      func(string, string, string) {},
	EncodingSwitchRefused: func(string, string, string) {},
	PushInputSource:       func(string, string) {},
	PopInputSource:        func(string, string) {},
}
