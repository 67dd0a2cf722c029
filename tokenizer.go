package gohtml

import (
	"context"
	"time"

	"github.com/nekohtml/gohtml/event"
	"github.com/nekohtml/gohtml/report"
	"github.com/nekohtml/gohtml/scanner"
)

// Tokenizer is the public entry point: spec.md §3 "Scanner"/
// "Dispatcher" as seen by a caller. It is a thin wrapper over
// scanner.Scanner, the way the teacher's top-level netconf package
// wraps v2/netconf/client.Session — the real state lives in the
// scanner package; this type adds the Trace-aware convenience layer.
type Tokenizer struct {
	engine *scanner.Scanner
	trace  *Trace
}

// NewTokenizer builds a Tokenizer that emits events to sink and
// reports diagnostics through rep (report.Noop if nil) with opts
// (DefaultOptions if nil). Call PushInputSource before the first Scan.
func NewTokenizer(sink event.Sink, rep report.Reporter, opts *Options) *Tokenizer {
	return &Tokenizer{engine: scanner.New(opts, sink, rep), trace: NoOpTrace}
}

// NewTokenizerContext is NewTokenizer plus a Trace recovered from ctx
// via ContextTrace (spec.md §9 "Hooks for tracing"), the same
// context-carried-hooks idiom as the teacher's
// client.ContextClientTrace.
func NewTokenizerContext(ctx context.Context, sink event.Sink, rep report.Reporter, opts *Options) *Tokenizer {
	t := NewTokenizer(sink, rep, opts)
	t.trace = ContextTrace(ctx)
	return t
}

// PushInputSource opens src and installs it as the new active frame
// (spec.md §4.6). The first call establishes the top-level document.
func (t *Tokenizer) PushInputSource(src Source) error {
	t.trace.PushInputSource(t.engine.ParseID(), "")
	return t.engine.PushInputSource(src)
}

// EvaluateInputSource pushes src as a named general entity, emitting
// StartGeneralEntity/EndGeneralEntity around its lifetime when notify
// is true (spec.md §4.6, driven by the notify-*-refs options).
func (t *Tokenizer) EvaluateInputSource(name string, src Source, notify bool) error {
	t.trace.PushInputSource(t.engine.ParseID(), name)
	return t.engine.EvaluateInputSource(name, src, notify)
}

// Scan performs one pull of spec.md §5's scan(complete bool) contract.
func (t *Tokenizer) Scan(complete bool) (done bool, err error) {
	start := time.Now()
	t.trace.ScanStart(t.engine.ParseID(), complete)
	done, err = t.engine.Scan(complete)
	t.trace.ScanDone(t.engine.ParseID(), done, err, time.Since(start))
	return done, err
}

// Cleanup releases every held input frame; closeAll additionally
// closes the top-level document's byte Reader when it implements
// io.Closer (spec.md §5 cleanup(closeAll)).
func (t *Tokenizer) Cleanup(closeAll bool) {
	t.engine.Cleanup(closeAll)
}
