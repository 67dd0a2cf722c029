// Package report defines the scanner's structured, non-fatal
// diagnostic channel. Nothing reported through it halts scanning
// (spec.md §7): it exists purely to let a caller surface warnings and
// errors the way the teacher's client.ClientTrace.Error hook surfaces
// soft failures alongside hard error returns.
package report

import "fmt"

// Reporter is the error-reporter interface of spec.md §6.
type Reporter interface {
	FormatMessage(key Code, args ...interface{}) string
	ReportWarning(key Code, args ...interface{})
	ReportError(key Code, args ...interface{})
}

// Table looks messages up in a localisation map, defaulting through
// Messages for any key the caller's map does not override.
type Table struct {
	messages map[Code]string
}

// NewTable builds a Table, merging overrides onto the package default
// Messages map (github.com/imdario/mergo is used at the gohtml.Options
// level for struct defaulting; here a plain map merge is simpler and
// avoids reflecting into a map of a non-struct value type).
func NewTable(overrides map[Code]string) *Table {
	merged := make(map[Code]string, len(Messages)+len(overrides))
	for k, v := range Messages {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return &Table{messages: merged}
}

func (t *Table) FormatMessage(key Code, args ...interface{}) string {
	format, ok := t.messages[key]
	if !ok {
		format = string(key)
	}
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// LogReporter reports through a pluggable sink function, defaulting to
// nothing (silent), matching the report-errors option of spec.md §6:
// "otherwise be silent".
type LogReporter struct {
	*Table
	Warn  func(msg string)
	Error func(msg string)
}

// NewLogReporter builds a Reporter that calls warn/err for warnings
// and errors respectively. Either may be nil to silence that channel.
func NewLogReporter(overrides map[Code]string, warn, err func(string)) *LogReporter {
	return &LogReporter{Table: NewTable(overrides), Warn: warn, Error: err}
}

func (r *LogReporter) ReportWarning(key Code, args ...interface{}) {
	if r.Warn != nil {
		r.Warn(r.FormatMessage(key, args...))
	}
}

func (r *LogReporter) ReportError(key Code, args ...interface{}) {
	if r.Error != nil {
		r.Error(r.FormatMessage(key, args...))
	}
}

var _ Reporter = (*LogReporter)(nil)

// Diagnostic is one recorded warning or error, used by SliceReporter.
type Diagnostic struct {
	Code    Code
	Message string
	Warning bool
}

// SliceReporter accumulates diagnostics in memory instead of logging
// them, the way netconf tests substitute an in-memory channel for
// ClientTrace hooks instead of asserting on log output.
type SliceReporter struct {
	*Table
	Diagnostics []Diagnostic
}

// NewSliceReporter builds a SliceReporter with the default message table.
func NewSliceReporter() *SliceReporter {
	return &SliceReporter{Table: NewTable(nil)}
}

func (r *SliceReporter) ReportWarning(key Code, args ...interface{}) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Code: key, Message: r.FormatMessage(key, args...), Warning: true})
}

func (r *SliceReporter) ReportError(key Code, args ...interface{}) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Code: key, Message: r.FormatMessage(key, args...)})
}

var _ Reporter = (*SliceReporter)(nil)

// Noop silently discards every diagnostic; scanner.New uses it when no
// Reporter is supplied. The report-errors option is checked separately,
// at each reporting call site.
var Noop Reporter = &LogReporter{Table: NewTable(nil)}
