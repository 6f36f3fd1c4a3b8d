// Package diagnostics accumulates the non-fatal observations the parser
// and host/IDNA pipeline emit alongside a successful result (spec.md §7:
// "backslash-in-path", "non-decimal IPv4", "invalid-reverse-solidus", and
// so on). It wires a *zap.Logger the way DataDog-datadog-agent's
// components do — accept one at construction, default to zap.NewNop() so
// callers who don't care about diagnostics pay nothing for them.
package diagnostics

import "go.uber.org/zap"

// Code enumerates the diagnostic codes spec.md §7 names.
type Code string

const (
	CodeBackslashInPath        Code = "backslash-in-path"
	CodeInvalidReverseSolidus  Code = "invalid-reverse-solidus"
	CodeNonDecimalIPv4         Code = "non-decimal-ipv4"
	CodeIPv4OutOfRangePart     Code = "ipv4-out-of-range-part"
	CodeSpecialSchemeMissingSlash Code = "special-scheme-missing-following-solidus"
	CodeUnexpectedLoneSurrogate Code = "unexpected-lone-surrogate"
	CodePortOutOfRange         Code = "port-out-of-range"
	CodeFileHostRequiresEmpty  Code = "file-host-requires-empty"
	CodeHostMissing            Code = "host-missing"
	CodeTabOrNewlineRemoved    Code = "tab-or-newline-in-url"
)

// Entry is one recorded diagnostic: a code plus free-form detail.
type Entry struct {
	Code   Code
	Detail string
}

// Sink accumulates diagnostics during one parse/mutation and mirrors each
// one to a zap logger as it is recorded.
type Sink struct {
	logger  *zap.Logger
	entries []Entry
}

// NewSink builds a Sink. A nil logger is replaced with zap.NewNop(), so
// Record is always safe to call.
func NewSink(logger *zap.Logger) *Sink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sink{logger: logger}
}

// Record appends a diagnostic and emits it at Debug level.
func (s *Sink) Record(code Code, detail string) {
	s.entries = append(s.entries, Entry{Code: code, Detail: detail})
	s.logger.Debug("url diagnostic",
		zap.String("code", string(code)),
		zap.String("detail", detail),
	)
}

// Entries returns the diagnostics recorded so far, in emission order.
func (s *Sink) Entries() []Entry {
	if s == nil {
		return nil
	}
	return s.entries
}

// Empty reports whether no diagnostics have been recorded (or s is nil).
func (s *Sink) Empty() bool {
	return s == nil || len(s.entries) == 0
}
