package actor

import (
	"context"
	"fmt"

	"github.com/btcsuite/btclog"
	btclogv2 "github.com/btcsuite/btclog/v2"
)

// SLogger is a minimal structured-logging facade used throughout this
// package. It mirrors the context-first, key/value call shape used across
// the actor runtime's hot paths (message dispatch, mailbox send/receive,
// system lifecycle) without forcing every call site to format strings by
// hand.
type SLogger struct {
	backend btclogv2.Logger
}

// NewSLogger wraps a btclog/v2 logger with the context-aware convenience
// methods used by this package.
func NewSLogger(backend btclogv2.Logger) *SLogger {
	return &SLogger{backend: backend}
}

func (l *SLogger) fields(ctx context.Context, kvs []interface{}) string {
	_ = ctx

	out := ""
	for i := 0; i+1 < len(kvs); i += 2 {
		out += fmt.Sprintf(" %v=%v", kvs[i], kvs[i+1])
	}

	return out
}

// TraceS logs a trace-level structured message.
func (l *SLogger) TraceS(ctx context.Context, msg string, kvs ...interface{}) {
	l.backend.Tracef("%s%s", msg, l.fields(ctx, kvs))
}

// DebugS logs a debug-level structured message.
func (l *SLogger) DebugS(ctx context.Context, msg string, kvs ...interface{}) {
	l.backend.Debugf("%s%s", msg, l.fields(ctx, kvs))
}

// InfoS logs an info-level structured message.
func (l *SLogger) InfoS(ctx context.Context, msg string, kvs ...interface{}) {
	l.backend.Infof("%s%s", msg, l.fields(ctx, kvs))
}

// WarnS logs a warn-level structured message with an attached error.
func (l *SLogger) WarnS(ctx context.Context, msg string, err error, kvs ...interface{}) {
	l.backend.Warnf("%s: %v%s", msg, err, l.fields(ctx, kvs))
}

// ErrorS logs an error-level structured message with an attached error.
func (l *SLogger) ErrorS(ctx context.Context, msg string, err error, kvs ...interface{}) {
	l.backend.Errorf("%s: %v%s", msg, err, l.fields(ctx, kvs))
}

// SetLevel adjusts the minimum level of the underlying backend.
func (l *SLogger) SetLevel(level btclog.Level) {
	l.backend.SetLevel(level)
}

// log is the package-wide logger used by the actor runtime. It defaults to
// a disabled backend; callers embedding this package (e.g. cmd/meshctl)
// should call UseLogger to attach a real handler.
var log = NewSLogger(btclogv2.Disabled)

// UseLogger replaces the package-wide logger. It is typically called once
// during program initialization.
func UseLogger(backend btclogv2.Logger) {
	log = NewSLogger(backend)
}
