package stopwords

import (
	"context"

	"stopwords/internal/platform/logger"
)

// Notice is a non-fatal advisory about a legacy call shape that was rewritten
type Notice struct {
	Deprecated  string `json:"deprecated"`
	Replacement string `json:"replacement"`
	Message     string `json:"message"`
}

// Sink receives notices as they are raised
type Sink interface {
	Notify(ctx context.Context, n Notice)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(ctx context.Context, n Notice)

// Notify calls f
func (f SinkFunc) Notify(ctx context.Context, n Notice) { f(ctx, n) }

// Discard drops every notice
var Discard Sink = SinkFunc(func(context.Context, Notice) {})

// LogSink writes notices as warnings on the request-scoped logger
func LogSink() Sink {
	return SinkFunc(func(ctx context.Context, n Notice) {
		logger.C(ctx).Warn().
			Str("component", "stopwords").
			Str("deprecated", n.Deprecated).
			Str("replacement", n.Replacement).
			Msg(n.Message)
	})
}
