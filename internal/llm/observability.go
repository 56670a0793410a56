package llm

import (
	"context"
	"log/slog"
)

// LLMCallEvent records metadata about a single LLM invocation.
type LLMCallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Attempts  int
	Success   bool
	ErrorCode string
}

// Observer receives events about LLM calls.
type Observer interface {
	OnCallComplete(event LLMCallEvent)
}

// SlogObserver logs LLM call events as structured records.
type SlogObserver struct {
	logger *slog.Logger
}

// NewSlogObserver creates an Observer that logs to logger.
func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	return &SlogObserver{logger: logger}
}

func (o *SlogObserver) OnCallComplete(event LLMCallEvent) {
	level := slog.LevelInfo
	attrs := []slog.Attr{
		slog.String("task", string(event.Task)),
		slog.String("model", event.Model),
		slog.Int64("latency_ms", event.LatencyMs),
		slog.Int("attempts", event.Attempts),
	}
	if !event.Success {
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error_code", event.ErrorCode))
	}
	o.logger.LogAttrs(context.Background(), level, "llm_call", attrs...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(LLMCallEvent) {}
