package api

import (
	"go.uber.org/zap"
)

// CallEvent records metadata about a single HTTP call.
type CallEvent struct {
	Method    string
	Path      string
	Status    int // 0 when no response was received
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about API calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events to a zap logger. Successful calls are
// logged at debug level, failures at warn.
type LogObserver struct {
	logger *zap.Logger
}

// NewLogObserver creates an Observer that logs events to logger.
func NewLogObserver(logger *zap.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	fields := []zap.Field{
		zap.String("method", event.Method),
		zap.String("path", event.Path),
		zap.Int("status", event.Status),
		zap.Int64("latency_ms", event.LatencyMs),
	}
	if event.Success {
		o.logger.Debug("api_call", fields...)
		return
	}
	o.logger.Warn("api_call", append(fields, zap.String("error_code", event.ErrorCode))...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}

// MultiObserver fans an event out to several observers in order.
type MultiObserver []Observer

func (m MultiObserver) OnCallComplete(event CallEvent) {
	for _, o := range m {
		o.OnCallComplete(event)
	}
}
