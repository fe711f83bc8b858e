package llm

import "log"

// LLMCallEvent records metadata about a single model call.
type LLMCallEvent struct {
	Operation string
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about model calls.
type Observer interface {
	OnCallComplete(event LLMCallEvent)
}

type LogObserver struct {
	logger *log.Logger
}

func NewLogObserver(logger *log.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnCallComplete(event LLMCallEvent) {
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	o.logger.Printf("llm_call op=%s model=%s latency_ms=%d status=%s",
		event.Operation, event.Model, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(LLMCallEvent) {}
