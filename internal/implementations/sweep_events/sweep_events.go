package sweepevents

import (
	"context"
	"encoding/json"
	e "reemind/internal/core/domain/errors"
	"reemind/internal/core/domain/logging"
	"reemind/internal/core/domain/reminder"

	"github.com/r3labs/sse/v2"
)

// StreamID is the SSE stream sweep outcomes are published to.
const StreamID = "sweep"

// SSE publishes per-record sweep outcomes to connected dashboards. The
// stream is fire-and-forget; a sweep never waits for subscribers.
type SSE struct {
	log       logging.Logger
	sseServer *sse.Server
}

func NewSSE(log logging.Logger, sseServer *sse.Server) *SSE {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	return &SSE{log: log, sseServer: sseServer}
}

func (s *SSE) PublishSweepEvent(ctx context.Context, event reminder.SweepEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("event", event))
		return
	}
	s.sseServer.TryPublish(StreamID, &sse.Event{Data: data})
}
