package messaging

import (
	"context"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/notify"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"
)

type logPublisher struct {
	logger logger.Logger
}

// NewLogPublisher creates a Publisher that only writes events to the log.
func NewLogPublisher(logger logger.Logger) notify.Publisher {
	return &logPublisher{logger: logger}
}

func (p *logPublisher) Publish(_ context.Context, event notify.Event) error {
	p.logger.Info("Event", "type", event.Type, "occurredAt", event.OccurredAt)
	return nil
}

func (p *logPublisher) Close() error {
	return nil
}
