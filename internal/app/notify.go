package app

import (
	"context"
	"time"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/notify"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"
)

const publishTimeout = 5 * time.Second

// publish sends event without letting a broker outage fail the request.
func publish(ctx context.Context, publisher notify.Publisher, logger logger.Logger, event notify.Event) {
	if publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish event", "type", event.Type, "error", err)
	}
}
