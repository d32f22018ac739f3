package inbound

import (
	"context"
	"log/slog"
	"slices"

	"github.com/shandysiswandi/sentinel/internal/pkg/config"
	"github.com/shandysiswandi/sentinel/internal/pkg/goroutine"
	"github.com/shandysiswandi/sentinel/internal/pkg/instrument"
	"github.com/shandysiswandi/sentinel/internal/pkg/messaging"
	"github.com/shandysiswandi/sentinel/internal/pkg/uid"
	"github.com/shandysiswandi/sentinel/internal/shared/event"
)

const defaultConsumerConcurrency = 10

func RegisterMQConsumer(
	ctx context.Context,
	cfg config.Config,
	routine *goroutine.Manager,
	consumer messaging.Consumer,
	uuid uid.StringID,
	uc ucConsumer,
	ins instrument.Instrumentation,
) {
	mqHandler := &MQHandler{uc: uc, uuid: uuid, ins: ins}

	enabled := cfg.GetArray("modules.notification.consumer_names")
	concurrency := cfg.GetInt("modules.notification.consumer_concurrency")
	if concurrency <= 0 {
		concurrency = defaultConsumerConcurrency
	}

	var consumers = []struct {
		name    string
		topic   string // destination where publisher sent message
		group   string // kafka consumer group, nats queue group
		handler messaging.Handler
	}{
		{
			name:    event.LoginOTPRequestedConsumerNotification,
			topic:   event.LoginOTPRequestedDestination,
			group:   event.LoginOTPRequestedConsumerNotification,
			handler: mqHandler.LoginOTPRequestedNotification,
		},
	}

	for _, c := range consumers {
		if !slices.Contains(enabled, c.name) {
			continue
		}

		ok := routine.Go(ctx, func(pCtx context.Context) error {
			slog.InfoContext(pCtx, "running job for handling consumer", "consumer", c.name)
			return consumer.Consume(pCtx,
				c.topic,
				c.handler,
				messaging.WithGroup(c.group),
				messaging.WithAutoAck(true),
				messaging.WithConcurrency(concurrency),
			)
		})
		if !ok {
			slog.WarnContext(ctx, "consumer not started", "consumer", c.name)
		}
	}
}
