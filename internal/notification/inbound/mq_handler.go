package inbound

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/shandysiswandi/sentinel/internal/notification/usecase"
	"github.com/shandysiswandi/sentinel/internal/pkg/instrument"
	"github.com/shandysiswandi/sentinel/internal/pkg/messaging"
	"github.com/shandysiswandi/sentinel/internal/pkg/router"
	"github.com/shandysiswandi/sentinel/internal/pkg/uid"
	"github.com/shandysiswandi/sentinel/internal/shared/event"
)

const keyOfCorrelationID string = "cID"

type MQHandler struct {
	uc   ucConsumer
	uuid uid.StringID
	ins  instrument.Instrumentation
}

func (h *MQHandler) ensureCorrelationID(ctx context.Context, headers []messaging.Header) context.Context {
	for i := range headers {
		if headers[i].Key != keyOfCorrelationID {
			continue
		}
		if cid := router.NormalizeCorrelationID(string(headers[i].Value)); cid != "" {
			return instrument.SetCorrelationID(ctx, cid)
		}
	}
	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

// LoginOTPRequestedNotification never asks for redelivery: the OTP is still
// valid when delivery fails and the fallback audit record carries it.
func (h *MQHandler) LoginOTPRequestedNotification(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, "LoginOTPRequestedNotification")
	defer span.End()

	slog.InfoContext(ctx, "consume: login otp requested notification", "source", msg.Source(), "msg_id", msg.ID())

	var payload event.LoginOTPRequestedMessage
	if err := json.Unmarshal(msg.Body(), &payload); err != nil {
		// the body carries the OTP
		slog.ErrorContext(ctx, "failed to parse message body of login otp requested notification", "msg_body_size", len(msg.Body()), "error", err)
		return nil
	}

	h.uc.ConsumeLoginOTPRequested(ctx, usecase.ConsumeLoginOTPRequestedInput{
		Email:    payload.Email,
		OTP:      payload.OTP,
		FullName: payload.FullName,
	})

	return nil
}
