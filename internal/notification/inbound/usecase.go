package inbound

import (
	"context"

	"github.com/shandysiswandi/sentinel/internal/notification/entity"
	"github.com/shandysiswandi/sentinel/internal/notification/usecase"
)

type ucConsumer interface {
	ConsumeLoginOTPRequested(ctx context.Context, in usecase.ConsumeLoginOTPRequestedInput)
}

type uc interface {
	ucConsumer

	SendOTP(ctx context.Context, in usecase.SendOTPInput) entity.DeliveryResult
	VerifyTransport(ctx context.Context) bool
}
