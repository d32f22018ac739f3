package usecase

import (
	"context"
	"log/slog"
)

type ConsumeLoginOTPRequestedInput struct {
	Email    string `validate:"required,email"`
	OTP      string `validate:"required,otp"`
	FullName string `validate:"omitempty,max=200,nocontrol"`
}

// ConsumeLoginOTPRequested handles the login flow's OTP event. Invalid events
// are dropped and a failed delivery is left to the fallback audit record.
func (s *Usecase) ConsumeLoginOTPRequested(ctx context.Context, in ConsumeLoginOTPRequestedInput) {
	ctx, span := s.startSpan(ctx, "ConsumeLoginOTPRequested")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "validation failed", "error", err)
		return
	}

	result := s.SendOTP(ctx, SendOTPInput{
		Destination:    in.Email,
		Code:           in.OTP,
		RecipientLabel: in.FullName,
	})

	slog.InfoContext(ctx, "login otp event handled",
		"to", in.Email,
		"succeeded", result.Succeeded,
		"narrative", result.Narrative,
		"message_id", result.DiagnosticID,
	)
}
