package usecase

import (
	"context"

	"github.com/samber/lo"
	"github.com/shandysiswandi/sentinel/internal/notification/entity"
	"github.com/shandysiswandi/sentinel/internal/pkg/mail"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type SendOTPInput struct {
	Destination    string
	Code           string
	RecipientLabel string
}

// SendOTP delivers a login OTP by email.
//
// It never returns an error. Without complete credentials nothing is sent and
// the result still reports success; a transport failure is reported in the
// result and the OTP is written to the fallback audit record.
func (s *Usecase) SendOTP(ctx context.Context, in SendOTPInput) entity.DeliveryResult {
	ctx, span := s.startSpan(ctx, "SendOTP")
	defer span.End()

	tc := s.Resolve()
	span.SetAttributes(
		attribute.String("mail.host", tc.Host),
		attribute.Int("mail.port", tc.Port),
		attribute.Bool("mail.secure", tc.Secure),
	)

	if !tc.Credentials.Complete() {
		s.repoAudit.Skipped(ctx, entity.AuditRecord{
			Destination: in.Destination,
			Subject:     subjectOTPSkipped,
			Code:        in.Code,
			IdentitySet: tc.Credentials.Identity != "",
			SecretSet:   tc.Credentials.Secret != "",
		})
		s.countDelivery(ctx, entity.OutcomeSkipped)

		return entity.DeliveryResult{Succeeded: true, Narrative: entity.NarrativeSkipped}
	}

	messageID, err := s.deliverOTP(ctx, tc, in)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		s.repoAudit.Fallback(ctx, entity.AuditRecord{
			Destination: in.Destination,
			Subject:     subjectOTP,
			Code:        in.Code,
			Err:         err,
		})
		s.countDelivery(ctx, entity.OutcomeFailed)

		return entity.DeliveryResult{Succeeded: false, ErrorDetail: err.Error(), Narrative: entity.NarrativeFailed}
	}

	s.repoAudit.Sent(ctx, entity.AuditRecord{
		Destination: in.Destination,
		Subject:     subjectOTP,
		MessageID:   messageID,
	})
	s.countDelivery(ctx, entity.OutcomeSent)

	return entity.DeliveryResult{Succeeded: true, DiagnosticID: messageID, Narrative: entity.NarrativeSent}
}

func (s *Usecase) deliverOTP(ctx context.Context, tc entity.TransportConfig, in SendOTPInput) (string, error) {
	html, text := renderOTPEmail(lo.CoalesceOrEmpty(in.RecipientLabel, "there"), in.Code)

	return s.repoMail.Send(ctx, tc, mail.Message{
		From:     tc.From,
		FromName: tc.FromName,
		To:       []string{in.Destination},
		Subject:  subjectOTP,
		TextBody: text,
		HTMLBody: html,
	})
}
