package email

import (
	"context"

	"github.com/shandysiswandi/sentinel/internal/notification/entity"
	"github.com/shandysiswandi/sentinel/internal/pkg/instrument"
	"github.com/shandysiswandi/sentinel/internal/pkg/mail"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type clientFactory func(cfg mail.SMTPConfig) (mail.Mail, error)

// Mail opens a fresh SMTP client for every call, so a configuration change is
// picked up by the next delivery.
type Mail struct {
	newClient clientFactory
	ins       instrument.Instrumentation
}

func New(ins instrument.Instrumentation) *Mail {
	return &Mail{
		newClient: func(cfg mail.SMTPConfig) (mail.Mail, error) { return mail.NewSMTP(cfg) },
		ins:       ins,
	}
}

func (m *Mail) Send(ctx context.Context, tc entity.TransportConfig, msg mail.Message) (string, error) {
	ctx, span := m.startSpan(ctx, "Send", tc)
	defer span.End()

	client, err := m.newClient(smtpConfig(tc))
	if err != nil {
		return "", fail(span, err)
	}
	defer client.Close()

	receipt, err := client.Send(ctx, msg)
	if err != nil {
		return "", fail(span, err)
	}

	span.SetAttributes(attribute.String("mail.message_id", receipt.MessageID))
	return receipt.MessageID, nil
}

func (m *Mail) Verify(ctx context.Context, tc entity.TransportConfig) error {
	ctx, span := m.startSpan(ctx, "Verify", tc)
	defer span.End()

	client, err := m.newClient(smtpConfig(tc))
	if err != nil {
		return fail(span, err)
	}
	defer client.Close()

	if err := client.Verify(ctx); err != nil {
		return fail(span, err)
	}

	return nil
}

func (m *Mail) startSpan(ctx context.Context, name string, tc entity.TransportConfig) (context.Context, trace.Span) {
	return m.ins.Tracer("notification.outbound.email").Start(ctx, name, trace.WithAttributes(
		attribute.String("mail.host", tc.Host),
		attribute.Int("mail.port", tc.Port),
		attribute.Bool("mail.implicit_tls", tc.Secure),
	))
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func smtpConfig(tc entity.TransportConfig) mail.SMTPConfig {
	return mail.SMTPConfig{
		Host:        tc.Host,
		Port:        tc.Port,
		Username:    tc.Credentials.Identity,
		Password:    tc.Credentials.Secret,
		From:        tc.From,
		ImplicitTLS: tc.Secure,
		Timeout:     tc.Timeout,
		MaxAttempts: tc.MaxAttempts,
	}
}
