package usecase

import (
	"context"

	"github.com/shandysiswandi/sentinel/internal/notification/entity"
	"github.com/shandysiswandi/sentinel/internal/pkg/config"
	"github.com/shandysiswandi/sentinel/internal/pkg/instrument"
	"github.com/shandysiswandi/sentinel/internal/pkg/mail"
	"github.com/shandysiswandi/sentinel/internal/pkg/validator"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

type repoMail interface {
	Send(ctx context.Context, tc entity.TransportConfig, msg mail.Message) (string, error)
	Verify(ctx context.Context, tc entity.TransportConfig) error
}

type repoAudit interface {
	Skipped(ctx context.Context, rec entity.AuditRecord)
	Sent(ctx context.Context, rec entity.AuditRecord)
	Fallback(ctx context.Context, rec entity.AuditRecord)
}

type Usecase struct {
	cfg        config.Config
	validator  validator.Validator
	repoMail   repoMail
	repoAudit  repoAudit
	ins        instrument.Instrumentation
	deliveries metric.Int64Counter
}

type Dependency struct {
	Config     config.Config
	Validator  validator.Validator
	RepoMail   repoMail
	RepoAudit  repoAudit
	Instrument instrument.Instrumentation
}

func NewNotification(dep Dependency) *Usecase {
	ins := dep.Instrument
	if ins == nil {
		ins = instrument.NewNoop()
	}

	deliveries, err := ins.Meter("notification.usecase").Int64Counter(
		"notification.otp.deliveries",
		metric.WithDescription("OTP email deliveries by outcome"),
	)
	if err != nil {
		deliveries = noop.Int64Counter{}
	}

	return &Usecase{
		cfg:        dep.Config,
		validator:  dep.Validator,
		repoMail:   dep.RepoMail,
		repoAudit:  dep.RepoAudit,
		ins:        ins,
		deliveries: deliveries,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("notification.usecase").Start(ctx, name)
}

func (s *Usecase) countDelivery(ctx context.Context, outcome entity.Outcome) {
	s.deliveries.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", string(outcome))))
}
