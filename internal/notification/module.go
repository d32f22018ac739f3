package notification

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/sentinel/internal/notification/inbound"
	"github.com/shandysiswandi/sentinel/internal/notification/outbound/auditlog"
	"github.com/shandysiswandi/sentinel/internal/notification/outbound/email"
	"github.com/shandysiswandi/sentinel/internal/notification/usecase"
	"github.com/shandysiswandi/sentinel/internal/pkg/config"
	"github.com/shandysiswandi/sentinel/internal/pkg/goroutine"
	"github.com/shandysiswandi/sentinel/internal/pkg/instrument"
	"github.com/shandysiswandi/sentinel/internal/pkg/messaging"
	"github.com/shandysiswandi/sentinel/internal/pkg/router"
	"github.com/shandysiswandi/sentinel/internal/pkg/uid"
	"github.com/shandysiswandi/sentinel/internal/pkg/validator"
)

type Dependency struct {
	Ctx        context.Context
	Consumer   messaging.Consumer
	Config     config.Config
	Instrument instrument.Instrumentation
	UUID       uid.StringID
	Goroutine  *goroutine.Manager
	Validator  validator.Validator
	Router     *router.Router
	Logger     *slog.Logger
}

// New wires the notification module and returns its usecase so operational
// commands can call it directly.
func New(dep Dependency) (*usecase.Usecase, error) {
	uc := usecase.NewNotification(usecase.Dependency{
		Config:     dep.Config,
		Validator:  dep.Validator,
		RepoMail:   email.New(dep.Instrument),
		RepoAudit:  auditlog.New(dep.Config, dep.Logger),
		Instrument: dep.Instrument,
	})

	if dep.Router != nil {
		inbound.RegisterHTTPEndpoint(dep.Router, uc, dep.Validator)
	}
	if dep.Ctx != nil && dep.Consumer != nil {
		inbound.RegisterMQConsumer(dep.Ctx, dep.Config, dep.Goroutine, dep.Consumer, dep.UUID, uc, dep.Instrument)
	}

	return uc, nil
}
