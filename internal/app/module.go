package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/sentinel/internal/notification"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.notification.enabled") {
		uc, err := notification.New(notification.Dependency{
			Ctx:        a.ctx,
			Consumer:   a.consumer,
			Config:     a.config,
			Instrument: a.ins,
			UUID:       a.uuid,
			Goroutine:  a.goroutine,
			Validator:  a.validator,
			Router:     a.router,
		})
		if err != nil {
			slog.Error("failed to init module notification", "error", err)
			os.Exit(1)
		}
		a.notification = uc
	}
}
