package app

import (
	"context"
	"errors"
	"log/slog"
)

var errNotificationDisabled = errors.New("notification module is disabled")

// VerifyMail checks the SMTP transport once and reports whether it is usable.
func (a *App) VerifyMail(ctx context.Context) bool {
	if a.notification == nil {
		slog.ErrorContext(ctx, "failed to verify mail", "error", errNotificationDisabled)
		return false
	}

	return a.notification.VerifyTransport(ctx)
}

// IssueToken signs a service token for subject with the given scopes.
func (a *App) IssueToken(subject string, scopes ...string) (string, error) {
	if a.jwt == nil {
		a.initJWT()
	}

	return a.jwt.Generate(subject, scopes...)
}
