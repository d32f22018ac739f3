package usecase

import (
	"context"
	"log/slog"
)

// VerifyTransport reports whether the SMTP transport accepts a connection and
// the configured credentials. No message is sent.
func (s *Usecase) VerifyTransport(ctx context.Context) bool {
	ctx, span := s.startSpan(ctx, "VerifyTransport")
	defer span.End()

	tc := s.Resolve()
	if !tc.Credentials.Complete() {
		slog.WarnContext(ctx, "smtp transport not configured, skipping verification",
			"smtp_user_set", tc.Credentials.Identity != "",
			"smtp_pass_set", tc.Credentials.Secret != "",
		)
		return false
	}

	if err := s.repoMail.Verify(ctx, tc); err != nil {
		slog.ErrorContext(ctx, "failed to verify smtp transport", "host", tc.Host, "port", tc.Port, "error", err)
		return false
	}

	slog.InfoContext(ctx, "smtp transport verified", "host", tc.Host, "port", tc.Port)
	return true
}
