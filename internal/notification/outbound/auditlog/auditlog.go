package auditlog

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/sentinel/internal/notification/entity"
	"github.com/shandysiswandi/sentinel/internal/pkg/config"
)

const keyDiscloseOTP = "modules.notification.audit.disclose_otp"

// Log writes delivery audit records to the operational log.
//
// Skip and fallback records carry the OTP so an operator can complete a login
// by hand. Setting modules.notification.audit.disclose_otp to false replaces
// it with a placeholder.
type Log struct {
	cfg    config.Config
	logger *slog.Logger
}

// New returns a Log writing to logger, or to the default logger when logger is nil.
func New(cfg config.Config, logger *slog.Logger) *Log {
	return &Log{cfg: cfg, logger: logger}
}

func (l *Log) Skipped(ctx context.Context, rec entity.AuditRecord) {
	l.log().WarnContext(ctx, "otp email not sent, smtp transport not configured",
		"to", rec.Destination,
		"subject", rec.Subject,
		"otp", l.code(rec.Code),
		"smtp_user_set", rec.IdentitySet,
		"smtp_pass_set", rec.SecretSet,
	)
}

func (l *Log) Sent(ctx context.Context, rec entity.AuditRecord) {
	l.log().InfoContext(ctx, "otp email sent",
		"to", rec.Destination,
		"subject", rec.Subject,
		"message_id", rec.MessageID,
	)
}

func (l *Log) Fallback(ctx context.Context, rec entity.AuditRecord) {
	l.log().ErrorContext(ctx, "otp email delivery failed, otp is still valid",
		"to", rec.Destination,
		"subject", rec.Subject,
		"otp", l.code(rec.Code),
		"error", rec.Err,
	)
}

func (l *Log) log() *slog.Logger {
	if l.logger != nil {
		return l.logger
	}
	return slog.Default()
}

func (l *Log) code(code string) string {
	if l.cfg != nil && l.cfg.IsSet(keyDiscloseOTP) && !l.cfg.GetBool(keyDiscloseOTP) {
		return "[withheld]"
	}
	return code
}
