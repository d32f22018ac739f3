package usecase

import (
	"time"

	"github.com/samber/lo"
	"github.com/shandysiswandi/sentinel/internal/notification/entity"
)

const (
	defaultMailHost     = "smtp.gmail.com"
	defaultMailPort     = 587
	defaultMailFromName = "Sentinel Healthcare"
	defaultMailTimeout  = 10 * time.Second
)

// Resolve reads the SMTP transport configuration from the current config snapshot.
//
// It never fails: missing values fall back to defaults and missing credentials
// are reported through Credentials.Complete.
func (s *Usecase) Resolve() entity.TransportConfig {
	identity := s.cfg.GetString("mail.username")
	port := s.cfg.GetInt("mail.port")
	timeout := s.cfg.GetSecond("mail.timeout_seconds")
	attempts := s.cfg.GetInt("mail.retry.max_attempts")

	return entity.TransportConfig{
		Host:   lo.CoalesceOrEmpty(s.cfg.GetString("mail.host"), defaultMailHost),
		Port:   lo.Ternary(port > 0, port, defaultMailPort),
		Secure: s.cfg.GetString("mail.secure") == "true",
		Credentials: entity.Credentials{
			Identity: identity,
			Secret:   s.cfg.GetString("mail.password"),
		},
		From:        lo.CoalesceOrEmpty(s.cfg.GetString("mail.from"), identity),
		FromName:    lo.CoalesceOrEmpty(s.cfg.GetString("mail.from_name"), defaultMailFromName),
		Timeout:     lo.Ternary(timeout > 0, timeout, defaultMailTimeout),
		MaxAttempts: lo.Ternary(attempts > 0, attempts, 1),
	}
}
