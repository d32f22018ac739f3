package auditlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/shandysiswandi/sentinel/internal/notification/entity"
	"github.com/shandysiswandi/sentinel/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLog(t *testing.T, yaml string) (*Log, *bytes.Buffer) {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(yaml))
	require.NoError(t, err)

	var buf bytes.Buffer
	return New(cfg, slog.New(slog.NewJSONHandler(&buf, nil))), &buf
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestLog_Skipped(t *testing.T) {
	l, buf := newTestLog(t, `app: {}`)

	l.Skipped(context.Background(), entity.AuditRecord{
		Destination: "patient@example.com",
		Subject:     "Sentinel Login OTP",
		Code:        "482913",
		IdentitySet: true,
	})

	line := decode(t, buf)
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, "patient@example.com", line["to"])
	assert.Equal(t, "Sentinel Login OTP", line["subject"])
	assert.Equal(t, "482913", line["otp"])
	assert.Equal(t, true, line["smtp_user_set"])
	assert.Equal(t, false, line["smtp_pass_set"])
}

func TestLog_Sent(t *testing.T) {
	l, buf := newTestLog(t, `app: {}`)

	l.Sent(context.Background(), entity.AuditRecord{Destination: "patient@example.com", MessageID: "abc123"})

	line := decode(t, buf)
	assert.Equal(t, "INFO", line["level"])
	assert.Equal(t, "abc123", line["message_id"])
	assert.NotContains(t, line, "otp")
}

func TestLog_Fallback(t *testing.T) {
	t.Run("DisclosesOTPByDefault", func(t *testing.T) {
		l, buf := newTestLog(t, `app: {}`)

		l.Fallback(context.Background(), entity.AuditRecord{
			Destination: "patient@example.com",
			Subject:     "Your Sentinel Login OTP Code",
			Code:        "482913",
			Err:         errors.New("auth rejected"),
		})

		line := decode(t, buf)
		assert.Equal(t, "ERROR", line["level"])
		assert.Equal(t, "482913", line["otp"])
		assert.Equal(t, "auth rejected", line["error"])
	})

	t.Run("WithheldWhenDisabled", func(t *testing.T) {
		l, buf := newTestLog(t, `
modules:
  notification:
    audit:
      disclose_otp: false
`)

		l.Fallback(context.Background(), entity.AuditRecord{Code: "482913", Err: errors.New("auth rejected")})

		line := decode(t, buf)
		assert.Equal(t, "[withheld]", line["otp"])
	})
}

func TestLog_DefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	New(nil, nil).Sent(context.Background(), entity.AuditRecord{MessageID: "abc123"})

	assert.Equal(t, "abc123", decode(t, &buf)["message_id"])
}
