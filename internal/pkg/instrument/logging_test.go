package instrument

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestHandler_MasksConfiguredFields(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, "sentinel", "info", nil, []string{"OTP", " password "}))

	logger.Info("fallback",
		"to", "patient@example.com",
		"otp", "482913",
		"payload", `{"password":"secret","name":"Alex"}`,
		slog.Group("auth", slog.String("password", "p4ss")),
	)

	line := decodeLine(t, &buf)
	assert.Equal(t, "***", line["otp"])
	assert.Equal(t, "patient@example.com", line["to"])
	assert.JSONEq(t, `{"password":"***","name":"Alex"}`, line["payload"].(string))
	assert.Equal(t, map[string]any{"password": "***"}, line["auth"])
	assert.Equal(t, "sentinel", line["service"])
	assert.Equal(t, "INFO", line["severity"])
	assert.Contains(t, line, "ts")
}

func TestHandler_WithoutMaskFieldsKeepsValues(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, "", "", nil, nil))

	logger.Info("sent", "otp", "482913")

	line := decodeLine(t, &buf)
	assert.Equal(t, "482913", line["otp"])
	assert.NotContains(t, line, "service")
}

func TestHandler_AddsCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, "sentinel", "info", nil, nil))

	ctx := SetCorrelationID(context.Background(), "cid-123")
	logger.InfoContext(ctx, "hello")

	line := decodeLine(t, &buf)
	assert.Equal(t, "cid-123", line["_cID"])
}

func TestHandler_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, "sentinel", "error", nil, nil))

	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	logger.Error("kept")
	assert.NotZero(t, buf.Len())
}

func TestGetCorrelationID_Empty(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
}
