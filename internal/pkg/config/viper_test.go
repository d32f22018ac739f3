package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
app:
  name: sentinel
mail:
  host: smtp.example.com
  port: 2525
  secure: false
  timeout_seconds: 5
instrument:
  log_mask_fields: "password, otp ,,token"
  ratio: 0.25
modules:
  notification:
    cors: [ "https://a.example.com", " ", "https://b.example.com" ]
`

func TestNewViperFromBytes(t *testing.T) {
	cfg, err := NewViperFromBytes("yaml", []byte(sampleYAML))
	require.NoError(t, err)
	defer cfg.Close()

	assert.Equal(t, "sentinel", cfg.GetString("app.name"))
	assert.Equal(t, 2525, cfg.GetInt("mail.port"))
	assert.False(t, cfg.GetBool("mail.secure"))
	assert.Equal(t, 5*time.Second, cfg.GetSecond("mail.timeout_seconds"))
	assert.InDelta(t, 0.25, cfg.GetFloat64("instrument.ratio"), 0.0001)
	assert.Equal(t, []string{"password", "otp", "token"}, cfg.GetArray("instrument.log_mask_fields"))
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.GetArray("modules.notification.cors"))
	assert.Nil(t, cfg.GetArray("missing.key"))
	assert.True(t, cfg.IsSet("mail.host"))
	assert.False(t, cfg.IsSet("mail.username"))
}

func TestNewViperFromBytes_Errors(t *testing.T) {
	_, err := NewViperFromBytes(" ", []byte(sampleYAML))
	assert.ErrorIs(t, err, ErrConfigTypeRequired)

	_, err = NewViperFromBytes("yaml", []byte("mail: [unclosed"))
	assert.Error(t, err)
}

func TestViper_EnvOverride(t *testing.T) {
	t.Setenv("MAIL_HOST", "smtp.env.example.com")

	cfg, err := NewViperFromBytes("yaml", []byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "smtp.env.example.com", cfg.GetString("mail.host"))
}

func TestViper_EnvAliasAndDefault(t *testing.T) {
	t.Setenv("SMTP_USER", "sender@example.com")
	t.Setenv("SMTP_SECURE", "true")

	cfg, err := NewViperFromBytes("yaml", []byte(sampleYAML),
		WithEnvAlias("mail.username", "MAIL_USERNAME", "SMTP_USER"),
		WithEnvAlias("mail.secure", "MAIL_SECURE", "SMTP_SECURE"),
		WithDefault("mail.from_name", "Sentinel Healthcare"),
		nil,
	)
	require.NoError(t, err)

	assert.Equal(t, "sender@example.com", cfg.GetString("mail.username"))
	assert.True(t, cfg.GetBool("mail.secure"))
	assert.Equal(t, "Sentinel Healthcare", cfg.GetString("mail.from_name"))
}

func TestNewViper(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(sampleYAML), 0o600))

	cfg, err := NewViper(file)
	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com", cfg.GetString("mail.host"))

	_, err = NewViper(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
