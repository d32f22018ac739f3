package entity

import "time"

// Credentials are the SMTP AUTH identity and secret. Either may be empty.
type Credentials struct {
	Identity string
	Secret   string
}

// Complete reports whether both the identity and the secret are present.
func (c Credentials) Complete() bool {
	return c.Identity != "" && c.Secret != ""
}

// TransportConfig is the resolved SMTP transport configuration for one call.
type TransportConfig struct {
	Host        string
	Port        int
	Secure      bool
	Credentials Credentials

	From        string
	FromName    string
	Timeout     time.Duration
	MaxAttempts int
}
