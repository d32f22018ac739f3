package mail

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"net/textproto"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sethvargo/go-retry"
)

var (
	// ErrSMTPHostPortRequired is returned when Host/Port are missing.
	ErrSMTPHostPortRequired = errors.New("smtp host and port are required")
	// ErrSMTPNoRecipients is returned when To/Cc/Bcc are all empty.
	ErrSMTPNoRecipients = errors.New("no recipients provided")
	// ErrSMTPNoSender is returned when both Message.From and the configured default From are empty.
	ErrSMTPNoSender = errors.New("no sender provided")
	// ErrSMTPAuthUnsupported is returned when credentials are configured but the server does not offer AUTH.
	ErrSMTPAuthUnsupported = errors.New("smtp server does not support authentication")
)

const (
	defaultSMTPTimeout  = 10 * time.Second
	defaultRetryBackoff = 200 * time.Millisecond
	maxRetryBackoff     = 2 * time.Second
)

// SMTPConfig configures the SMTP implementation.
type SMTPConfig struct {
	// Host is the SMTP server hostname.
	Host string
	// Port is the SMTP server port.
	Port int
	// Username is the SMTP authentication username.
	Username string
	// Password is the SMTP authentication password.
	Password string
	// From is the default sender when Message.From is empty.
	From string
	// ImplicitTLS dials with TLS from the first byte (port 465 style).
	// When false, STARTTLS is negotiated if the server offers it.
	ImplicitTLS bool
	// Timeout bounds a whole Send or Verify call. Defaults to 10s.
	Timeout time.Duration
	// MaxAttempts is the number of delivery attempts for transient failures. Defaults to 1.
	MaxAttempts int
	// HelloName is the name announced in EHLO. Defaults to "localhost".
	HelloName string
	// TLSConfig overrides the TLS client configuration.
	TLSConfig *tls.Config
}

// SMTP is a Mail implementation backed by net/smtp.
//
// Each Send and Verify call uses its own connection, so an SMTP value holds
// no network state and Close is a no-op.
type SMTP struct {
	addr        string
	host        string
	defaultFrom string
	auth        smtp.Auth
	implicitTLS bool
	timeout     time.Duration
	maxAttempts int
	helloName   string
	tlsConfig   *tls.Config
	now         func() time.Time
	newID       func() string
}

// NewSMTP constructs an SMTP mail sender.
func NewSMTP(cfg SMTPConfig) (*SMTP, error) {
	if cfg.Host == "" || cfg.Port <= 0 {
		return nil, ErrSMTPHostPortRequired
	}

	var auth smtp.Auth
	if cfg.Username != "" && cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	tlsConfig := cfg.TLSConfig
	if tlsConfig == nil {
		tlsConfig = &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}
	}

	return &SMTP{
		addr:        net.JoinHostPort(cfg.Host, fmt.Sprint(cfg.Port)),
		host:        cfg.Host,
		defaultFrom: cfg.From,
		auth:        auth,
		implicitTLS: cfg.ImplicitTLS,
		timeout:     lo.Ternary(cfg.Timeout > 0, cfg.Timeout, defaultSMTPTimeout),
		maxAttempts: max(cfg.MaxAttempts, 1),
		helloName:   lo.CoalesceOrEmpty(cfg.HelloName, "localhost"),
		tlsConfig:   tlsConfig,
		now:         time.Now,
		newID:       uuid.NewString,
	}, nil
}

// Send delivers a message over SMTP and returns the Message-ID it was submitted with.
func (s *SMTP) Send(ctx context.Context, msg Message) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}

	recipients := lo.Uniq(lo.Compact(lo.Flatten([][]string{msg.To, msg.Cc, msg.Bcc})))
	if len(recipients) == 0 {
		return Receipt{}, ErrSMTPNoRecipients
	}

	from := lo.CoalesceOrEmpty(msg.From, s.defaultFrom)
	if from == "" {
		return Receipt{}, ErrSMTPNoSender
	}

	messageID := fmt.Sprintf("<%s@%s>", s.newID(), messageIDDomain(from))
	raw, err := buildMessage(msg, from, messageID, s.now())
	if err != nil {
		return Receipt{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	backoff := retry.WithMaxRetries(uint64(s.maxAttempts-1),
		retry.WithCappedDuration(maxRetryBackoff, retry.NewFibonacci(defaultRetryBackoff)))

	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := s.deliver(ctx, from, recipients, raw); err != nil {
			if ctx.Err() == nil && isTransient(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return Receipt{}, err
	}

	return Receipt{MessageID: messageID}, nil
}

// Verify connects, negotiates TLS and authenticates without sending a message.
func (s *SMTP) Verify(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	sess, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer sess.close()

	return sess.client.Quit()
}

// Close implements io.Closer.
func (s *SMTP) Close() error {
	return nil
}

func (s *SMTP) deliver(ctx context.Context, from string, recipients []string, raw []byte) error {
	sess, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer sess.close()

	c := sess.client
	if err := c.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range recipients {
		if err := c.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(raw); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	// the message is accepted once DATA completes
	_ = c.Quit()
	return nil
}

type session struct {
	client *smtp.Client
	stop   func() bool
}

func (s *session) close() {
	s.stop()
	_ = s.client.Close()
}

// open dials the server and runs the greeting, TLS and AUTH steps. The
// connection is closed as soon as ctx is done.
func (s *SMTP) open(ctx context.Context) (*session, error) {
	dialer := &net.Dialer{}

	var (
		conn net.Conn
		err  error
	)
	if s.implicitTLS {
		conn, err = (&tls.Dialer{NetDialer: dialer, Config: s.tlsConfig}).DialContext(ctx, "tcp", s.addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", s.addr)
	}
	if err != nil {
		return nil, err
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })

	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		stop()
		_ = conn.Close()
		return nil, err
	}

	sess := &session{client: c, stop: stop}
	if err := s.handshake(c); err != nil {
		sess.close()
		return nil, err
	}

	return sess, nil
}

func (s *SMTP) handshake(c *smtp.Client) error {
	if err := c.Hello(s.helloName); err != nil {
		return err
	}

	if !s.implicitTLS {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err := c.StartTLS(s.tlsConfig); err != nil {
				return err
			}
		}
	}

	if s.auth == nil {
		return nil
	}
	if ok, _ := c.Extension("AUTH"); !ok {
		return ErrSMTPAuthUnsupported
	}

	return c.Auth(s.auth)
}

// isTransient reports whether err is worth another attempt: 4xx replies and network timeouts.
func isTransient(err error) bool {
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) {
		return tpErr.Code >= 400 && tpErr.Code < 500
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
