package mail

import (
	"bufio"
	"context"
	"crypto/tls"
	"io"
	"mime"
	"mime/multipart"
	"net"
	"net/http"
	"net/http/httptest"
	netmail "net/mail"
	"net/textproto"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSMTP struct {
	ln        net.Listener
	offerAuth bool
	authOK    bool
	silent    bool
	rcptCodes []int
	tlsConfig *tls.Config

	mu       sync.Mutex
	conns    int
	rcpts    []string
	messages [][]byte
	authSeen bool
}

func newFakeSMTP(t *testing.T, configure func(*fakeSMTP)) *fakeSMTP {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	f := &fakeSMTP{ln: ln, offerAuth: true, authOK: true}
	if configure != nil {
		configure(f)
	}
	if f.tlsConfig != nil {
		f.ln = tls.NewListener(f.ln, f.tlsConfig)
	}
	t.Cleanup(func() { _ = f.ln.Close() })

	go f.serve()
	return f
}

func (f *fakeSMTP) port() int {
	return f.ln.Addr().(*net.TCPAddr).Port
}

func (f *fakeSMTP) serve() {
	for {
		conn, err := f.ln.Accept()
		if err != nil {
			return
		}
		go f.handle(conn)
	}
}

func (f *fakeSMTP) nextRcptCode() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.rcptCodes) == 0 {
		return 250
	}
	code := f.rcptCodes[0]
	f.rcptCodes = f.rcptCodes[1:]
	return code
}

func (f *fakeSMTP) handle(conn net.Conn) {
	defer conn.Close()

	f.mu.Lock()
	f.conns++
	f.mu.Unlock()

	if f.silent {
		_, _ = io.Copy(io.Discard, conn)
		return
	}

	tp := textproto.NewConn(conn)
	reply := func(code int, msg string) { _ = tp.PrintfLine("%d %s", code, msg) }

	reply(220, "localhost ESMTP fake")
	for {
		line, err := tp.ReadLine()
		if err != nil {
			return
		}

		verb, arg, _ := strings.Cut(line, " ")
		switch strings.ToUpper(verb) {
		case "EHLO":
			_ = tp.PrintfLine("250-localhost")
			if f.offerAuth {
				_ = tp.PrintfLine("250-AUTH PLAIN")
			}
			_ = tp.PrintfLine("250 8BITMIME")
		case "HELO":
			reply(250, "localhost")
		case "AUTH":
			f.mu.Lock()
			f.authSeen = true
			f.mu.Unlock()
			if f.authOK {
				reply(235, "2.7.0 Authentication successful")
			} else {
				reply(535, "5.7.8 auth rejected")
			}
		case "*":
			reply(501, "5.5.2 cancelled")
		case "MAIL", "RSET", "NOOP":
			reply(250, "2.0.0 OK")
		case "RCPT":
			code := f.nextRcptCode()
			if code == 250 {
				f.mu.Lock()
				f.rcpts = append(f.rcpts, strings.Trim(strings.TrimPrefix(arg, "TO:"), "<>"))
				f.mu.Unlock()
			}
			reply(code, strconv.Itoa(code)[:1]+".0.0 rcpt reply")
		case "DATA":
			reply(354, "end data with <CR><LF>.<CR><LF>")
			data, err := tp.ReadDotBytes()
			if err != nil {
				return
			}
			f.mu.Lock()
			f.messages = append(f.messages, data)
			f.mu.Unlock()
			reply(250, "2.0.0 OK queued")
		case "QUIT":
			reply(221, "2.0.0 bye")
			return
		default:
			reply(502, "5.5.2 command not recognized")
		}
	}
}

func (f *fakeSMTP) snapshot() (conns int, rcpts []string, messages [][]byte, authSeen bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.conns, append([]string(nil), f.rcpts...), append([][]byte(nil), f.messages...), f.authSeen
}

func newTestSMTP(t *testing.T, f *fakeSMTP, configure func(*SMTPConfig)) *SMTP {
	t.Helper()

	cfg := SMTPConfig{
		Host:     "127.0.0.1",
		Port:     f.port(),
		Username: "sender@example.com",
		Password: "app-password",
		From:     "sender@example.com",
		Timeout:  2 * time.Second,
	}
	if configure != nil {
		configure(&cfg)
	}

	s, err := NewSMTP(cfg)
	require.NoError(t, err)
	s.newID = func() string { return "0194f3c2-test" }
	return s
}

func TestNewSMTP(t *testing.T) {
	_, err := NewSMTP(SMTPConfig{Port: 587})
	assert.ErrorIs(t, err, ErrSMTPHostPortRequired)

	_, err = NewSMTP(SMTPConfig{Host: "smtp.example.com"})
	assert.ErrorIs(t, err, ErrSMTPHostPortRequired)

	s, err := NewSMTP(SMTPConfig{Host: "smtp.example.com", Port: 587})
	require.NoError(t, err)
	assert.Nil(t, s.auth)
	assert.Equal(t, defaultSMTPTimeout, s.timeout)
	assert.Equal(t, 1, s.maxAttempts)
	assert.Equal(t, "smtp.example.com:587", s.addr)
	assert.NoError(t, s.Close())
}

func TestSMTP_Send(t *testing.T) {
	f := newFakeSMTP(t, nil)
	s := newTestSMTP(t, f, nil)

	receipt, err := s.Send(context.Background(), Message{
		FromName: "Sentinel Healthcare",
		To:       []string{"patient@example.com"},
		Bcc:      []string{"audit@example.com", "patient@example.com", ""},
		Subject:  "Your Sentinel Login OTP Code",
		TextBody: "Your OTP is 482913",
		HTMLBody: "<p>Your OTP is <b>482913</b></p>",
	})
	require.NoError(t, err)
	assert.Equal(t, "<0194f3c2-test@example.com>", receipt.MessageID)

	_, rcpts, messages, authSeen := f.snapshot()
	assert.True(t, authSeen)
	assert.Equal(t, []string{"patient@example.com", "audit@example.com"}, rcpts)
	require.Len(t, messages, 1)

	parsed, err := netmail.ReadMessage(strings.NewReader(string(messages[0])))
	require.NoError(t, err)
	assert.Equal(t, receipt.MessageID, parsed.Header.Get("Message-ID"))
	assert.Equal(t, `"Sentinel Healthcare" <sender@example.com>`, parsed.Header.Get("From"))
	assert.Equal(t, "<patient@example.com>", parsed.Header.Get("To"))
	assert.Empty(t, parsed.Header.Get("Bcc"))

	subject, err := new(mime.WordDecoder).DecodeHeader(parsed.Header.Get("Subject"))
	require.NoError(t, err)
	assert.Equal(t, "Your Sentinel Login OTP Code", subject)

	mediaType, params, err := mime.ParseMediaType(parsed.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/alternative", mediaType)

	mr := multipart.NewReader(parsed.Body, params["boundary"])
	var bodies []string
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		body, err := io.ReadAll(part)
		require.NoError(t, err)
		bodies = append(bodies, string(body))
	}
	assert.Equal(t, []string{"Your OTP is 482913", "<p>Your OTP is <b>482913</b></p>"}, bodies)
}

func TestSMTP_Send_Validation(t *testing.T) {
	s, err := NewSMTP(SMTPConfig{Host: "127.0.0.1", Port: 1})
	require.NoError(t, err)

	_, err = s.Send(context.Background(), Message{Subject: "hi"})
	assert.ErrorIs(t, err, ErrSMTPNoRecipients)

	_, err = s.Send(context.Background(), Message{To: []string{"patient@example.com"}})
	assert.ErrorIs(t, err, ErrSMTPNoSender)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Send(ctx, Message{To: []string{"patient@example.com"}, From: "a@example.com"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSMTP_Send_AuthRejected(t *testing.T) {
	f := newFakeSMTP(t, func(f *fakeSMTP) { f.authOK = false })
	s := newTestSMTP(t, f, nil)

	_, err := s.Send(context.Background(), Message{To: []string{"patient@example.com"}, TextBody: "x"})
	require.Error(t, err)
	assert.Equal(t, "535 5.7.8 auth rejected", err.Error())

	_, _, messages, _ := f.snapshot()
	assert.Empty(t, messages)
}

func TestSMTP_Send_RetriesTransientFailure(t *testing.T) {
	f := newFakeSMTP(t, func(f *fakeSMTP) { f.rcptCodes = []int{451} })
	s := newTestSMTP(t, f, func(cfg *SMTPConfig) { cfg.MaxAttempts = 2 })

	_, err := s.Send(context.Background(), Message{To: []string{"patient@example.com"}, TextBody: "x"})
	require.NoError(t, err)

	conns, _, messages, _ := f.snapshot()
	assert.Equal(t, 2, conns)
	assert.Len(t, messages, 1)
}

func TestSMTP_Send_PermanentFailureIsNotRetried(t *testing.T) {
	f := newFakeSMTP(t, func(f *fakeSMTP) { f.rcptCodes = []int{550} })
	s := newTestSMTP(t, f, func(cfg *SMTPConfig) { cfg.MaxAttempts = 3 })

	_, err := s.Send(context.Background(), Message{To: []string{"patient@example.com"}, TextBody: "x"})
	require.Error(t, err)
	assert.Equal(t, "550 5.0.0 rcpt reply", err.Error())

	conns, _, _, _ := f.snapshot()
	assert.Equal(t, 1, conns)
}

func TestSMTP_Send_Timeout(t *testing.T) {
	f := newFakeSMTP(t, func(f *fakeSMTP) { f.silent = true })
	s := newTestSMTP(t, f, func(cfg *SMTPConfig) { cfg.Timeout = 150 * time.Millisecond })

	start := time.Now()
	_, err := s.Send(context.Background(), Message{To: []string{"patient@example.com"}, TextBody: "x"})
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestSMTP_Verify(t *testing.T) {
	t.Run("accepted credentials", func(t *testing.T) {
		f := newFakeSMTP(t, nil)
		s := newTestSMTP(t, f, nil)

		assert.NoError(t, s.Verify(context.Background()))
		_, _, messages, authSeen := f.snapshot()
		assert.True(t, authSeen)
		assert.Empty(t, messages)
	})

	t.Run("rejected credentials", func(t *testing.T) {
		f := newFakeSMTP(t, func(f *fakeSMTP) { f.authOK = false })
		s := newTestSMTP(t, f, nil)

		err := s.Verify(context.Background())
		require.Error(t, err)
		assert.Equal(t, "535 5.7.8 auth rejected", err.Error())
	})

	t.Run("server without auth", func(t *testing.T) {
		f := newFakeSMTP(t, func(f *fakeSMTP) { f.offerAuth = false })
		s := newTestSMTP(t, f, nil)

		assert.ErrorIs(t, s.Verify(context.Background()), ErrSMTPAuthUnsupported)
	})

	t.Run("no credentials skips auth", func(t *testing.T) {
		f := newFakeSMTP(t, func(f *fakeSMTP) { f.offerAuth = false })
		s := newTestSMTP(t, f, func(cfg *SMTPConfig) { cfg.Username, cfg.Password = "", "" })

		assert.NoError(t, s.Verify(context.Background()))
	})

	t.Run("unreachable", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		port := ln.Addr().(*net.TCPAddr).Port
		require.NoError(t, ln.Close())

		s, err := NewSMTP(SMTPConfig{Host: "127.0.0.1", Port: port, Timeout: time.Second})
		require.NoError(t, err)
		assert.Error(t, s.Verify(context.Background()))
	})
}

func TestSMTP_ImplicitTLS(t *testing.T) {
	srv := httptest.NewTLSServer(http.NotFoundHandler())
	defer srv.Close()

	f := newFakeSMTP(t, func(f *fakeSMTP) {
		f.tlsConfig = &tls.Config{Certificates: srv.TLS.Certificates}
	})

	s := newTestSMTP(t, f, func(cfg *SMTPConfig) {
		cfg.ImplicitTLS = true
		cfg.TLSConfig = &tls.Config{
			RootCAs:    srv.Client().Transport.(*http.Transport).TLSClientConfig.RootCAs,
			ServerName: "127.0.0.1",
		}
	})

	_, err := s.Send(context.Background(), Message{To: []string{"patient@example.com"}, TextBody: "482913"})
	require.NoError(t, err)

	_, _, messages, _ := f.snapshot()
	require.Len(t, messages, 1)
	assert.Contains(t, string(messages[0]), "482913")
}

func TestBuildMessage_SinglePart(t *testing.T) {
	raw, err := buildMessage(Message{To: []string{"patient@example.com"}, Subject: "hi", TextBody: "plain"},
		"sender@example.com", "<id@example.com>", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	require.NoError(t, err)

	parsed, err := netmail.ReadMessage(bufio.NewReader(strings.NewReader(string(raw))))
	require.NoError(t, err)
	assert.Equal(t, "text/plain; charset=UTF-8", parsed.Header.Get("Content-Type"))
	assert.Equal(t, "Fri, 02 Jan 2026 03:04:05 +0000", parsed.Header.Get("Date"))
	assert.Equal(t, "<sender@example.com>", parsed.Header.Get("From"))
}

func TestMessageIDDomain(t *testing.T) {
	assert.Equal(t, "example.com", messageIDDomain("sender@example.com"))
	assert.Equal(t, "localhost", messageIDDomain("sender"))
	assert.Equal(t, "localhost", messageIDDomain("sender@"))
}
