package mail

import (
	"context"
	"io"
)

// Message represents an email payload.
type Message struct {
	// From is an optional explicit sender address; the implementation default is used when empty.
	From string
	// FromName is the optional display name shown next to the sender address.
	FromName string
	// To lists required recipients.
	To []string
	// Cc lists carbon copy recipients.
	Cc []string
	// Bcc lists blind carbon copy recipients.
	Bcc []string
	// Subject is the email subject line.
	Subject string
	// TextBody is the plain-text body.
	TextBody string
	// HTMLBody is the HTML body. When both bodies are set a multipart/alternative message is sent.
	HTMLBody string
}

// Receipt describes an accepted message.
type Receipt struct {
	// MessageID is the Message-ID header value the message was submitted with.
	MessageID string
}

// Mail abstracts an email provider.
type Mail interface {
	io.Closer
	// Send dispatches the given message.
	Send(ctx context.Context, msg Message) (Receipt, error)
	// Verify checks that the provider is reachable and accepts the configured credentials
	// without sending anything.
	Verify(ctx context.Context) error
}
