package messaging

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrUnsupported is returned when a feature is not supported by the selected broker.
var ErrUnsupported = errors.New("pkgmessage: unsupported operation")

// Consumer consumes messages from a source (subject or topic).
type Consumer interface {
	io.Closer

	// Consume blocks, dispatching messages from source to handler until ctx is
	// done or the broker fails.
	Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error
}

// Handler processes a received message.
//
// With auto-ack enabled a nil error acks the message and a non-nil error asks
// the broker for redelivery where the broker supports it.
type Handler func(ctx context.Context, msg Message) error

// Header is a key/value pair carried with a message.
type Header struct {
	Key   string
	Value []byte
}

// Message is a broker-agnostic received message.
type Message interface {
	// Body returns the message payload.
	Body() []byte
	// Key returns the partition key, if the broker has one.
	Key() []byte
	// Headers returns message headers.
	Headers() []Header
	// ID returns a broker-specific identifier, or "" when the broker has none.
	ID() string
	// Source returns the subject or topic the message arrived on.
	Source() string
	// Timestamp returns the broker timestamp, or the receive time.
	Timestamp() time.Time
	// Ack acknowledges successful processing.
	Ack(ctx context.Context) error
}

// Nackable can request a redelivery.
type Nackable interface {
	Nack(ctx context.Context) error
}

// delivery is the driver-side view of a received message.
type delivery interface {
	Message
	Nackable
	hasResponded() bool
}
