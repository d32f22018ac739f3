package messaging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/segmentio/kafka-go"
	"github.com/shandysiswandi/sentinel/internal/pkg/goroutine"
)

var (
	// ErrKafkaTopicRequired is returned when the topic is empty.
	ErrKafkaTopicRequired = errors.New("pkgmessage: kafka topic is required")
	// ErrKafkaHandlerRequired is returned when Consume is called with a nil handler.
	ErrKafkaHandlerRequired = errors.New("pkgmessage: kafka handler is required")
	// ErrKafkaBrokersRequired is returned when no Kafka brokers are configured.
	ErrKafkaBrokersRequired = errors.New("pkgmessage: kafka brokers are required")
	// ErrKafkaGroupRequired is returned when Consume is called without a consumer group.
	ErrKafkaGroupRequired = errors.New("pkgmessage: kafka consumer group is required")
)

const kafkaMaxBytes = 10e6

// KafkaConfig configures the Kafka implementation.
type KafkaConfig struct {
	// Brokers lists Kafka broker addresses.
	Brokers []string
	// Dialer configures broker connections (TLS, SASL, timeouts).
	Dialer *kafka.Dialer
}

// Kafka is a Consumer backed by kafka-go consumer-group readers.
type Kafka struct {
	brokers []string
	dialer  *kafka.Dialer

	mu      sync.Mutex
	readers []*kafka.Reader
	closed  bool
}

// NewKafka constructs a Kafka consumer. No connection is made until Consume.
func NewKafka(cfg KafkaConfig) (*Kafka, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrKafkaBrokersRequired
	}

	return &Kafka{
		brokers: append([]string{}, cfg.Brokers...),
		dialer:  cfg.Dialer,
	}, nil
}

// Close shuts down every active reader.
func (k *Kafka) Close() error {
	k.mu.Lock()
	if k.closed {
		k.mu.Unlock()
		return nil
	}
	k.closed = true
	readers := k.readers
	k.readers = nil
	k.mu.Unlock()

	var closeErr error
	for _, r := range readers {
		closeErr = errors.Join(closeErr, r.Close())
	}
	return closeErr
}

// Consume reads a topic as part of a consumer group and blocks until ctx is
// done, the broker fails, or a commit fails.
func (k *Kafka) Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error {
	co := newConsumeOptions(opts...)
	if err := validateKafkaConsume(ctx, source, handler, co); err != nil {
		return err
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  k.brokers,
		GroupID:  co.group,
		Topic:    source,
		MaxBytes: kafkaMaxBytes,
		Dialer:   k.dialer,
	})
	if err := k.track(reader); err != nil {
		return errors.Join(err, reader.Close())
	}
	defer k.release(reader)

	fetchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	msgCh := make(chan kafka.Message)
	workers := goroutine.NewManager(co.concurrency)
	for range co.concurrency {
		workers.Go(fetchCtx, func(ctx context.Context) error {
			for m := range msgCh {
				msg := newKafkaMessage(reader, m)
				if err := process(context.WithoutCancel(ctx), "kafka", handler, msg, co.autoAck); err != nil {
					cancel()
					return fmt.Errorf("pkgmessage: kafka commit: %w", err)
				}
			}
			return nil
		})
	}

	fetchErr := kafkaFetchLoop(fetchCtx, reader, msgCh)
	if err := workers.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return fmt.Errorf("pkgmessage: kafka consume: %w", fetchErr)
}

func (k *Kafka) track(reader *kafka.Reader) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.closed {
		return io.ErrClosedPipe
	}
	k.readers = append(k.readers, reader)
	return nil
}

func (k *Kafka) release(reader *kafka.Reader) {
	k.mu.Lock()
	for i := range k.readers {
		if k.readers[i] == reader {
			k.readers = append(k.readers[:i], k.readers[i+1:]...)
			break
		}
	}
	k.mu.Unlock()

	//nolint:errcheck // reader may already be closed by Close
	_ = reader.Close()
}

func validateKafkaConsume(ctx context.Context, topic string, handler Handler, opts consumeOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if topic == "" {
		return ErrKafkaTopicRequired
	}
	if handler == nil {
		return ErrKafkaHandlerRequired
	}
	if opts.group == "" {
		return ErrKafkaGroupRequired
	}
	return nil
}

// kafkaFetchLoop feeds msgCh until fetching fails and closes msgCh on return.
func kafkaFetchLoop(ctx context.Context, reader *kafka.Reader, msgCh chan<- kafka.Message) error {
	defer close(msgCh)

	for {
		m, err := reader.FetchMessage(ctx)
		if err != nil {
			return err
		}

		select {
		case msgCh <- m:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
