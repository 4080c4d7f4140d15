package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/AmGarera/tagnpark-landing/metrics"
	"github.com/AmGarera/tagnpark-landing/models"
	"github.com/AmGarera/tagnpark-landing/webutil"
)

const (
	DefaultTopic = "waitlist.signup"

	signupEventVersion = 1
	publishTimeout     = 5 * time.Second
)

// Publisher announces accepted waitlist signups.
type Publisher interface {
	PublishSignup(ctx context.Context, email string) error
	Close() error
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishSignup(context.Context, string) error { return nil }
func (NopPublisher) Close() error                                { return nil }

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes one message per signup, keyed by the email
// fingerprint so repeat signups for an address land on the same partition.
type KafkaPublisher struct {
	w   messageWriter
	now func() time.Time
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return &KafkaPublisher{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			BatchTimeout: 20 * time.Millisecond,
			Compression:  kafka.Snappy,
		},
		now: time.Now,
	}
}

func (p *KafkaPublisher) PublishSignup(ctx context.Context, email string) error {
	ev := models.SignupEvent{
		Event:   models.SignupEventName,
		Version: signupEventVersion,
		Email:   email,
		TS:      p.now().UTC(),
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal signup event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(webutil.EmailFingerprint(email)),
		Value: payload,
		Time:  ev.TS,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte("WaitlistSignup")},
			{Key: "version", Value: []byte(strconv.Itoa(signupEventVersion))},
		},
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := p.w.WriteMessages(ctx, msg); err != nil {
		metrics.SignupEventsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		return fmt.Errorf("failed to write signup event: %w", err)
	}
	metrics.SignupEventsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}
