package events

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

const writerBatchTimeout = 10 * time.Millisecond

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Kafka publishes events keyed by order id, so all events of one order land on
// the same partition in order.
type Kafka struct {
	w messageWriter
}

func NewKafka(brokers []string, topic string) *Kafka {
	return &Kafka{w: &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		// Publish runs on the request path; the 1s default batch timeout
		// would hold every checkout until the batch flushes.
		BatchTimeout: writerBatchTimeout,
	}}
}

func (k *Kafka) Publish(ctx context.Context, ev Event) error {
	body, err := encode(ev)
	if err != nil {
		return err
	}
	headers := []kafka.Header{{Key: "type", Value: []byte(ev.Type)}}
	return k.w.WriteMessages(ctx, kafka.Message{
		Key:     []byte(ev.OrderID),
		Value:   body,
		Headers: injectTraceHeaders(ctx, headers),
		Time:    ev.OccurredAt,
	})
}

func (k *Kafka) Close() error { return k.w.Close() }

func injectTraceHeaders(ctx context.Context, headers []kafka.Header) []kafka.Header {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for k, v := range carrier {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}
	return headers
}
