package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"

	"phiCalc/internal/ports"
)

var _ ports.IProducer = (*Producer)(nil)

// messageWriter — часть kafka.Writer, нужная продюсеру.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer — обёртка над kafka.Writer: каждое сообщение уходит как CloudEvent.
type Producer struct {
	w messageWriter
}

// NewProducer создаёт продюсера по конфигу. После использования вызови Close().
func NewProducer(cfg *Config) *Producer {
	return New(cfg).Producer()
}

// Send заворачивает value в CloudEvent и отправляет; key — ключ партиционирования и subject события.
func (p *Producer) Send(ctx context.Context, key, value []byte) error {
	event, err := encodeEvent(string(key), value, time.Now())
	if err != nil {
		return err
	}
	return p.w.WriteMessages(ctx, kafka.Message{
		Key:     key,
		Value:   event,
		Headers: []kafka.Header{{Key: "content-type", Value: []byte(ContentType)}},
	})
}

// Close закрывает продюсера.
func (p *Producer) Close() error {
	return p.w.Close()
}
