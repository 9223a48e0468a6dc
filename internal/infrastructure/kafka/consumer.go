package kafka

import (
	"context"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"phiCalc/internal/ports"
)

// messageReader — часть kafka.Reader, нужная консьюмеру.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Пауза между повторами обработки: удваивается от retryBackoff до maxRetryBackoff.
const (
	retryBackoff    = 200 * time.Millisecond
	maxRetryBackoff = 5 * time.Second
)

// Consumer — обёртка над kafka.Reader: разбирает CloudEvent в domain.Operation и вызывает use case.
type Consumer struct {
	r       messageReader
	uc      ports.IScaleUseCase
	log     *slog.Logger
	backoff time.Duration // 0 — retryBackoff
}

// NewConsumer создаёт консьюмера по конфигу, use case и логгеру. После использования вызови Close().
func NewConsumer(cfg *Config, uc ports.IScaleUseCase, log *slog.Logger) *Consumer {
	c := New(cfg).Consumer()
	c.uc = uc
	c.log = log
	return c
}

// Run в цикле читает сообщения и обрабатывает их; коммит — после успешной обработки
// или для сообщения, которое разобрать нельзя. Ошибка обработки повторяется, пока не пройдёт:
// reader уже сдвинут за сообщение, и коммит следующего смещения потерял бы его.
// Выход по отмене ctx или при ошибке чтения.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := c.r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped", "error", err)
			return err
		}

		if !c.handle(ctx, msg) {
			continue
		}

		if err := c.r.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped (commit)", "error", err)
			return err
		}
	}
}

// handle обрабатывает одно сообщение и сообщает, можно ли его коммитить.
// false — только при отмене ctx во время повторов.
func (c *Consumer) handle(ctx context.Context, msg kafka.Message) bool {
	op, err := decodeEvent(msg.Value)
	if err != nil {
		c.log.Warn("kafka decode error, skip", "error", err, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
		return true
	}

	wait := c.backoff
	if wait <= 0 {
		wait = retryBackoff
	}
	for attempt := 1; ; attempt++ {
		err := c.uc.HandleOperationEvent(ctx, op)
		if err == nil {
			return true
		}
		c.log.Warn("kafka handle error, retry", "error", err, "attempt", attempt, "retry_in", wait,
			"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}
		wait = min(wait*2, maxRetryBackoff)
	}
}

// Close закрывает консьюмера.
func (c *Consumer) Close() error {
	return c.r.Close()
}
