package events

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/grocerylist/pkg/logger"
)

// Handler processes one message. A nil return acknowledges it.
type Handler func(ctx context.Context, msg *message.Message) error

// retryPolicy retries a failing handler with doubling delays.
type retryPolicy struct {
	attempts int
	delay    time.Duration
}

var defaultRetry = retryPolicy{attempts: 3, delay: time.Second}

// Subscribe consumes topic in the background until ctx ends or the bus closes.
//
// A handler error is retried with backoff (1s, 2s). If every attempt fails the
// message is nacked for redelivery and the error is sent on the returned
// channel, which the caller must drain.
func (b *EventBus) Subscribe(ctx context.Context, topic string, handler Handler) (<-chan error, error) {
	msgs, err := b.subscriber.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("events: subscribe to %s: %w", topic, err)
	}

	errCh := make(chan error, errBufferSize)

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		defer close(errCh)

		for msg := range msgs {
			msgCtx := extractTrace(ctx, msg)

			if err := b.retry.run(msgCtx, msg, handler, b.log); err != nil {
				msg.Nack()
				select {
				case errCh <- fmt.Errorf("%s event %s: %w", topic, msg.Metadata.Get(MetadataEventID), err):
				default:
					b.log.ErrorContext(msgCtx, "error channel full, dropping error", "topic", topic, "error", err)
				}
				continue
			}
			msg.Ack()
		}
	}()

	return errCh, nil
}

// run calls handler until it succeeds, attempts are used up, or ctx ends.
func (p retryPolicy) run(ctx context.Context, msg *message.Message, handler Handler, log logger.Logger) error {
	delay := p.delay
	var err error
	for attempt := 1; attempt <= p.attempts; attempt++ {
		if err = handler(ctx, msg); err == nil {
			return nil
		}
		if attempt == p.attempts {
			break
		}

		log.WarnContext(ctx, "event handler failed, retrying",
			"attempt", attempt,
			"max_attempts", p.attempts,
			"next_delay", delay,
			"error", err,
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return fmt.Errorf("handler failed after %d attempts: %w", p.attempts, err)
}
