// Package events carries grocery domain events over PostgreSQL using
// Watermill's SQL transport.
//
// The API process opens the bus in Outbox mode: repositories write events in
// the same transaction as the row change (NewTxPublisher) and a forwarder moves
// them onto their topics. The worker opens it in Direct mode and only subscribes.
//
// Every process with the same SERVICE_NAME shares one consumer group, so each
// event is handled by exactly one worker instance. Handlers must be idempotent:
// delivery is at-least-once.
//
// Trace context travels in message metadata, so a worker span joins the trace
// of the HTTP request that caused the event.
package events

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	watermillsql "github.com/ThreeDotsLabs/watermill-sql/v3/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/components/forwarder"
	"github.com/ThreeDotsLabs/watermill/message"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver

	"github.com/ghuser/grocerylist/pkg/config"
	"github.com/ghuser/grocerylist/pkg/logger"
)

// Mode selects how published messages reach their topic.
type Mode int

const (
	// Direct publishes straight into the topic table.
	Direct Mode = iota
	// Outbox publishes into a durable queue that the forwarder drains.
	Outbox
)

func (m Mode) String() string {
	if m == Outbox {
		return "outbox"
	}
	return "direct"
}

const (
	outboxTopic   = "grocery_outbox"
	drainTimeout  = 30 * time.Second
	errBufferSize = 100
)

// EventBus publishes and consumes grocery events stored in PostgreSQL.
type EventBus struct {
	db         *sql.DB
	mode       Mode
	group      string
	subscriber *watermillsql.Subscriber
	fwd        *forwarder.Forwarder
	retry      retryPolicy
	log        logger.Logger
	wg         sync.WaitGroup
}

// Open connects to cfg.DatabaseURL and prepares the subscriber. Topic tables
// are created when a topic is first subscribed or forwarded to.
func Open(cfg *config.Config, mode Mode, log logger.Logger) (*EventBus, error) {
	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("events: open db: %w", err)
	}

	bus := &EventBus{
		db:    db,
		mode:  mode,
		group: cfg.ServiceName,
		retry: defaultRetry,
		log:   log.With("component", "events", "mode", mode.String()),
	}

	bus.subscriber, err = bus.sqlSubscriber(bus.group + "-worker")
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return bus, nil
}

// StartForwarder runs the daemon that moves outbox messages onto their topics.
// It returns once the forwarder is running. Outbox mode only; call it once.
func (b *EventBus) StartForwarder(ctx context.Context) error {
	if b.mode != Outbox {
		return fmt.Errorf("events: forwarder needs outbox mode, bus is %s", b.mode)
	}
	if b.fwd != nil {
		return fmt.Errorf("events: forwarder already started")
	}

	queue, err := b.sqlSubscriber(b.group + "-forwarder")
	if err != nil {
		return err
	}
	target, err := b.sqlPublisher(b.db, true)
	if err != nil {
		_ = queue.Close()
		return err
	}

	fwd, err := forwarder.NewForwarder(queue, target, &watermillLogger{log: b.log}, forwarder.Config{
		ForwarderTopic: outboxTopic,
	})
	if err != nil {
		_ = target.Close()
		_ = queue.Close()
		return fmt.Errorf("events: new forwarder: %w", err)
	}
	b.fwd = fwd

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		if err := fwd.Run(ctx); err != nil {
			b.log.ErrorContext(ctx, "forwarder stopped", "error", err)
			return
		}
		b.log.InfoContext(ctx, "forwarder stopped")
	}()

	select {
	case <-fwd.Running():
		b.log.InfoContext(ctx, "forwarder running", "queue", outboxTopic)
		return nil
	case <-ctx.Done():
		return fmt.Errorf("events: waiting for forwarder: %w", ctx.Err())
	}
}

// Ping checks the bus's database connection.
func (b *EventBus) Ping(ctx context.Context) error {
	if err := b.db.PingContext(ctx); err != nil {
		return fmt.Errorf("events: ping db: %w", err)
	}
	return nil
}

// Close stops consuming, waits up to 30s for running handlers, then closes
// the database connection.
func (b *EventBus) Close() error {
	if err := b.subscriber.Close(); err != nil {
		return fmt.Errorf("events: close subscriber: %w", err)
	}
	if b.fwd != nil {
		if err := b.fwd.Close(); err != nil {
			return fmt.Errorf("events: close forwarder: %w", err)
		}
	}

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(drainTimeout):
		b.log.Error("timed out waiting for event handlers to finish")
	}

	return b.db.Close()
}

func (b *EventBus) sqlPublisher(db watermillsql.ContextExecutor, createTables bool) (*watermillsql.Publisher, error) {
	pub, err := watermillsql.NewPublisher(db, watermillsql.PublisherConfig{
		SchemaAdapter:        watermillsql.DefaultPostgreSQLSchema{},
		AutoInitializeSchema: createTables,
	}, &watermillLogger{log: b.log})
	if err != nil {
		return nil, fmt.Errorf("events: new publisher: %w", err)
	}
	return pub, nil
}

func (b *EventBus) sqlSubscriber(group string) (*watermillsql.Subscriber, error) {
	sub, err := watermillsql.NewSubscriber(b.db, watermillsql.SubscriberConfig{
		SchemaAdapter:    watermillsql.DefaultPostgreSQLSchema{},
		OffsetsAdapter:   watermillsql.DefaultPostgreSQLOffsetsAdapter{},
		InitializeSchema: true,
		ConsumerGroup:    group,
	}, &watermillLogger{log: b.log})
	if err != nil {
		return nil, fmt.Errorf("events: new subscriber %s: %w", group, err)
	}
	return sub, nil
}

// wrapOutbox routes pub through the outbox queue in Outbox mode.
func (b *EventBus) wrapOutbox(pub message.Publisher) message.Publisher {
	if b.mode != Outbox {
		return pub
	}
	return forwarder.NewPublisher(pub, forwarder.PublisherConfig{ForwarderTopic: outboxTopic})
}
