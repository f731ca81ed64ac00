package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/grocerylist/pkg/logger"
)

var fastRetry = retryPolicy{attempts: 3, delay: time.Millisecond}

func TestRetryPolicy_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	handler := func(context.Context, *message.Message) error {
		calls++
		if calls < 3 {
			return errors.New("redis unavailable")
		}
		return nil
	}

	err := fastRetry.run(context.Background(), message.NewMessage("1", nil), handler, logger.Discard())
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryPolicy_GivesUp(t *testing.T) {
	cause := errors.New("redis unavailable")
	calls := 0
	handler := func(context.Context, *message.Message) error {
		calls++
		return cause
	}

	err := fastRetry.run(context.Background(), message.NewMessage("1", nil), handler, logger.Discard())
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, 3, calls)
}

func TestRetryPolicy_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	slow := retryPolicy{attempts: 5, delay: time.Hour}

	calls := 0
	handler := func(context.Context, *message.Message) error {
		calls++
		cancel()
		return errors.New("fail")
	}

	err := slow.run(ctx, message.NewMessage("1", nil), handler, logger.Discard())
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestStartForwarder_RequiresOutboxMode(t *testing.T) {
	bus := &EventBus{mode: Direct, log: logger.Discard()}

	err := bus.StartForwarder(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outbox mode")
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "direct", Direct.String())
	assert.Equal(t, "outbox", Outbox.String())
}

func TestNewJSONMessage(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0x01},
		SpanID:     trace.SpanID{0x02},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	msg, err := NewJSONMessage(ctx, "evt-1", "1", map[string]any{"item_id": 7, "name": "Eggs"})
	require.NoError(t, err)

	assert.Equal(t, "evt-1", msg.Metadata.Get(MetadataEventID))
	assert.Equal(t, "1", msg.Metadata.Get(MetadataEventVersion))
	assert.NotEmpty(t, msg.Metadata.Get("traceparent"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Payload, &body))
	assert.Equal(t, "Eggs", body["name"])

	got := trace.SpanContextFromContext(extractTrace(context.Background(), msg))
	assert.Equal(t, sc.TraceID(), got.TraceID())
}

func TestNewJSONMessage_UnencodablePayload(t *testing.T) {
	_, err := NewJSONMessage(context.Background(), "evt-1", "1", make(chan int))
	require.Error(t, err)
}

type recordingPublisher struct{ topics []string }

func (p *recordingPublisher) Publish(topic string, _ ...*message.Message) error {
	p.topics = append(p.topics, topic)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func TestWrapOutbox_RoutesThroughQueueInOutboxMode(t *testing.T) {
	direct := &recordingPublisher{}
	require.NoError(t, (&EventBus{mode: Direct}).wrapOutbox(direct).Publish("grocery.item.added", message.NewMessage("1", nil)))
	assert.Equal(t, []string{"grocery.item.added"}, direct.topics)

	outbox := &recordingPublisher{}
	require.NoError(t, (&EventBus{mode: Outbox}).wrapOutbox(outbox).Publish("grocery.item.added", message.NewMessage("1", nil)))
	assert.Equal(t, []string{outboxTopic}, outbox.topics)
}
