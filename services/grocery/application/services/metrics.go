package services

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	itemdomain "github.com/ghuser/grocerylist/services/grocery/domain"
)

const meterName = "github.com/ghuser/grocerylist/services/grocery"

// Outcome labels recorded on grocery.item.mutations.
const (
	outcomeSuccess  = "success"
	outcomeInvalid  = "invalid"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

type mutationMetrics struct {
	mutations metric.Int64Counter
}

func newMutationMetrics(mp metric.MeterProvider) *mutationMetrics {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	counter, err := mp.Meter(meterName).Int64Counter(
		"grocery.item.mutations",
		metric.WithDescription("Grocery item mutations by operation and outcome"),
		metric.WithUnit("{mutation}"),
	)
	if err != nil {
		counter, _ = noop.NewMeterProvider().Meter(meterName).Int64Counter("grocery.item.mutations")
	}
	return &mutationMetrics{mutations: counter}
}

func (m *mutationMetrics) record(ctx context.Context, op Command, err error) {
	m.mutations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", op.String()),
		attribute.String("outcome", outcomeFor(err)),
	))
}

func outcomeFor(err error) string {
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.Is(err, itemdomain.ErrInvalidItemName):
		return outcomeInvalid
	case errors.Is(err, itemdomain.ErrItemNotFound):
		return outcomeNotFound
	default:
		return outcomeError
	}
}
