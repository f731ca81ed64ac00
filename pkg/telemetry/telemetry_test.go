package telemetry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/grocerylist/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{
		ServiceName:      "grocerylist-test",
		ServiceVersion:   "test",
		Environment:      config.EnvTesting,
		TraceSampleRatio: 1,
	}
}

func scrape(t *testing.T, h http.Handler) (int, string, string) {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	return rr.Code, rr.Header().Get("Content-Type"), rr.Body.String()
}

func TestSetup_WithoutOTLP(t *testing.T) {
	shutdown, metrics, err := Setup(context.Background(), testConfig())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, shutdown(context.Background())) })

	code, contentType, body := scrape(t, metrics)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, contentType, "text/plain")
	assert.Contains(t, body, "go_goroutines")
}

func TestSetup_ExposesOTelInstruments(t *testing.T) {
	shutdown, metrics, err := Setup(context.Background(), testConfig())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, shutdown(context.Background())) })

	counter, err := otel.Meter("grocerylist/test").Int64Counter("grocery_test_mutations",
		metric.WithDescription("test counter"))
	require.NoError(t, err)
	counter.Add(context.Background(), 2)

	_, _, body := scrape(t, metrics)
	assert.Contains(t, body, "grocery_test_mutations")
}

func TestSetup_InstallsTraceContextPropagator(t *testing.T) {
	shutdown, _, err := Setup(context.Background(), testConfig())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, shutdown(context.Background())) })

	assert.Contains(t, otel.GetTextMapPropagator().Fields(), "traceparent")
	assert.Contains(t, otel.GetTextMapPropagator().Fields(), "baggage")
}

func TestSetupSentry_EmptyDSNIsNoop(t *testing.T) {
	require.NoError(t, SetupSentry(testConfig()))
	CaptureError(context.Background(), errors.New("not reported"))
	CaptureError(context.Background(), nil)
}
