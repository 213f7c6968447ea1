package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsPlainRecorder(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil {
		t.Fatal("expected a recorder")
	}
	if handler != nil {
		t.Fatal("expected no prometheus handler when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected no-op shutdown, got %v", err)
	}
}

func TestSetupEnabledWiresPrometheus(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:     true,
		ServiceName: "pokedex-service-test",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			t.Fatalf("shutdown failed: %v", err)
		}
	}()

	if handler == nil {
		t.Fatal("expected a prometheus handler")
	}
	if rec.otel == nil {
		t.Fatal("expected otel instruments wired into the recorder")
	}

	// Instrument paths must not panic while the provider is live.
	rec.RecordHTTPRequest("GET", "/pokedex", 200, 5*time.Millisecond)
	rec.RecordProviderAttempt("pokeapi", 12*time.Millisecond, errors.New("boom"))
	rec.RecordCacheLookup("pokemon", true)
}

func TestSetupPropagatesInstrumentFailure(t *testing.T) {
	original := instrumentFactory
	instrumentFactory = func(metric.MeterProvider) (*otelInstruments, error) {
		return nil, errors.New("instrument failure")
	}
	defer func() { instrumentFactory = original }()

	_, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err == nil {
		t.Fatal("expected instrument failure to surface")
	}
}

func TestNewOtelInstruments(t *testing.T) {
	provider := sdkmetric.NewMeterProvider()
	defer func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			t.Fatalf("shutdown failed: %v", err)
		}
	}()

	inst, err := newOtelInstruments(provider)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	inst.recordHTTPRequest("GET", "/health", 200, time.Millisecond)
	inst.recordProviderAttempt("fixture", time.Millisecond, nil)
	inst.recordCacheLookup("catalog", false)

	var nilInst *otelInstruments
	nilInst.recordHTTPRequest("GET", "/health", 200, time.Millisecond)
	nilInst.recordProviderAttempt("fixture", time.Millisecond, nil)
	nilInst.recordCacheLookup("catalog", false)
}
