package metrics

import (
	"context"
	"fmt"
	"net/http"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// OTelExporter publishes catalog metrics through OpenTelemetry in Prometheus format
type OTelExporter struct {
	meterProvider *sdkmetric.MeterProvider
	registry      *promclient.Registry
	collector     Collector

	meter             metric.Meter
	catalogSizeGauge  metric.Int64ObservableGauge
	booksByGenreGauge metric.Int64ObservableGauge
}

// NewOTelExporter creates the exporter with its own Prometheus registry
func NewOTelExporter(collector Collector) (*OTelExporter, error) {
	registry := promclient.NewRegistry()

	exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(meterProvider)

	meter := meterProvider.Meter(
		"library-admin",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		registry:      registry,
		collector:     collector,
		meter:         meter,
	}

	if err := oe.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return oe, nil
}

func (oe *OTelExporter) registerInstruments() error {
	var err error

	oe.catalogSizeGauge, err = oe.meter.Int64ObservableGauge(
		"library.catalog.size",
		metric.WithDescription("Number of stored authors and books"),
		metric.WithUnit("{entities}"),
		metric.WithInt64Callback(oe.observeCatalogSize),
	)
	if err != nil {
		return fmt.Errorf("creating catalog size gauge: %w", err)
	}

	oe.booksByGenreGauge, err = oe.meter.Int64ObservableGauge(
		"library.books.by_genre",
		metric.WithDescription("Number of books per genre"),
		metric.WithUnit("{books}"),
		metric.WithInt64Callback(oe.observeBooksByGenre),
	)
	if err != nil {
		return fmt.Errorf("creating books by genre gauge: %w", err)
	}

	return nil
}

func (oe *OTelExporter) observeCatalogSize(ctx context.Context, observer metric.Int64Observer) error {
	totals, err := oe.collector.GetTotals(ctx)
	if err != nil {
		return err
	}

	observer.Observe(totals.Authors, metric.WithAttributes(
		attribute.String("entity", "authors"),
	))
	observer.Observe(totals.Books, metric.WithAttributes(
		attribute.String("entity", "books"),
	))

	return nil
}

func (oe *OTelExporter) observeBooksByGenre(ctx context.Context, observer metric.Int64Observer) error {
	byGenre, err := oe.collector.GetBooksByGenre(ctx)
	if err != nil {
		return err
	}

	for genre, count := range byGenre {
		observer.Observe(count, metric.WithAttributes(
			attribute.String("genre", genre),
		))
	}

	return nil
}

// ServeHTTP returns the handler that renders the registry in Prometheus text format
func (oe *OTelExporter) ServeHTTP() http.Handler {
	return promhttp.HandlerFor(oe.registry, promhttp.HandlerOpts{})
}

// Shutdown gracefully shuts down the meter provider
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if oe.meterProvider != nil {
		return oe.meterProvider.Shutdown(ctx)
	}
	return nil
}
