package observability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"natanbot/config"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// MetricsProvider manages OpenTelemetry metrics for the bot.
// A nil provider is valid and records nothing.
type MetricsProvider struct {
	config        *config.Config
	meterProvider *sdkmetric.MeterProvider
	meter         metric.Meter
	initialized   bool
	exporting     bool
	mu            sync.RWMutex

	// Metric instruments
	messagesReadCounter        metric.Int64Counter
	actionsCounter             metric.Int64Counter
	balanceTransactionsCounter metric.Int64Counter
	xpAwardedCounter           metric.Int64Counter
	levelUpsCounter            metric.Int64Counter
	vipGrantsCounter           metric.Int64Counter
	vipExpiredCounter          metric.Int64Counter
	storeWritesCounter         metric.Int64Counter
	storeWriteDurationHist     metric.Float64Histogram
}

// NewMetricsProvider creates a new metrics provider
func NewMetricsProvider(cfg *config.Config) *MetricsProvider {
	return &MetricsProvider{
		config: cfg,
	}
}

// Initialize sets up the OpenTelemetry metrics provider
func (mp *MetricsProvider) Initialize(ctx context.Context) error {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	if mp.initialized {
		log.Info("Metrics provider already initialized")
		return nil
	}

	if !mp.config.MetricsEnabled {
		log.Info("OpenTelemetry metrics disabled")
		mp.initialized = true
		return nil
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(mp.config.ServiceName),
			attribute.String("environment", mp.config.Environment),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	var exporter sdkmetric.Exporter
	switch mp.config.MetricsExporter {
	case "console":
		exporter, err = stdoutmetric.New()
		if err != nil {
			return fmt.Errorf("failed to create console exporter: %w", err)
		}
		log.Info("Using console metric exporter")

	case "otlp":
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		exporter, err = otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpoint(mp.config.OTLPEndpoint),
			otlpmetricgrpc.WithInsecure(),
		)
		if err != nil {
			return fmt.Errorf("failed to create OTLP exporter: %w", err)
		}
		log.Infof("Using OTLP metric exporter: %s", mp.config.OTLPEndpoint)

	case "none":
		log.Info("Metrics export disabled (exporter='none')")
		mp.initialized = true
		return nil

	default:
		return fmt.Errorf("unknown exporter type: %s", mp.config.MetricsExporter)
	}

	mp.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(
				exporter,
				sdkmetric.WithInterval(mp.config.MetricsInterval),
			),
		),
	)
	otel.SetMeterProvider(mp.meterProvider)
	mp.meter = mp.meterProvider.Meter(mp.config.ServiceName)

	if err := mp.createInstruments(); err != nil {
		return fmt.Errorf("failed to create instruments: %w", err)
	}

	mp.initialized = true
	mp.exporting = true
	log.Info("Metrics provider initialized successfully")
	return nil
}

func (mp *MetricsProvider) createInstruments() error {
	counters := []struct {
		target      *metric.Int64Counter
		name        string
		description string
	}{
		{&mp.messagesReadCounter, MessagesReadTotal, "Total number of Discord messages and interactions read"},
		{&mp.actionsCounter, ActionsTotal, "Total number of ledger actions by kind and outcome"},
		{&mp.balanceTransactionsCounter, BalanceTransactionsTotal, "Total number of wallet changes"},
		{&mp.xpAwardedCounter, XPAwardedTotal, "Total XP awarded from messages"},
		{&mp.levelUpsCounter, LevelUpsTotal, "Total number of level ups"},
		{&mp.vipGrantsCounter, VIPGrantsTotal, "Total number of VIP grants"},
		{&mp.vipExpiredCounter, VIPExpiredTotal, "Total number of VIP grants reaped by the sweep"},
		{&mp.storeWritesCounter, StoreWritesTotal, "Total number of store flushes"},
	}

	for _, c := range counters {
		counter, err := mp.meter.Int64Counter(c.name,
			metric.WithDescription(c.description),
			metric.WithUnit("1"),
		)
		if err != nil {
			return fmt.Errorf("failed to create %s counter: %w", c.name, err)
		}
		*c.target = counter
	}

	var err error
	mp.storeWriteDurationHist, err = mp.meter.Float64Histogram(
		StoreWriteDuration,
		metric.WithDescription("Duration of store flushes in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5),
	)
	if err != nil {
		return fmt.Errorf("failed to create store write duration histogram: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the metrics provider
func (mp *MetricsProvider) Shutdown(ctx context.Context) error {
	if mp == nil {
		return nil
	}
	mp.mu.Lock()
	defer mp.mu.Unlock()

	if mp.meterProvider != nil {
		return mp.meterProvider.Shutdown(ctx)
	}
	return nil
}

// RecordMessageRead records a Discord message or interaction being read
func (mp *MetricsProvider) RecordMessageRead(messageType string) {
	if !mp.isEnabled() {
		return
	}
	mp.messagesReadCounter.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String(LabelType, messageType)),
	)
}

// RecordAction records the outcome of a ledger action
func (mp *MetricsProvider) RecordAction(kind, status, reason string) {
	if !mp.isEnabled() {
		return
	}
	mp.actionsCounter.Add(context.Background(), 1,
		metric.WithAttributes(
			attribute.String(LabelKind, kind),
			attribute.String(LabelStatus, status),
			attribute.String(LabelReason, reason),
		),
	)
}

// RecordBalanceTransaction records a wallet change
func (mp *MetricsProvider) RecordBalanceTransaction(kind string) {
	if !mp.isEnabled() {
		return
	}
	mp.balanceTransactionsCounter.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String(LabelKind, kind)),
	)
}

// RecordXPAwarded records XP granted for a message
func (mp *MetricsProvider) RecordXPAwarded(amount int64) {
	if !mp.isEnabled() {
		return
	}
	mp.xpAwardedCounter.Add(context.Background(), amount)
}

// RecordLevelUp records a member reaching a new level
func (mp *MetricsProvider) RecordLevelUp() {
	if !mp.isEnabled() {
		return
	}
	mp.levelUpsCounter.Add(context.Background(), 1)
}

// RecordVIPGrant records a VIP grant
func (mp *MetricsProvider) RecordVIPGrant() {
	if !mp.isEnabled() {
		return
	}
	mp.vipGrantsCounter.Add(context.Background(), 1)
}

// RecordVIPExpired records a grant reaped by the sweep
func (mp *MetricsProvider) RecordVIPExpired() {
	if !mp.isEnabled() {
		return
	}
	mp.vipExpiredCounter.Add(context.Background(), 1)
}

// RecordStoreWrite records one store flush
func (mp *MetricsProvider) RecordStoreWrite(domain string, duration time.Duration, err error) {
	if !mp.isEnabled() {
		return
	}

	result := ResultOK
	if err != nil {
		result = ResultError
	}
	attrs := metric.WithAttributes(
		attribute.String(LabelDomain, domain),
		attribute.String(LabelResult, result),
	)

	mp.storeWritesCounter.Add(context.Background(), 1, attrs)
	mp.storeWriteDurationHist.Record(context.Background(), duration.Seconds(), attrs)
}

// isEnabled checks if metrics are enabled and instruments exist
func (mp *MetricsProvider) isEnabled() bool {
	if mp == nil {
		return false
	}
	mp.mu.RLock()
	defer mp.mu.RUnlock()
	return mp.initialized && mp.exporting
}

// Global metrics provider instance
var (
	globalMetrics *MetricsProvider
	metricsOnce   sync.Once
)

// InitializeGlobalMetrics initializes the global metrics provider
func InitializeGlobalMetrics(ctx context.Context, cfg *config.Config) error {
	var err error
	metricsOnce.Do(func() {
		globalMetrics = NewMetricsProvider(cfg)
		err = globalMetrics.Initialize(ctx)
	})
	return err
}

// GetMetrics returns the global metrics provider, nil before initialization
func GetMetrics() *MetricsProvider {
	return globalMetrics
}

// ShutdownGlobalMetrics shuts down the global metrics provider
func ShutdownGlobalMetrics(ctx context.Context) error {
	return globalMetrics.Shutdown(ctx)
}
