package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"natanbot/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilProviderIsNoop(t *testing.T) {
	var mp *MetricsProvider

	assert.NotPanics(t, func() {
		mp.RecordAction("daily", "applied", "")
		mp.RecordStoreWrite("economy", time.Millisecond, errors.New("boom"))
		mp.RecordLevelUp()
	})
	assert.NoError(t, mp.Shutdown(context.Background()))
}

func TestDisabledProviderRecordsNothing(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.MetricsEnabled = false
	mp := NewMetricsProvider(cfg)

	require.NoError(t, mp.Initialize(context.Background()))
	assert.False(t, mp.isEnabled())
	assert.NotPanics(t, func() {
		mp.RecordXPAwarded(25)
	})
}

func TestUnknownExporter(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.MetricsEnabled = true
	cfg.MetricsExporter = "carrier-pigeon"
	mp := NewMetricsProvider(cfg)

	err := mp.Initialize(context.Background())
	assert.Error(t, err)
}

func TestConsoleExporterCreatesInstruments(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.MetricsEnabled = true
	cfg.MetricsExporter = "console"
	cfg.MetricsInterval = time.Hour
	mp := NewMetricsProvider(cfg)

	require.NoError(t, mp.Initialize(context.Background()))
	assert.True(t, mp.isEnabled())
	assert.NotPanics(t, func() {
		mp.RecordAction("work", "applied", "")
		mp.RecordStoreWrite("xp", 2*time.Millisecond, nil)
	})
	assert.NoError(t, mp.Shutdown(context.Background()))
}
