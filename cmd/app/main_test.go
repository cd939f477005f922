package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CookieMonster_Go/internal/config"
	"github.com/osse101/CookieMonster_Go/internal/domain"
	"github.com/osse101/CookieMonster_Go/internal/logger"
	"github.com/osse101/CookieMonster_Go/internal/metrics"
)

func TestRun(t *testing.T) {
	eatenBefore := testutil.ToFloat64(metrics.CookiesEaten.WithLabelValues(domain.CookieChocolateChip))
	nomsBefore := testutil.ToFloat64(metrics.NomsTotal)
	var out bytes.Buffer

	err := run(context.Background(), &out)

	require.NoError(t, err)
	assert.Equal(t, "Oh me like this cookie!\nOm nom nom nom nom nom nom nom nom nom nom!\n", out.String())
	assert.Equal(t, eatenBefore+1, testutil.ToFloat64(metrics.CookiesEaten.WithLabelValues(domain.CookieChocolateChip)))
	assert.Equal(t, nomsBefore+10, testutil.ToFloat64(metrics.NomsTotal))
}

func TestLoggerConfig(t *testing.T) {
	tests := []struct {
		name       string
		cfg        config.Config
		wantLevel  string
		wantFormat string
		wantSource bool
	}{
		{
			name:       "dev uses development preset",
			cfg:        config.Config{Environment: "dev", ServiceName: "svc", Version: "dev"},
			wantLevel:  logger.LogLevelDebug,
			wantFormat: logger.LogFormatText,
			wantSource: true,
		},
		{
			name:       "production uses production preset",
			cfg:        config.Config{Environment: "production", ServiceName: "svc", Version: "1.0.0"},
			wantLevel:  logger.LogLevelInfo,
			wantFormat: logger.LogFormatJSON,
			wantSource: false,
		},
		{
			name:       "explicit level and format override the preset",
			cfg:        config.Config{Environment: "prod", LogLevel: "warn", LogFormat: "text", ServiceName: "svc", Version: "1.0.0"},
			wantLevel:  logger.LogLevelWarn,
			wantFormat: logger.LogFormatText,
			wantSource: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := loggerConfig(&tt.cfg)

			assert.Equal(t, tt.wantLevel, lc.Level)
			assert.Equal(t, tt.wantFormat, lc.Format)
			assert.Equal(t, tt.wantSource, lc.AddSource)
			assert.Equal(t, tt.cfg.Environment, lc.Environment)
			assert.Equal(t, tt.cfg.ServiceName, lc.ServiceName)
			assert.Equal(t, tt.cfg.Version, lc.Version)
		})
	}
}
