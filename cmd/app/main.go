package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/osse101/CookieMonster_Go/internal/config"
	"github.com/osse101/CookieMonster_Go/internal/event"
	"github.com/osse101/CookieMonster_Go/internal/logger"
	"github.com/osse101/CookieMonster_Go/internal/metrics"
	"github.com/osse101/CookieMonster_Go/internal/monster"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.InitLoggerWithWriter(logger.DefaultConfig(), os.Stderr)
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	initLogger(cfg, os.Stderr)

	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	if err := run(ctx, os.Stdout); err != nil {
		logger.FromContext(ctx).Error("Cookie monster stopped", "error", err)
		os.Exit(1)
	}
}

// run feeds a fresh monster its seed cookie and writes the narration to out
func run(ctx context.Context, out io.Writer) error {
	bus := event.NewMemoryBus()
	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return fmt.Errorf("failed to register metrics collector: %w", err)
	}

	m := monster.NewMonster(bus)

	meal, err := m.Eat(ctx)
	if err != nil {
		return err
	}

	return monster.WriteMeal(out, meal)
}
