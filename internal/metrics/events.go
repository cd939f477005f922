package metrics

import (
	"context"

	"github.com/osse101/CookieMonster_Go/internal/event"
	"github.com/osse101/CookieMonster_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.CookieEaten,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx).With("type", evt.Type, "source", evt.GetMetadataValue(event.MetadataKeySource))

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.CookieEaten:
		payload, ok := evt.Payload.(event.CookieEatenPayloadV1)
		if !ok {
			log.Debug(LogMsgUnexpectedPayload)
			return nil
		}
		CookiesEaten.WithLabelValues(payload.Kind).Inc()
		NomsTotal.Add(float64(payload.NomCount))
		log = log.With("kind", payload.Kind)
	}

	log.Debug(LogMsgMetricsRecorded)
	return nil
}
