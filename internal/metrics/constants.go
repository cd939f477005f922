package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Business metric names
const (
	MetricNameCookiesEaten = "cookies_eaten_total"
	MetricNameNomsTotal    = "noms_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of events published"
)

// Business metric help text
const (
	HelpTextCookiesEaten = "Total number of cookies eaten, by kind"
	HelpTextNomsTotal    = "Total number of noms across all cookies eaten"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelType = "type"
	LabelKind = "kind"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
