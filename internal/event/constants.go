package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Error format constants
const (
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)

// Metadata keys
const (
	MetadataKeySource = "source"
)

// SourceMonster marks events raised by a cookie monster
const SourceMonster = "monster"
