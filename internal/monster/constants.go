package monster

// Log messages
const (
	LogMsgCookieJarEmpty     = "Cookie jar is empty, nothing to eat"
	LogMsgCookieEaten        = "Cookie eaten"
	LogMsgEventPublishFailed = "Failed to publish cookie eaten event"
)

// Error format strings
const (
	ErrFmtWriteMealFailed = "failed to write meal: %w"
)

// MaxNoms caps the noms in a single nom line
const MaxNoms = 1 << 16
