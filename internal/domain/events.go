package domain

// Event type constants
const (
	// EventTypeCookieEaten is published after a monster finishes a cookie
	EventTypeCookieEaten = "cookie.eaten"
)
