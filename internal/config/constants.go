package config

// Environment variable names
const (
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFormat   = "LOG_FORMAT"
	EnvEnvironment = "ENVIRONMENT"
	EnvServiceName = "SERVICE_NAME"
	EnvVersion     = "APP_VERSION"
)

// Default values.
// LOG_LEVEL and LOG_FORMAT have no default; unset means the environment's logger preset decides.
const (
	DefaultEnvironment = "dev"
	DefaultServiceName = "cookie-monster"
	DefaultVersion     = "dev"
)
