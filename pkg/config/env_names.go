package config

const EnvPrefix = "spikemate"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Environment variable names, kept in one place so tests and docs stay in sync
// with the envconfig tags.
const (
	EnvAppEnv       = "SPIKEMATE_APP_ENV"
	EnvLogLevel     = "SPIKEMATE_LOG_LEVEL"
	EnvLogWarnStack = "SPIKEMATE_LOG_WARN_STACK"
	EnvAPIBaseURL   = "SPIKEMATE_API_BASE_URL"
	EnvAPITimeout   = "SPIKEMATE_API_TIMEOUT"
	EnvStoragePath  = "SPIKEMATE_STORAGE_PATH"
)
