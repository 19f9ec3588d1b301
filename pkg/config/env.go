package config

// EnvPrefix is handed to envconfig; every field carries its full variable name.
const EnvPrefix = "RUPOSHI"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DefaultSessionCookie = "token"
)

const (
	EnvAppEnv      = "RUPOSHI_APP_ENV"
	EnvPort        = "RUPOSHI_APP_PORT"
	EnvDBDSN       = "RUPOSHI_DB_DSN"
	EnvDBHost      = "RUPOSHI_DB_HOST"
	EnvDBUser      = "RUPOSHI_DB_USER"
	EnvDBName      = "RUPOSHI_DB_NAME"
	EnvRedisURL    = "RUPOSHI_REDIS_URL"
	EnvTokenSecret = "RUPOSHI_ACCESS_TOKEN_SECRET"
	EnvSessionTTL  = "RUPOSHI_SESSION_TTL_MINUTES"
	EnvCORSOrigin  = "RUPOSHI_CORS_ORIGIN"
	EnvUseSQLite   = "RUPOSHI_USE_SQLITE"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
