package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	Session       SessionConfig
	CORS          CORSConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if !cfg.FeatureFlags.UseSQLite {
		if err := cfg.DB.ensureDSN(); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"RUPOSHI_APP_ENV" required:"true"`
	Port         string `envconfig:"RUPOSHI_APP_PORT" default:"5000"`
	LogLevel     string `envconfig:"RUPOSHI_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"RUPOSHI_LOG_WARN_STACK" default:"false"`
	LogFormat    string `envconfig:"RUPOSHI_LOG_FORMAT"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd) || strings.EqualFold(a.Env, "production")
}

type DBConfig struct {
	DSN        string `envconfig:"RUPOSHI_DB_DSN"`
	SQLitePath string `envconfig:"RUPOSHI_SQLITE_PATH" default:"ruposhi.db"`

	LegacyHost     string `envconfig:"RUPOSHI_DB_HOST"`
	LegacyPort     int    `envconfig:"RUPOSHI_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"RUPOSHI_DB_USER"`
	LegacyPassword string `envconfig:"RUPOSHI_DB_PASSWORD"`
	LegacyName     string `envconfig:"RUPOSHI_DB_NAME"`
	LegacySSLMode  string `envconfig:"RUPOSHI_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"RUPOSHI_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"RUPOSHI_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"RUPOSHI_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"RUPOSHI_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"RUPOSHI_REDIS_URL"`
	Address      string        `envconfig:"RUPOSHI_REDIS_ADDR"`
	Password     string        `envconfig:"RUPOSHI_REDIS_PASSWORD"`
	DB           int           `envconfig:"RUPOSHI_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"RUPOSHI_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"RUPOSHI_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"RUPOSHI_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"RUPOSHI_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"RUPOSHI_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// SessionConfig drives the cookie-borne session token.
type SessionConfig struct {
	Secret     string `envconfig:"RUPOSHI_ACCESS_TOKEN_SECRET" required:"true"`
	Issuer     string `envconfig:"RUPOSHI_SESSION_ISSUER" default:"ruposhi-bhojon"`
	TTLMinutes int    `envconfig:"RUPOSHI_SESSION_TTL_MINUTES" default:"60"`
	CookieName string `envconfig:"RUPOSHI_SESSION_COOKIE" default:"token"`
}

// TTL returns the session lifetime configured in minutes.
func (s SessionConfig) TTL() time.Duration {
	if s.TTLMinutes <= 0 {
		return 0
	}
	return time.Duration(s.TTLMinutes) * time.Minute
}

// Cookie returns the configured cookie name or the default.
func (s SessionConfig) Cookie() string {
	if name := strings.TrimSpace(s.CookieName); name != "" {
		return name
	}
	return DefaultSessionCookie
}

type CORSConfig struct {
	Origin string `envconfig:"RUPOSHI_CORS_ORIGIN" default:"http://localhost:5173"`
}

type AuthRateLimitConfig struct {
	SessionWindow     time.Duration `envconfig:"RUPOSHI_AUTH_RATE_LIMIT_SESSION_WINDOW" default:"1m"`
	SessionEmailLimit int           `envconfig:"RUPOSHI_AUTH_RATE_LIMIT_SESSION_EMAIL_LIMIT" default:"10"`
	SessionIPLimit    int           `envconfig:"RUPOSHI_AUTH_RATE_LIMIT_SESSION_IP_LIMIT" default:"30"`
	SignupWindow      time.Duration `envconfig:"RUPOSHI_AUTH_RATE_LIMIT_SIGNUP_WINDOW" default:"5m"`
	SignupEmailLimit  int           `envconfig:"RUPOSHI_AUTH_RATE_LIMIT_SIGNUP_EMAIL_LIMIT" default:"3"`
	SignupIPLimit     int           `envconfig:"RUPOSHI_AUTH_RATE_LIMIT_SIGNUP_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"RUPOSHI_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"RUPOSHI_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
