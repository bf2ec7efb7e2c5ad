package config

import (
	"fmt"
	"io/fs"
	"time"

	"hotel-reservation/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Broker    BrokerConfig
	Search    SearchConfig
}

type ServerConfig struct {
	Port              string        `envconfig:"PORT" required:"true"`
	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"10s"`
	WriteTimeout      time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout   time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns int32  `envconfig:"DB_MIN_CONNS" default:"2"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location,X-Request-ID,X-RateLimit-Limit,X-RateLimit-Remaining,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  time.Duration `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration time.Duration `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// Empty Addr disables the catalog cache and the rate limiter.
type RedisConfig struct {
	Addr        string        `envconfig:"REDIS_ADDR" default:""`
	Password    string        `envconfig:"REDIS_PASSWORD" default:""`
	DB          int           `envconfig:"REDIS_DB" default:"0"`
	PingTimeout time.Duration `envconfig:"REDIS_PING_TIMEOUT" default:"2s"`
	CachePrefix string        `envconfig:"CACHE_PREFIX" default:"hotel"`
	CacheTTL    time.Duration `envconfig:"CACHE_TTL" default:"5m"`
}

type RateLimitConfig struct {
	Enabled        bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	Capacity       int           `envconfig:"RATE_LIMIT_CAPACITY" default:"60"`
	RefillTokens   int           `envconfig:"RATE_LIMIT_REFILL_TOKENS" default:"1"`
	RefillInterval time.Duration `envconfig:"RATE_LIMIT_REFILL_INTERVAL" default:"1s"`
	TTL            time.Duration `envconfig:"RATE_LIMIT_TTL" default:"10m"`
	Prefix         string        `envconfig:"RATE_LIMIT_PREFIX" default:"ratelimit"`
}

// Empty URL disables the outbox relay; jobs stay queued in the database.
type BrokerConfig struct {
	URL           string        `envconfig:"AMQP_URL" default:""`
	Queue         string        `envconfig:"AMQP_QUEUE" default:"reservation.events"`
	RelayInterval time.Duration `envconfig:"OUTBOX_RELAY_INTERVAL" default:"2s"`
	RelayBatch    int32         `envconfig:"OUTBOX_RELAY_BATCH" default:"50"`
	MaxAttempts   int32         `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"5"`
}

type SearchConfig struct {
	DefaultDaysRange int `envconfig:"SEARCH_DEFAULT_DAYS_RANGE" default:"7"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// LoadConfig reads an optional .env file, then the process environment.
// Variables already present in the environment win over the file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDBConfig only requires the DB_* variables, for tools that never
// serve HTTP.
func LoadDBConfig() (DBConfig, error) {
	var cfg DBConfig
	if err := load(&cfg); err != nil {
		return DBConfig{}, err
	}
	return cfg, nil
}

func load(target any) error {
	if err := godotenv.Load(); err != nil && !errs.Is(err, fs.ErrNotExist) {
		return errs.Wrap(err, "load .env file")
	}
	if err := envconfig.Process("", target); err != nil {
		return errs.Wrap(err, "process env config")
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
			MinConns: 1,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-jwt-signing",
			AccessTokenDuration:  15 * time.Minute,
			RefreshTokenDuration: 7 * 24 * time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Redis: RedisConfig{
			PingTimeout: 2 * time.Second,
			CachePrefix: "hotel-test",
			CacheTTL:    time.Minute,
		},
		Broker: BrokerConfig{
			Queue:         "reservation.events",
			RelayInterval: time.Second,
			RelayBatch:    10,
			MaxAttempts:   5,
		},
		Search: SearchConfig{
			DefaultDaysRange: 7,
		},
	}
}
