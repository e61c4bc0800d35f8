// README: Config loader with env defaults for HTTP, catalog, DB, Redis quota and logging.
package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
)

// CatalogSource selects where the catalog tables are read from at startup.
type CatalogSource string

const (
	CatalogBuiltin  CatalogSource = "builtin"
	CatalogFile     CatalogSource = "file"
	CatalogPostgres CatalogSource = "postgres"
)

var ErrInvalidConfig = errors.New("invalid config")

type HTTPConfig struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":5000"`
	CORSOrigin      string        `env:"CORS_ORIGIN" envDefault:"*"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	// TrustedProxies lists the proxy IPs or CIDRs whose forwarding headers
	// name the client. Empty trusts none, so clients are keyed by remote address.
	TrustedProxies []string `env:"HTTP_TRUSTED_PROXIES" envSeparator:","`
}

type CatalogConfig struct {
	Source   CatalogSource `env:"CATALOG_SOURCE" envDefault:"builtin"`
	File     string        `env:"CATALOG_FILE"`
	Snapshot string        `env:"CATALOG_SNAPSHOT" envDefault:"default"`
}

type DBConfig struct {
	DSN            string        `env:"DB_DSN"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"30s"`
}

type RedisConfig struct {
	Addr           string        `env:"REDIS_ADDR"`
	Password       string        `env:"REDIS_PASSWORD"`
	DB             int           `env:"REDIS_DB" envDefault:"0"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"15s"`
}

// QuotaConfig is a fixed-window request quota per client. It is only active
// when Redis is configured.
type QuotaConfig struct {
	Limit  int64         `env:"QUOTA_LIMIT" envDefault:"60"`
	Window time.Duration `env:"QUOTA_WINDOW" envDefault:"1m"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	Dev   bool   `env:"LOG_DEV" envDefault:"false"`
}

type Config struct {
	HTTP    HTTPConfig
	Catalog CatalogConfig
	DB      DBConfig
	Redis   RedisConfig
	Quota   QuotaConfig
	Log     LogConfig
}

const envPrefix = "SENSEI_"

// Load reads SENSEI_* variables from the environment.
func Load() (Config, error) {
	return parse(env.Options{Prefix: envPrefix})
}

// LoadFrom reads configuration from vars instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Prefix: envPrefix, Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the cross-field rules env tags cannot express.
func (c Config) Validate() error {
	var errs []error
	switch c.Catalog.Source {
	case CatalogBuiltin:
	case CatalogFile:
		if c.Catalog.File == "" {
			errs = append(errs, fmt.Errorf("%w: SENSEI_CATALOG_FILE is required for the file catalog source", ErrInvalidConfig))
		}
	case CatalogPostgres:
		if c.DB.DSN == "" {
			errs = append(errs, fmt.Errorf("%w: SENSEI_DB_DSN is required for the postgres catalog source", ErrInvalidConfig))
		}
		if c.Catalog.Snapshot == "" {
			errs = append(errs, fmt.Errorf("%w: SENSEI_CATALOG_SNAPSHOT must not be empty", ErrInvalidConfig))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: unknown catalog source %q", ErrInvalidConfig, c.Catalog.Source))
	}
	for _, p := range c.HTTP.TrustedProxies {
		if !validProxy(p) {
			errs = append(errs, fmt.Errorf("%w: SENSEI_HTTP_TRUSTED_PROXIES entry %q is not an IP or CIDR", ErrInvalidConfig, p))
		}
	}
	if c.QuotaEnabled() {
		if c.Quota.Limit <= 0 {
			errs = append(errs, fmt.Errorf("%w: SENSEI_QUOTA_LIMIT must be positive", ErrInvalidConfig))
		}
		if c.Quota.Window <= 0 {
			errs = append(errs, fmt.Errorf("%w: SENSEI_QUOTA_WINDOW must be positive", ErrInvalidConfig))
		}
	}
	return errors.Join(errs...)
}

// QuotaEnabled reports whether the Redis request quota should be installed.
func (c Config) QuotaEnabled() bool {
	return c.Redis.Addr != ""
}

func validProxy(p string) bool {
	if strings.Contains(p, "/") {
		_, _, err := net.ParseCIDR(p)
		return err == nil
	}
	return net.ParseIP(p) != nil
}
