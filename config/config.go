package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/spf13/viper"
)

/* Config is a helper package, values come from an optional .env file (toml syntax)
 * and the environment, the environment wins
 */

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port     string `mapstructure:"PORT"`
	DBDriver string `mapstructure:"DB_DRIVER"`

	SQLitePath string `mapstructure:"SQLITE_PATH"`

	PostgresHost               string `mapstructure:"POSTGRES_HOST"`
	PostgresPort               string `mapstructure:"POSTGRES_PORT"`
	PostgresUser               string `mapstructure:"POSTGRES_USER"`
	PostgresPassword           string `mapstructure:"POSTGRES_PASSWORD"`
	PostgresDB                 string `mapstructure:"POSTGRES_DB"`
	PostgresSSLMode            string `mapstructure:"POSTGRES_SSLMODE"`
	PostgresMaxOpenConns       int    `mapstructure:"POSTGRES_MAX_OPEN_CONNS"`
	PostgresMaxIdleConns       int    `mapstructure:"POSTGRES_MAX_IDLE_CONNS"`
	PostgresConnMaxLifeMinutes int    `mapstructure:"POSTGRES_CONN_MAX_LIFE_MINUTES"`
	AutoMigrate                bool   `mapstructure:"AUTO_MIGRATE"`

	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisDB              int    `mapstructure:"REDIS_DB"`
	ActivityStreamMaxLen int64  `mapstructure:"ACTIVITY_STREAM_MAX_LEN"`

	LogLevel string `mapstructure:"LOG_LEVEL"`
	LogJSON  bool   `mapstructure:"LOG_JSON"`

	FixturesFile string `mapstructure:"FIXTURES_FILE"`
}

var defaults = map[string]any{
	"PORT":                           "8080",
	"DB_DRIVER":                      DriverSQLite,
	"SQLITE_PATH":                    "library.db",
	"POSTGRES_HOST":                  "localhost",
	"POSTGRES_PORT":                  "5432",
	"POSTGRES_USER":                  "",
	"POSTGRES_PASSWORD":              "",
	"POSTGRES_DB":                    "",
	"POSTGRES_SSLMODE":               "disable",
	"POSTGRES_MAX_OPEN_CONNS":        25,
	"POSTGRES_MAX_IDLE_CONNS":        5,
	"POSTGRES_CONN_MAX_LIFE_MINUTES": 5,
	"AUTO_MIGRATE":                   true,
	"REDIS_ADDR":                     "",
	"REDIS_PASSWORD":                 "",
	"REDIS_DB":                       0,
	"ACTIVITY_STREAM_MAX_LEN":        10000,
	"LOG_LEVEL":                      "info",
	"LOG_JSON":                       true,
	"FIXTURES_FILE":                  "fixtures.yaml",
}

// GetConfig loads the configuration from the working directory
func GetConfig() (*Config, error) {
	return Load(".")
}

// Load reads dir/.env when present, then the environment
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("parsing config data: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the settings every binary needs
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required when DB_DRIVER is sqlite")
		}
		return nil
	case DriverPostgres:
		return c.ValidatePostgres()
	}
	return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
}

// ValidatePostgres checks the keys needed to reach PostgreSQL
func (c *Config) ValidatePostgres() error {
	var missing []string
	for key, value := range map[string]string{
		"POSTGRES_HOST": c.PostgresHost,
		"POSTGRES_PORT": c.PostgresPort,
		"POSTGRES_USER": c.PostgresUser,
		"POSTGRES_DB":   c.PostgresDB,
	} {
		if value == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing postgres configuration: %v", missing)
	}
	return nil
}

// PostgresConnectionString builds a lib/pq URL
func (c *Config) PostgresConnectionString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUser, c.PostgresPassword),
		Host:     c.PostgresHost + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=" + url.QueryEscape(c.PostgresSSLMode),
	}
	return u.String()
}

func (c *Config) GetPostgresMaxOpenConns() int {
	return positiveOr(c.PostgresMaxOpenConns, 25)
}

func (c *Config) GetPostgresMaxIdleConns() int {
	return positiveOr(c.PostgresMaxIdleConns, 5)
}

func (c *Config) GetPostgresConnMaxLifeMinutes() int {
	return positiveOr(c.PostgresConnMaxLifeMinutes, 5)
}

// ActivityEnabled reports whether a Redis address was configured for the activity feed
func (c *Config) ActivityEnabled() bool {
	return c.RedisAddr != ""
}

func positiveOr(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
