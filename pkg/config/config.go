package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const productionEnv = "production"

type Config struct {
	App struct {
		Env             string `env:"APP_ENV" env-default:"development"`
		Port            int    `env:"PORT" env-default:"3000"`
		SentryUrl       string `env:"SENTRY_URL"`
		DisplayTimezone string `env:"DISPLAY_TIMEZONE" env-default:"UTC"`
	}
	Slack struct {
		BotToken      string `env:"SLACK_BOT_TOKEN" env-required:"true"`
		SigningSecret string `env:"SLACK_SIGNING_SECRET" env-required:"true"`
	}
	Olapic struct {
		Host    string        `env:"OLAPIC_API_HOST" env-default:"https://content.photorank.me/v1"`
		APIKey  string        `env:"OLAPIC_API_KEY" env-required:"true"`
		Timeout time.Duration `env:"OLAPIC_TIMEOUT" env-default:"15s"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST" env-default:"localhost"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
	RateLimit struct {
		Requests int           `env:"RATE_LIMIT_REQUESTS" env-default:"5"`
		Per      time.Duration `env:"RATE_LIMIT_PER" env-default:"1m"`
		Burst    int           `env:"RATE_LIMIT_BURST" env-default:"3"`
	}
	ShareLog struct {
		Retention time.Duration `env:"SHARE_LOG_RETENTION" env-default:"720h"`
	}
}

var (
	once    sync.Once
	cfg     *Config
	loadErr error
)

// New reads the configuration from the environment once per process.
func New() (*Config, error) {
	once.Do(func() {
		cfg, loadErr = read()
	})
	return cfg, loadErr
}

func read() (*Config, error) {
	c := &Config{}
	if err := cleanenv.ReadEnv(c); err != nil {
		help, _ := cleanenv.GetDescription(c, nil)
		return nil, fmt.Errorf("failed to read configuration: %w\n%s", err, help)
	}
	if _, err := time.LoadLocation(c.App.DisplayTimezone); err != nil {
		return nil, fmt.Errorf("invalid DISPLAY_TIMEZONE %q: %w", c.App.DisplayTimezone, err)
	}
	return c, nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == productionEnv
}

// CommandName is the slash command the bot answers to. Non-production
// deployments use a separate command so both can be installed side by side.
func (c *Config) CommandName() string {
	if c.IsProduction() {
		return "/olapic"
	}
	return "/olapic-local"
}

// Location is the display timezone for approval dates. It was validated by New.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.DisplayTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// GetDSN builds a URL DSN accepted by both pgx and lib/pq. Credentials are
// escaped.
func (c *Config) GetDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Postgres.User, c.Postgres.Pass),
		Host:     net.JoinHostPort(c.Postgres.Host, strconv.Itoa(c.Postgres.Port)),
		Path:     "/" + c.Postgres.Name,
		RawQuery: url.Values{"sslmode": {c.Postgres.SslMode}}.Encode(),
	}
	return u.String()
}
