package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.opentelemetry.io/otel/attribute"
)

// Transports selectable with DHL_EXPRESS_TRANSPORT.
const (
	TransportMock = "mock"
	TransportREST = "rest"
)

// Prefix is the environment prefix of every setting.
const Prefix = "DHL_EXPRESS"

// Config holds all configuration for the CLI.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Transport
	Transport   string        `envconfig:"TRANSPORT" default:"mock"`
	RESTBaseURL string        `envconfig:"REST_BASE_URL" default:"https://wsbexpress.dhl.com/rest/sndpt"`
	RESTTimeout time.Duration `envconfig:"REST_TIMEOUT" default:"30s"`
	Username    string        `envconfig:"USERNAME"`
	Password    string        `envconfig:"PASSWORD"`

	// Telemetry
	OTELEnabled  bool   `envconfig:"OTEL_ENABLED" default:"false"`
	OTELEndpoint string `envconfig:"OTEL_ENDPOINT" default:"http://localhost:4318"`
	ServiceName  string `envconfig:"SERVICE_NAME" default:"dhlexpress"`
	Version      string `envconfig:"SERVICE_VERSION" default:"0.1.0"`
}

// Load reads configuration from DHL_EXPRESS_* environment variables. Files in envFiles are
// loaded first without overriding variables already set; missing files are skipped.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings envconfig cannot express.
func (c *Config) Validate() error {
	switch c.Transport {
	case TransportMock:
	case TransportREST:
		if c.RESTBaseURL == "" {
			return errors.New("invalid config: REST_BASE_URL is required for the rest transport")
		}
	default:
		return fmt.Errorf("invalid config: unknown transport %q", c.Transport)
	}
	if c.RESTTimeout <= 0 {
		return fmt.Errorf("invalid config: REST_TIMEOUT must be positive, got %s", c.RESTTimeout)
	}
	return nil
}

// Attributes returns OpenTelemetry resource attributes for this configuration.
func (c *Config) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("service.name", c.ServiceName),
		attribute.String("service.version", c.Version),
		attribute.String("dhlexpress.transport", c.Transport),
	}
}
