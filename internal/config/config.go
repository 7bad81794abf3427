package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the service configuration. Keys are environment variable names;
// a file named by CONFIG_FILE may provide the same keys.
type Config struct {
	GRPCAddr        string        `mapstructure:"GRPC_ADDR"`
	SpannerDatabase string        `mapstructure:"SPANNER_DATABASE"`
	InvoiceDir      string        `mapstructure:"INVOICE_DIR"`
	ImageDir        string        `mapstructure:"IMAGE_DIR"`
	CatalogPageSize int           `mapstructure:"CATALOG_PAGE_SIZE"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	LogFormat       string        `mapstructure:"LOG_FORMAT"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`

	// Outbox relay.
	KafkaBrokers   []string      `mapstructure:"KAFKA_BROKERS"`
	OutboxTopic    string        `mapstructure:"OUTBOX_TOPIC"`
	RelayInterval  time.Duration `mapstructure:"RELAY_INTERVAL"`
	RelayBatchSize int           `mapstructure:"RELAY_BATCH_SIZE"`
}

var defaults = map[string]interface{}{
	"GRPC_ADDR":         ":50051",
	"SPANNER_DATABASE":  "projects/test-project/instances/emulator-instance/databases/test-db",
	"INVOICE_DIR":       "data/invoices",
	"IMAGE_DIR":         "images",
	"CATALOG_PAGE_SIZE": 2,
	"LOG_LEVEL":         "info",
	"LOG_FORMAT":        "json",
	"SHUTDOWN_TIMEOUT":  "5s",
	"KAFKA_BROKERS":     "localhost:9092",
	"OUTBOX_TOPIC":      "storefront.events",
	"RELAY_INTERVAL":    "2s",
	"RELAY_BATCH_SIZE":  100,
}

// Load reads defaults, then the optional CONFIG_FILE, then the environment.
// Later sources win.
func Load() (*Config, error) {
	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.SpannerDatabase == "" {
		errs = append(errs, errors.New("SPANNER_DATABASE is required"))
	}
	if c.GRPCAddr == "" {
		errs = append(errs, errors.New("GRPC_ADDR is required"))
	}
	if c.CatalogPageSize <= 0 {
		errs = append(errs, fmt.Errorf("CATALOG_PAGE_SIZE must be positive, got %d", c.CatalogPageSize))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout))
	}
	if len(c.KafkaBrokers) == 0 {
		errs = append(errs, errors.New("KAFKA_BROKERS is required"))
	}
	if c.OutboxTopic == "" {
		errs = append(errs, errors.New("OUTBOX_TOPIC is required"))
	}
	if c.RelayInterval <= 0 {
		errs = append(errs, fmt.Errorf("RELAY_INTERVAL must be positive, got %s", c.RelayInterval))
	}
	if c.RelayBatchSize <= 0 {
		errs = append(errs, fmt.Errorf("RELAY_BATCH_SIZE must be positive, got %d", c.RelayBatchSize))
	}
	return errors.Join(errs...)
}
