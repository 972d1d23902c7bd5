package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMongo    = "mongo"
)

// Config holds all configuration values.
//
// Values come from the environment (a .env file is autoloaded by the
// binaries), optionally overridden by a config.yaml in the working directory
// or ./config.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	StorageDriver string `mapstructure:"STORAGE_DRIVER"`

	// DynamoDB. Local DynamoDB does not validate credentials, but the AWS
	// SDK requires them, hence the "local" defaults.
	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `mapstructure:"DYNAMODB_ENDPOINT"`
	QuotesTable        string `mapstructure:"QUOTES_TABLE"`
	PaymentsTable      string `mapstructure:"PAYMENTS_TABLE"`

	// MongoDB.
	MongoURI      string `mapstructure:"MONGO_URI"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	// Mercado Pago.
	MercadoPagoAccessToken    string `mapstructure:"MERCADOPAGO_ACCESS_TOKEN"`
	MercadoPagoTestPayerEmail string `mapstructure:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	PaymentGatewayMock        bool   `mapstructure:"PAYMENT_GATEWAY_MOCK"`

	// HTTP edge. A RATE_LIMIT_PER_MINUTE of 0 disables rate limiting.
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RateLimitPerMinute int    `mapstructure:"RATE_LIMIT_PER_MINUTE"`
	RateLimitBurst     int    `mapstructure:"RATE_LIMIT_BURST"`
}

var defaults = map[string]any{
	"APP_PORT":                     "8080",
	"ENV":                          "development",
	"LOG_LEVEL":                    "info",
	"STORAGE_DRIVER":               StorageDynamoDB,
	"AWS_REGION":                   "us-east-1",
	"AWS_ACCESS_KEY_ID":            "local",
	"AWS_SECRET_ACCESS_KEY":        "local",
	"DYNAMODB_ENDPOINT":            "",
	"QUOTES_TABLE":                 "quotes",
	"PAYMENTS_TABLE":               "quote_payments",
	"MONGO_URI":                    "mongodb://localhost:27017",
	"MONGO_DATABASE":               "seminar_billing",
	"MERCADOPAGO_ACCESS_TOKEN":     "",
	"MERCADOPAGO_TEST_PAYER_EMAIL": "",
	"PAYMENT_GATEWAY_MOCK":         false,
	"CORS_ALLOWED_ORIGINS":         "*",
	"RATE_LIMIT_PER_MINUTE":        600,
	"RATE_LIMIT_BURST":             60,
}

// Load reads the configuration. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageDynamoDB, StorageMongo:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.StorageDriver)
	}
	if strings.TrimSpace(c.AppPort) == "" {
		return errors.New("APP_PORT must not be empty")
	}
	if c.RateLimitPerMinute < 0 || c.RateLimitBurst < 0 {
		return errors.New("rate limit settings must not be negative")
	}
	return nil
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas, dropping blanks.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
