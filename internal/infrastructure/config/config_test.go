package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AppPort != "8080" || cfg.StorageDriver != StorageDynamoDB {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.QuotesTable != "quotes" || cfg.PaymentsTable != "quote_payments" {
		t.Fatalf("unexpected table defaults: %+v", cfg)
	}
	if cfg.PaymentGatewayMock {
		t.Fatalf("mock gateway must be off by default")
	}
	if cfg.RateLimitPerMinute != 600 || cfg.RateLimitBurst != 60 {
		t.Fatalf("unexpected rate limit defaults: %+v", cfg)
	}
	if got := cfg.AllowedOrigins(); len(got) != 1 || got[0] != "*" {
		t.Fatalf("unexpected cors default: %v", got)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", " Mongo ")
	t.Setenv("MONGO_DATABASE", "quotes_test")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	t.Setenv("ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AppPort != "9090" || cfg.StorageDriver != StorageMongo || cfg.MongoDatabase != "quotes_test" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if !cfg.PaymentGatewayMock || !cfg.IsProduction() {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestLoad_RejectsUnknownStorage(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unsupported storage driver")
	}
}

func TestLoad_RejectsNegativeRateLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "-1")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative rate limit")
	}
}

func TestConfig_AllowedOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: " http://a.local, ,http://b.local "}
	got := cfg.AllowedOrigins()
	if len(got) != 2 || got[0] != "http://a.local" || got[1] != "http://b.local" {
		t.Fatalf("unexpected origins: %v", got)
	}
	if (&Config{}).AllowedOrigins() != nil {
		t.Fatalf("expected nil for empty setting")
	}
}
