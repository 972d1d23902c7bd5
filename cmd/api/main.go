package main

import (
	"log"

	_ "seminar_billing/docs"
	"seminar_billing/internal/adapter/http/routes"
	"seminar_billing/internal/infrastructure/config"
	"seminar_billing/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Seminar Billing API
// @version         1.0
// @description     Seminar quote pricing, drafts and payments backed by DynamoDB or MongoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	l, err := logger.New(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = l.Sync() }()

	if err := routes.Run(cfg, l); err != nil {
		l.Fatal("server stopped", zap.Error(err))
	}
}
