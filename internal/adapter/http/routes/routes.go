package routes

import (
	"context"
	"fmt"
	"net/http"

	_ "seminar_billing/docs" // generated by swag init
	"seminar_billing/internal/adapter/http/handlers"
	"seminar_billing/internal/adapter/http/middleware"
	"seminar_billing/internal/adapter/persistence/repository"
	"seminar_billing/internal/infrastructure/config"
	"seminar_billing/internal/infrastructure/database"
	"seminar_billing/internal/infrastructure/payments"
	"seminar_billing/internal/usecase"
	"seminar_billing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Repositories groups the persistence implementations the API runs on.
type Repositories struct {
	Quotes   interfaces.IQuoteRepository
	Payments interfaces.IQuotePaymentRepository
	Close    func(ctx context.Context) error
}

// Run wires the service and blocks serving HTTP.
func Run(cfg *config.Config, logger *zap.Logger) error {
	ctx := context.Background()

	repos, err := OpenRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := repos.Close(context.Background()); err != nil {
			logger.Warn("closing storage failed", zap.Error(err))
		}
	}()

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, logger)
	if err != nil {
		logger.Warn("mercado pago gateway not configured", zap.Error(err))
	} else {
		gateway = mpGateway
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := NewRouter(repos, gateway, cfg, logger)

	addr := ":" + cfg.AppPort
	logger.Info("http server listening", zap.String("addr", addr), zap.String("storage", cfg.StorageDriver))
	if err := router.Run(addr); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(repos Repositories, gateway interfaces.IPaymentGateway, cfg *config.Config, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg, logger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	quoteUseCase := usecase.NewQuoteUseCase(repos.Quotes, logger)
	paymentUseCase := usecase.NewQuotePaymentUseCase(repos.Payments, repos.Quotes, gateway,
		usecase.PaymentOptions{TestPayerEmail: cfg.MercadoPagoTestPayerEmail}, logger)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, logger)
	paymentHandler := handlers.NewQuotePaymentHandler(paymentUseCase, cfg.PaymentGatewayMock, logger)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler, paymentHandler)
	return router
}

// OpenRepositories connects to the configured document store.
func OpenRepositories(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Repositories, error) {
	switch cfg.StorageDriver {
	case config.StorageMongo:
		client, db, err := database.ConnectMongo(ctx, cfg)
		if err != nil {
			return Repositories{}, err
		}
		quotes := repository.NewQuoteMongoRepository(db)
		paymentsRepo := repository.NewQuotePaymentMongoRepository(db)
		if err := quotes.EnsureIndexes(ctx); err != nil {
			logger.Warn("quote indexes", zap.Error(err))
		}
		if err := paymentsRepo.EnsureIndexes(ctx); err != nil {
			logger.Warn("payment indexes", zap.Error(err))
		}
		logger.Info("storage ready", zap.String("driver", cfg.StorageDriver), zap.String("database", cfg.MongoDatabase))
		return Repositories{Quotes: quotes, Payments: paymentsRepo, Close: client.Disconnect}, nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return Repositories{}, err
		}
		logger.Info("storage ready",
			zap.String("driver", cfg.StorageDriver),
			zap.String("quotes_table", cfg.QuotesTable),
			zap.String("payments_table", cfg.PaymentsTable),
		)
		return Repositories{
			Quotes:   repository.NewQuoteDynamoRepository(ddb, cfg.QuotesTable),
			Payments: repository.NewQuotePaymentDynamoRepository(ddb, cfg.PaymentsTable),
			Close:    func(context.Context) error { return nil },
		}, nil
	}
}

func setMiddlewares(router *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.CORS(cfg.AllowedOrigins()))
	if cfg.RateLimitPerMinute > 0 {
		router.Use(middleware.NewRateLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst, logger).Handler())
	}
}
