package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/grupo95/job-ledger-service/docs" // This will be auto-generated
	"github.com/grupo95/job-ledger-service/internal/adapter/http/handlers"
	repository2 "github.com/grupo95/job-ledger-service/internal/adapter/persistence/repository"
	"github.com/grupo95/job-ledger-service/internal/config"
	"github.com/grupo95/job-ledger-service/internal/infrastructure/cache"
	"github.com/grupo95/job-ledger-service/internal/infrastructure/database"
	"github.com/grupo95/job-ledger-service/internal/infrastructure/events"
	"github.com/grupo95/job-ledger-service/internal/logger"
	"github.com/grupo95/job-ledger-service/internal/usecase"
	"github.com/grupo95/job-ledger-service/internal/usecase/interfaces"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()

	if err := logger.Setup(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: cfg.LogOutput}); err != nil {
		log.Fatal().Err(err).Msg("failed to configure logging")
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(cfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("failed to startup the application")
	}
}

func getRoutes(cfg config.Config) {
	ctx := context.Background()

	pool, err := database.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	ledgerCache := cache.NewLedgerCache(cache.New(cfg.RedisAddr))

	// Without brokers the publisher stays nil and the use cases skip
	// event publishing.
	var publisher interfaces.ILedgerEventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		producer := events.NewProducer(cfg.KafkaBrokers, cfg.ServiceName, 256)
		producer.Start(ctx)
		publisher = producer
	} else {
		log.Warn().Msg("KAFKA_BROKERS not set; ledger events disabled")
	}

	jobRepo := repository2.NewJobPostgresRepository(pool)
	changeOrderRepo := repository2.NewChangeOrderPostgresRepository(pool)
	invoiceRepo := repository2.NewInvoicePostgresRepository(pool)
	paymentRepo := repository2.NewPaymentPostgresRepository(pool)

	jobUseCase := usecase.NewJobUseCase(jobRepo)
	pricingUseCase := usecase.NewPricingUseCase(jobRepo, ledgerCache, publisher)
	changeOrderUseCase := usecase.NewChangeOrderUseCase(changeOrderRepo, jobRepo, ledgerCache, publisher)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, jobRepo, changeOrderRepo, ledgerCache, publisher)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, jobRepo, ledgerCache, publisher)
	ledgerUseCase := usecase.NewLedgerUseCase(jobRepo, changeOrderRepo, invoiceRepo, paymentRepo, ledgerCache)

	jobHandler := handlers.NewJobHandler(jobUseCase)
	pricingHandler := handlers.NewPricingHandler(pricingUseCase)
	changeOrderHandler := handlers.NewChangeOrderHandler(changeOrderUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	ledgerHandler := handlers.NewLedgerHandler(ledgerUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLedgerRoutes(v1, jobHandler, pricingHandler, changeOrderHandler, invoiceHandler, paymentHandler, ledgerHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}
