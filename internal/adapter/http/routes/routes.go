package routes

import (
	"log"

	_ "sales_associate/docs" // This will be auto-generated
	"sales_associate/internal/adapter/http/handlers"
	"sales_associate/internal/adapter/middleware"
	repository2 "sales_associate/internal/adapter/persistence/repository"
	"sales_associate/internal/config"
	"sales_associate/internal/infrastructure/cache"
	"sales_associate/internal/infrastructure/database"
	"sales_associate/internal/infrastructure/email"
	"sales_associate/internal/infrastructure/payments"
	"sales_associate/internal/usecase"
	"sales_associate/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	setMiddlewares(cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + cfg.AppPort); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	registry := cfg.Registry()

	store := repository2.NewSheetRecordStore(database.ConnectSheets(), registry)
	ledger := repository2.NewEmailDispatchDynamoRepository(database.ConnectDynamoDB())

	var sender interfaces.IEmailSender
	resendSender, err := email.NewResendSender(cfg.ResendAPIKey, cfg.EmailFrom)
	if err != nil {
		log.Printf("Email sender not configured: %v", err)
	} else {
		sender = resendSender
	}

	var paymentGateway interfaces.IPaymentLinkGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	approvalCfg := usecase.ApprovalConfig{
		Secret:             cfg.ApprovalSecret,
		TokenTTL:           cfg.ApprovalTokenTTL,
		BaseURL:            cfg.BaseURL,
		AdminEmail:         cfg.AdminEmail,
		FallbackPaymentURL: cfg.FallbackPaymentURL,
	}

	quoteUseCase := usecase.NewQuoteUseCase(store, registry, ledger, cfg.SiteReadTimeout)
	submissionUseCase := usecase.NewSubmissionUseCase(store, registry, sender, ledger)
	approvalUseCase := usecase.NewApprovalUseCase(store, registry, sender, ledger, paymentGateway, approvalCfg)
	paymentUseCase := usecase.NewPaymentUseCase(store, registry, sender, ledger)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	webhookHandler := handlers.NewWebhookHandler(submissionUseCase, approvalUseCase, paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSalesRoutes(v1, quoteHandler, webhookHandler)
}

func setMiddlewares(cfg *config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Printf("Idempotency store not configured: %v", err)
		return
	}
	router.Use(middleware.Idempotency(rdb, cfg.IdempTTL))
}
