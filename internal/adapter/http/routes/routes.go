package routes

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	_ "conserta_ja/docs" // This will be auto-generated
	"conserta_ja/internal/adapter/http/handlers"
	"conserta_ja/internal/adapter/http/middleware"
	repository2 "conserta_ja/internal/adapter/persistence/repository"
	"conserta_ja/internal/infrastructure/database"
	"conserta_ja/internal/infrastructure/notify"
	"conserta_ja/internal/infrastructure/payments"
	"conserta_ja/internal/usecase"
	"conserta_ja/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	jobRepo := repository2.NewJobDynamoRepository(ddb)
	notifier := notify.NewWebhookNotifier(os.Getenv("NOTIFY_WEBHOOK_URL"))

	reconciler := usecase.NewBillingReconciler(envFloat("PLATFORM_FEE_RATE"), envInt("BILLING_UNIT_MINUTES"))

	lifecycleUseCase := usecase.NewJobLifecycleUseCase(jobRepo, notifier)
	quoteUseCase := usecase.NewQuoteUseCase(jobRepo, notifier)
	handshakeUseCase := usecase.NewHandshakeUseCase(jobRepo, notifier, reconciler, envDuration("HANDSHAKE_CODE_TTL"))

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	paymentUseCase := usecase.NewPaymentUseCase(jobRepo, paymentGateway, notifier)

	jobHandler := handlers.NewJobHandler(lifecycleUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	handshakeHandler := handlers.NewHandshakeHandler(handshakeUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := v1.Group("")
	authed.Use(middleware.ActorAuth())
	addJobRoutes(authed, jobHandler, quoteHandler, handshakeHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func envFloat(key string) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return 0
	}
	return v
}

func envInt(key string) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return 0
	}
	return v
}

func envDuration(key string) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return 0
	}
	return v
}
