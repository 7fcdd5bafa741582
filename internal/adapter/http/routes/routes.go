package routes

import (
	"log"
	"os"
	"strconv"

	_ "foamtrack/docs" // This will be auto-generated
	"foamtrack/internal/adapter/http/handlers"
	repository2 "foamtrack/internal/adapter/persistence/repository"
	"foamtrack/internal/infrastructure/database"
	"foamtrack/internal/infrastructure/payments"
	"foamtrack/internal/usecase"
	"foamtrack/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
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

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	jobRepo := repository2.NewJobDynamoRepository(ddb)
	measurementRepo := repository2.NewMeasurementDynamoRepository(ddb)
	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)
	rateTableRepo := repository2.NewRateTableDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)
	depositRepo := repository2.NewDepositDynamoRepository(ddb)

	guard := usecase.NewLockGuard(measurementRepo, userRepo)

	jobUseCase := usecase.NewJobUseCase(jobRepo)
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, measurementRepo, jobRepo, rateTableRepo, guard)
	measurementUseCase := usecase.NewMeasurementUseCase(measurementRepo, jobRepo, rateTableRepo, guard, estimateUseCase)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	depositUseCase := usecase.NewDepositUseCase(depositRepo, estimateRepo, paymentGateway)

	jobHandler := handlers.NewJobHandler(jobUseCase)
	measurementHandler := handlers.NewMeasurementHandler(measurementUseCase)
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	depositHandler := handlers.NewDepositHandler(depositUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCRMRoutes(v1, jobHandler, measurementHandler, estimateHandler, depositHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
