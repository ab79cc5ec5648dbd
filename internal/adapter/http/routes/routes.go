package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "barbearia_matheus/docs" // This will be auto-generated
	"barbearia_matheus/internal/adapter/http/handlers"
	"barbearia_matheus/internal/adapter/http/middleware"
	repository2 "barbearia_matheus/internal/adapter/persistence/repository"
	"barbearia_matheus/internal/infrastructure/database"
	"barbearia_matheus/internal/infrastructure/payments"
	"barbearia_matheus/internal/usecase"
	"barbearia_matheus/internal/usecase/interfaces"
	"barbearia_matheus/internal/viewmodel"

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

	clientRepo := repository2.NewClientDynamoRepository(ddb)
	serviceRepo := repository2.NewServiceDynamoRepository(ddb)
	attendanceRepo := repository2.NewAttendanceDynamoRepository(ddb)
	adminRepo := repository2.NewAdminDynamoRepository(ddb)
	sessionRepo := repository2.NewSessionDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	authUseCase := usecase.NewAuthUseCase(adminRepo, sessionRepo, clientRepo)
	clientUseCase := usecase.NewClientUseCase(clientRepo, attendanceRepo)
	serviceUseCase := usecase.NewServiceUseCase(serviceRepo)
	attendanceUseCase := usecase.NewAttendanceUseCase(attendanceRepo, clientRepo, serviceRepo, paymentGateway)
	reportUseCase := usecase.NewReportUseCase(attendanceRepo, clientRepo)

	// The board polls today's attendances for the admin screen; it lives for
	// the whole process.
	board := viewmodel.NewBoard(attendanceUseCase, 0)
	go board.Run(context.Background())

	authHandler := handlers.NewAuthHandler(authUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	serviceHandler := handlers.NewServiceHandler(serviceUseCase)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceUseCase, board)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	requireAdmin := middleware.RequireAdmin(authUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBarbershopRoutes(v1, requireAdmin, authHandler, clientHandler, serviceHandler, attendanceHandler, reportHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
