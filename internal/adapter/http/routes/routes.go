package routes

import (
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"servicios_ili/internal/adapter/document"
	"servicios_ili/internal/adapter/http/handlers"
	"servicios_ili/internal/adapter/persistence/repository"
	"servicios_ili/internal/adapter/persistence/tabular"
	"servicios_ili/internal/infrastructure/database"
	"servicios_ili/internal/infrastructure/idgen"
	"servicios_ili/internal/infrastructure/payments"
	"servicios_ili/internal/usecase"
	"servicios_ili/internal/usecase/interfaces"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	// A malformed range is a deployment mistake; refuse to serve rather
	// than fail on the first request.
	if err := repository.ValidateRanges(); err != nil {
		log.Fatalf("Invalid sheet range configuration: %v", err)
	}

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
	store := tabular.NewDynamoStore(ddb)
	ids := idgen.FromEnv(os.Getenv("ID_SOURCE"))

	clientRepo := repository.NewClientSheetRepository(store)
	taskRepo := repository.NewTaskSheetRepository(store, clientRepo)
	budgetRepo := repository.NewBudgetSheetRepository(store, clientRepo)
	agendaRepo := repository.NewAgendaSheetRepository(store, clientRepo)
	paymentRepo := repository.NewPaymentSheetRepository(store)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured, payment endpoints disabled: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	strictNumbers, _ := strconv.ParseBool(os.Getenv("BUDGET_NUMBER_STRICT"))
	policy := usecase.TransitionPolicyFromEnv(os.Getenv("TASK_STATUS_POLICY"))

	clientUseCase := usecase.NewClientUseCase(clientRepo, ids)
	taskUseCase := usecase.NewTaskUseCase(taskRepo, clientRepo, ids, policy)
	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, clientRepo, ids, document.NewBudgetRenderer(), strictNumbers)
	agendaUseCase := usecase.NewAgendaUseCase(agendaRepo, clientRepo, ids)
	portalUseCase := usecase.NewPortalUseCase(clientRepo, taskRepo, budgetRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, budgetRepo, paymentGateway, ids)

	// Rutas publicas
	api := router.Group("/api")
	addPingRoutes(api)
	addFieldServiceRoutes(api, fieldServiceHandlers{
		clients:  handlers.NewClientHandler(clientUseCase),
		tasks:    handlers.NewTaskHandler(taskUseCase),
		budgets:  handlers.NewBudgetHandler(budgetUseCase),
		agenda:   handlers.NewAgendaHandler(agendaUseCase),
		portal:   handlers.NewPortalHandler(portalUseCase),
		payments: handlers.NewPaymentHandler(paymentUseCase),
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
