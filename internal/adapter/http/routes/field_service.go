package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"servicios_ili/internal/adapter/http/handlers"
)

const (
	PathClients = "/clients"
	PathTasks   = "/tasks"
	PathBudgets = "/budgets"
	PathAgenda  = "/agenda"
	PathPortal  = "/portal"
)

type fieldServiceHandlers struct {
	clients  *handlers.ClientHandler
	tasks    *handlers.TaskHandler
	budgets  *handlers.BudgetHandler
	agenda   *handlers.AgendaHandler
	portal   *handlers.PortalHandler
	payments *handlers.PaymentHandler
}

func addFieldServiceRoutes(rg *gin.RouterGroup, h fieldServiceHandlers) {
	clients := rg.Group(PathClients)
	{
		clients.GET("", h.clients.ListClients)
		clients.POST("", h.clients.CreateClient)
	}

	tasks := rg.Group(PathTasks)
	{
		tasks.GET("", h.tasks.ListTasks)
		tasks.POST("", h.tasks.CreateTask)
		tasks.PATCH("/:id", h.tasks.PatchTaskStatus)
	}

	budgets := rg.Group(PathBudgets)
	{
		budgets.GET("", h.budgets.ListBudgets)
		budgets.POST("", h.budgets.CreateBudget)
		budgets.GET("/:number/document", h.budgets.DownloadDocument)
		budgets.POST("/:number/payments", h.payments.ChargeBudget)
		budgets.GET("/:number/payments", h.payments.ListPayments)
	}

	agenda := rg.Group(PathAgenda)
	{
		agenda.GET("", h.agenda.ListEvents)
		agenda.POST("", h.agenda.CreateEvent)
	}

	rg.GET(PathPortal+"/:clientId", h.portal.GetOverview)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
