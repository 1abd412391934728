package routes

import (
	"botenwerf/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects = "/projects"
	PathClients  = "/clients"
	PathSettings = "/settings"
)

func addProjectRoutes(
	rg *gin.RouterGroup,
	projectHandler *handlers.ProjectHandler,
	configurationHandler *handlers.ConfigurationHandler,
	quoteHandler *handlers.QuoteHandler,
	amendmentHandler *handlers.AmendmentHandler,
	bomHandler *handlers.BOMHandler,
	taskHandler *handlers.TaskHandler,
) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("", projectHandler.ListProjects)
		projects.GET("/:id", projectHandler.GetProject)
		projects.DELETE("/:id", projectHandler.ArchiveProject)

		projects.GET("/:id/transitions", projectHandler.GetTransitions)
		projects.POST("/:id/transitions/preview", projectHandler.PreviewTransition)
		projects.POST("/:id/transition", projectHandler.Transition)

		projects.POST("/:id/items", configurationHandler.AddItem)
		projects.PATCH("/:id/items/:item_id", configurationHandler.UpdateItem)
		projects.DELETE("/:id/items/:item_id", configurationHandler.RemoveItem)
		projects.PATCH("/:id/items/:item_id/move", configurationHandler.MoveItem)
		projects.PATCH("/:id/pricing", configurationHandler.UpdatePricing)

		projects.POST("/:id/quotes", quoteHandler.CreateDraft)
		projects.PATCH("/:id/quotes/:quote_id", quoteHandler.UpdateDraft)
		projects.PATCH("/:id/quotes/:quote_id/send", quoteHandler.MarkAsSent)
		projects.PATCH("/:id/quotes/:quote_id/accept", quoteHandler.MarkAsAccepted)
		projects.PATCH("/:id/quotes/:quote_id/reject", quoteHandler.MarkAsRejected)
		projects.POST("/:id/quotes/:quote_id/new-version", quoteHandler.CreateNewVersion)

		projects.POST("/:id/amendments", amendmentHandler.RequestAmendment)
		projects.GET("/:id/amendments", amendmentHandler.ListAmendments)

		projects.POST("/:id/bom", bomHandler.GenerateBOM)
		projects.GET("/:id/bom/latest", bomHandler.GetLatestBOM)
		projects.GET("/:id/bom/:snapshot_id/export", bomHandler.ExportBOM)

		projects.POST("/:id/tasks", taskHandler.AddTask)
		projects.PATCH("/:id/tasks/:task_id/status", taskHandler.UpdateTaskStatus)
	}
}

func addClientRoutes(rg *gin.RouterGroup, clientHandler *handlers.ClientHandler) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
		clients.PUT("/:id", clientHandler.UpdateClient)
	}
}

func addSettingsRoutes(rg *gin.RouterGroup, settingsHandler *handlers.SettingsHandler) {
	settings := rg.Group(PathSettings)
	{
		settings.GET("/cost-estimation", settingsHandler.GetCostEstimation)
		settings.PUT("/cost-estimation", settingsHandler.UpdateCostEstimation)
	}
}
