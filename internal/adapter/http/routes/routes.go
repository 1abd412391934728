package routes

import (
	"log"
	"strconv"

	_ "botenwerf/docs" // This will be auto-generated
	"botenwerf/internal/adapter/http/handlers"
	repository2 "botenwerf/internal/adapter/persistence/repository"
	"botenwerf/internal/infrastructure/database"
	"botenwerf/internal/usecase"

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

	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	clientRepo := repository2.NewClientDynamoRepository(ddb)
	settingsRepo := repository2.NewSettingsDynamoRepository(ddb)
	sequenceRepo := repository2.NewSequenceDynamoRepository(ddb)

	projectUseCase := usecase.NewProjectUseCase(projectRepo, clientRepo, sequenceRepo, settingsRepo)
	configurationUseCase := usecase.NewConfigurationUseCase(projectRepo)
	quoteUseCase := usecase.NewQuoteUseCase(projectRepo)
	amendmentUseCase := usecase.NewAmendmentUseCase(projectRepo)
	bomUseCase := usecase.NewBOMUseCase(projectRepo, settingsRepo)
	taskUseCase := usecase.NewTaskUseCase(projectRepo)
	clientUseCase := usecase.NewClientUseCase(clientRepo)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo)

	projectHandler := handlers.NewProjectHandler(projectUseCase)
	configurationHandler := handlers.NewConfigurationHandler(configurationUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	amendmentHandler := handlers.NewAmendmentHandler(amendmentUseCase)
	bomHandler := handlers.NewBOMHandler(bomUseCase)
	taskHandler := handlers.NewTaskHandler(taskUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProjectRoutes(v1, projectHandler, configurationHandler, quoteHandler, amendmentHandler, bomHandler, taskHandler)
	addClientRoutes(v1, clientHandler)
	addSettingsRoutes(v1, settingsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
