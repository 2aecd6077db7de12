package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	"fireclub-api/internal/handlers"
	"fireclub-api/internal/logging"
	"fireclub-api/internal/repository"
	"fireclub-api/internal/service"
)

type Config struct {
	ServiceName    string
	ServiceVersion string
	Port           string
	Logger         *logging.ContextLogger
	TracerProvider trace.TracerProvider
	GinMode        string

	// Repositories are injectable; tests pass in-memory implementations,
	// main wires the Mongo ones.
	StatusRepo repository.StatusRepository
	SignupRepo repository.SignupRepository
}

type Application struct {
	server        *http.Server
	config        *Config
	router        *gin.Engine
	statusService *service.StatusService
	signupService *service.SignupService
}

func Build(config *Config) *Application {
	if config.GinMode != "" {
		gin.SetMode(config.GinMode)
	}

	statusRepo := config.StatusRepo
	if statusRepo == nil {
		statusRepo = repository.NewInMemoryStatusRepository()
	}
	signupRepo := config.SignupRepo
	if signupRepo == nil {
		signupRepo = repository.NewInMemorySignupRepository()
	}

	statusService := service.NewStatusService(statusRepo, config.Logger)
	signupService := service.NewSignupService(signupRepo, config.Logger)

	statusHandler := handlers.NewStatusHandler(statusService, config.Logger)
	signupHandler := handlers.NewSignupHandler(signupService, config.Logger)
	catalogHandler := handlers.NewCatalogHandler()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(config.ServiceName))

	// Public marketing API: all origins, methods and headers are allowed.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	router.Use(func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		config.Logger.WithTracing(c.Request.Context()).WithFields(map[string]interface{}{
			"method":     method,
			"path":       path,
			"status":     status,
			"latency_ms": latency.Milliseconds(),
			"user_agent": c.Request.UserAgent(),
		}).Info("HTTP request completed")
	})

	api := router.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
		})

		api.POST("/status", statusHandler.CreateStatusCheck)
		api.GET("/status", statusHandler.GetStatusChecks)

		api.POST("/signup", signupHandler.CreateSignup)
		api.GET("/signups", signupHandler.GetSignups)

		api.GET("/products", catalogHandler.GetProducts)
		api.GET("/stores", catalogHandler.GetAllStores)
		api.GET("/stores/:state", catalogHandler.GetStoresByState)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
			"service":   config.ServiceName,
		})
	})

	server := &http.Server{
		Addr:    ":" + config.Port,
		Handler: router,
	}

	return &Application{
		server:        server,
		config:        config,
		router:        router,
		statusService: statusService,
		signupService: signupService,
	}
}

func (app *Application) Run() error {
	app.config.Logger.Info("Starting server on :" + app.config.Port)
	if err := app.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (app *Application) Shutdown(ctx context.Context) error {
	app.config.Logger.Info("Shutting down server...")
	return app.server.Shutdown(ctx)
}

func (app *Application) GetRouter() *gin.Engine {
	return app.router
}
