package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginswagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/netpro-backend/docs"
	"github.com/rafabene/netpro-backend/internal/domain/authz"
	httphandlers "github.com/rafabene/netpro-backend/internal/handlers/http"
	"github.com/rafabene/netpro-backend/internal/handlers/middleware"
	"github.com/rafabene/netpro-backend/internal/infrastructure/config"
	"github.com/rafabene/netpro-backend/internal/infrastructure/i18n"
	"github.com/rafabene/netpro-backend/internal/infrastructure/logging"
	"github.com/rafabene/netpro-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/netpro-backend/internal/services"
)

// @title NetPro Back-office API
// @version 1.0
// @description API de autorização e gestão de operadores do back-office NetPro
// @BasePath /api/v1
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting netpro backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	operatorRepo := postgres.NewOperatorRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	events := services.NewEventBroadcaster(logger)
	operatorService := services.NewOperatorService(operatorRepo, uow, events, logger)

	// Inicializar handlers
	operatorHandler := httphandlers.NewOperatorHandler(operatorService)
	sessionHandler := httphandlers.NewSessionHandler()
	eventsHandler := httphandlers.NewEventsHandler(events, logger)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.CORS.AllowedOrigins, ",")
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Middleware de sessão: carrega o operador autenticado; quem nega é o
	// guard de cada rota
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret, operatorRepo, logger)
	router.Use(authMiddleware.Authenticate())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Swagger
	router.GET("/swagger/*any", ginswagger.WrapHandler(swaggerfiles.Handler))

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Sessão e projeções (sem guard: degradam para "nada visível")
		v1.GET("/session", sessionHandler.GetSession)
		v1.GET("/session/navigation", sessionHandler.GetNavigation)
		v1.GET("/events", eventsHandler.Stream)

		// Catálogo de permissões (para o editor)
		v1.GET("/permissions", middleware.RequirePermission(authz.PermissionOperatorsView), sessionHandler.GetCatalog)

		// Operators
		operators := v1.Group("/operators")
		{
			operators.POST("", middleware.RequirePermission(authz.PermissionOperatorsCreate), operatorHandler.CreateOperator)
			operators.GET("", middleware.RequirePermission(authz.PermissionOperatorsView), operatorHandler.ListOperators)
			operators.GET("/:id", middleware.RequirePermission(authz.PermissionOperatorsView), operatorHandler.GetOperator)
			operators.PUT("/:id", middleware.RequirePermission(authz.PermissionOperatorsEdit), operatorHandler.UpdateOperator)
			operators.DELETE("/:id", middleware.RequirePermission(authz.PermissionOperatorsDelete), operatorHandler.DeleteOperator)
			operators.GET("/:id/permissions", middleware.RequirePermission(authz.PermissionOperatorsView), operatorHandler.GetPermissions)
			operators.PUT("/:id/permissions", middleware.RequirePermission(authz.PermissionOperatorsEdit), operatorHandler.UpdatePermissions)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
