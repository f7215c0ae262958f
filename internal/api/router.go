package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/oportuna/career-assistant/docs"
	"github.com/oportuna/career-assistant/internal/api/handler"
	"github.com/oportuna/career-assistant/internal/api/middleware"
	"github.com/oportuna/career-assistant/internal/core/service"
	"github.com/oportuna/career-assistant/internal/infrastructure/config"
	"github.com/oportuna/career-assistant/internal/infrastructure/credentials"
	mongodb "github.com/oportuna/career-assistant/internal/infrastructure/db/mongo"
	redisdb "github.com/oportuna/career-assistant/internal/infrastructure/db/redis"
	"github.com/oportuna/career-assistant/internal/infrastructure/embedding"
	"github.com/oportuna/career-assistant/internal/infrastructure/llm"
	"github.com/oportuna/career-assistant/internal/infrastructure/pipeline"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	cfg *config.Config,
	db *mongo.Database,
	rdb *redis.Client,
	creds *credentials.FileStore,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("assistant"))

	// --- Gateways ---
	llmClient := llm.NewGroqClient(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Model)
	embedder := embedding.NewCohereClient(cfg.Embedding.BaseURL, cfg.Embedding.APIKey, cfg.Embedding.Model)
	pipelineClient := pipeline.NewClient(cfg.Pipeline.URL)

	// --- Repositories ---
	conversationRepo := mongodb.NewConversationRepository(db)
	contextRepo := mongodb.NewContextRepository(db, embedder)
	opportunityRepo := mongodb.NewOpportunityRepository(db)
	handoffGuard := redisdb.NewHandoffGuard(rdb)

	// --- Services ---
	authService := service.NewAuthService(creds, cfg.JWTSecret, 24*time.Hour, log)
	handoffService := service.NewHandoffService(pipelineClient, opportunityRepo, handoffGuard, log)
	dialogueService := service.NewDialogueService(conversationRepo, contextRepo, llmClient, handoffService, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	conversationHandler := handler.NewConversationHandler(dialogueService)
	opportunityHandler := handler.NewOpportunityHandler(handoffService)

	// Chat routes accept an optional Bearer token issued by /login; requests
	// that present one must present a valid one.
	session := middleware.Session(cfg.JWTSecret)

	e.POST("/login", authHandler.Login)
	e.POST("/conversa", conversationHandler.Conversa, session)
	e.POST("/mensagem", conversationHandler.Mensagem, session)
	e.POST("/oportunidades", opportunityHandler.Oportunidades, session)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
