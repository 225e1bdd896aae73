package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"research-backend/internal/feedback"
	"research-backend/internal/llm"
	openaiclient "research-backend/internal/llm/openai"
	"research-backend/internal/researches"
	"research-backend/internal/services/health"
	"research-backend/internal/shared/config"
	"research-backend/internal/shared/metrics"
	"research-backend/internal/shared/server"
	"research-backend/internal/shared/storage/db"
	"research-backend/internal/shared/storage/object"
	localstore "research-backend/internal/shared/storage/object/local"
	"research-backend/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	Store           object.ObjectStore
	LLM             llm.Client
	ResearchRepo    researches.Repo
	FeedbackRepo    feedback.Repo
	ResearchService *researches.Service
	FeedbackService *feedback.Service
	ResearchHandler *researches.Handler
	FeedbackHandler *feedback.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	if err := telemetry.Init(cfg.Env); err != nil {
		return nil, err
	}
	metrics.Register()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  localstore.New(cfg.LocalStoreDir),
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		Health:          health.NewService(),
		ResearchHandler: app.ResearchHandler,
		FeedbackHandler: app.FeedbackHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, errConfig("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return sqlDB, nil
}

func buildServices(app *App) error {
	var researchRepo researches.Repo
	var feedbackRepo feedback.Repo
	if app.DB != nil {
		researchRepo = &researches.PGRepo{DB: app.DB}
		feedbackRepo = &feedback.PGRepo{DB: app.DB}
	} else {
		researchRepo = researches.NewMemoryRepo()
		feedbackRepo = feedback.NewMemoryRepo()
	}

	llmClient := llm.Client(llm.PlaceholderClient{})
	if app.Config.LLMProvider == "openai" {
		client, err := openaiclient.NewClient(
			os.Getenv("OPENAI_API_KEY"),
			app.Config.LLMModel,
			app.Config.SummaryMaxTokens,
			app.Config.AnswerMaxTokens,
		)
		if err != nil {
			if !isDevLike(app.Config.Env) {
				return err
			}
			log.Printf("bootstrap: openai client unavailable; using placeholder: %v", err)
		} else {
			llmClient = client
		}
	}

	researchSvc := &researches.Service{Store: app.Store, Repo: researchRepo, LLM: llmClient}
	feedbackSvc := &feedback.Service{Repo: feedbackRepo, Research: researchRepo, LLM: llmClient}

	app.LLM = llmClient
	app.ResearchRepo = researchRepo
	app.FeedbackRepo = feedbackRepo
	app.ResearchService = researchSvc
	app.FeedbackService = feedbackSvc
	app.ResearchHandler = researches.NewHandler(researchSvc)
	app.FeedbackHandler = feedback.NewHandler(feedbackSvc)

	return nil
}

func isDevLike(env string) bool {
	switch env {
	case "dev", "local":
		return true
	default:
		return false
	}
}

type errConfig string

func (e errConfig) Error() string { return string(e) }
