package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"letter-backend/internal/account"
	googleauth "letter-backend/internal/auth"
	"letter-backend/internal/credits"
	"letter-backend/internal/documents"
	"letter-backend/internal/letters"
	"letter-backend/internal/llm"
	openai "letter-backend/internal/llm/openai"
	"letter-backend/internal/shared/config"
	"letter-backend/internal/shared/server"
	"letter-backend/internal/shared/storage/db"
	"letter-backend/internal/shared/storage/object"
	localstore "letter-backend/internal/shared/storage/object/local"
	s3store "letter-backend/internal/shared/storage/object/s3"
	"letter-backend/internal/tasks"
	"letter-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	Store            object.ObjectStore
	UploadsBucket    string
	DocumentsRepo    documents.DocumentsRepo
	LettersRepo      letters.Repo
	TasksRepo        tasks.TasksRepo
	UsersRepo        users.Repo
	DocumentsService *documents.Service
	LettersService   *letters.Service
	CreditsService   *credits.Service
	TasksService     *tasks.Service
	AccountService   *account.Service
	UsersService     *users.Service
	DocumentsHandler *documents.Handler
	LettersHandler   *letters.Handler
	CreditsHandler   *credits.Handler
	TasksHandler     *tasks.Handler
	AccountHandler   *account.Handler
	UsersHandler     *users.Handler
	GoogleAuth       *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:        cfg,
		Router:        nil,
		DB:            sqlDB,
		Store:         store,
		UploadsBucket: strings.TrimSpace(os.Getenv("UPLOADS_S3_BUCKET")),
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		AccountHandler:  app.AccountHandler,
		CreditHandler:   app.CreditsHandler,
		DocumentHandler: app.DocumentsHandler,
		LetterHandler:   app.LettersHandler,
		TaskHandler:     app.TasksHandler,
		UserHandler:     app.UsersHandler,
		GoogleAuth:      app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
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
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	var docRepo documents.DocumentsRepo
	var letterRepo letters.Repo
	var taskRepo tasks.TasksRepo
	var userRepo users.Repo

	if app.DB != nil {
		docRepo = &documents.PGRepo{DB: app.DB}
		letterRepo = &letters.PGRepo{DB: app.DB}
		taskRepo = &tasks.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
	} else {
		docRepo = documents.NewMemoryRepo()
		letterRepo = letters.NewMemoryRepo()
		taskRepo = tasks.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	docSvc := &documents.Service{
		Store: app.Store,
		Repo:  docRepo,
	}

	var creditsSvc *credits.Service
	if app.DB != nil {
		creditsSvc = credits.NewPostgresService(credits.NewPGStore(app.DB))
	} else {
		creditsSvc = credits.NewService()
	}

	llmClient := llm.Client(llm.PlaceholderClient{})
	if app.Config.LLMProvider == "openai" && strings.TrimSpace(os.Getenv("OPENAI_API_KEY")) != "" {
		openaiClient, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), app.Config.LLMModel)
		if err != nil {
			return err
		}
		llmClient = openaiClient
	}

	letterSvc := &letters.Service{
		Repo:    letterRepo,
		Credits: creditsSvc,
		LLM:     llmClient,
		Builder: letters.NewBuilder(app.UploadsBucket, app.Config.AWSRegion),
		DocRepo: docRepo,
		Store:   app.Store,
	}

	taskSvc := &tasks.Service{Repo: taskRepo}

	userSvc := users.NewService(userRepo)
	googleAuthSvc := googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)

	app.DocumentsRepo = docRepo
	app.LettersRepo = letterRepo
	app.TasksRepo = taskRepo
	app.UsersRepo = userRepo
	app.DocumentsService = docSvc
	app.LettersService = letterSvc
	app.CreditsService = creditsSvc
	app.TasksService = taskSvc
	app.AccountService = account.NewService(docRepo, letterRepo, taskRepo)
	app.UsersService = userSvc
	app.DocumentsHandler = documents.NewHandler(docSvc)
	app.LettersHandler = letters.NewHandler(letterSvc)
	app.CreditsHandler = credits.NewHandler(creditsSvc)
	app.TasksHandler = tasks.NewHandler(taskSvc)
	app.AccountHandler = account.NewHandler(app.AccountService)
	app.UsersHandler = users.NewHandler(userSvc)
	app.GoogleAuth = googleAuthSvc

	if app.LettersHandler == nil || app.DocumentsHandler == nil || app.CreditsHandler == nil {
		return errors.New("failed to initialize handlers")
	}

	return nil
}
