package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/govflow/govflow/internal"
	"github.com/govflow/govflow/internal/activity"
	activityPostgres "github.com/govflow/govflow/internal/activity/postgres"
	"github.com/govflow/govflow/internal/comment"
	commentPostgres "github.com/govflow/govflow/internal/comment/postgres"
	"github.com/govflow/govflow/internal/core/events"
	"github.com/govflow/govflow/internal/doctype"
	doctypePostgres "github.com/govflow/govflow/internal/doctype/postgres"
	"github.com/govflow/govflow/internal/document"
	documentPostgres "github.com/govflow/govflow/internal/document/postgres"
	"github.com/govflow/govflow/internal/identity"
	identityPostgres "github.com/govflow/govflow/internal/identity/postgres"
	"github.com/govflow/govflow/internal/transport"
	"github.com/govflow/govflow/internal/transport/rest"
	"github.com/govflow/govflow/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config          *internal.Config
	DB              *sqlx.DB
	GormDB          *gorm.DB
	Router          *chi.Mux
	Logger          *slog.Logger
	EventBus        *events.EventBus
	DocumentHandler *document.Handler
	IdentityHandler *identity.Handler
	DoctypeHandler  *doctype.Handler
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, deps.DocumentHandler, deps.IdentityHandler, deps.DoctypeHandler, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Logging.Level, config.Logging.Format)
	appLogger := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// gorm shares the pgx connection pool sqlx already manages
	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	eventBus := events.NewEventBus(appLogger)

	identityRepo := identityPostgres.NewIdentityRepository(gormDB)
	identityService := identity.NewService(identityRepo, appLogger)
	identityHandler := identity.NewHandler(identityService)

	activityRepo := activityPostgres.NewActivityRepository(gormDB)
	activityService := activity.NewService(activityRepo, appLogger)

	commentRepo := commentPostgres.NewCommentRepository(gormDB)
	commentService := comment.NewService(commentRepo, appLogger)

	doctypeRepo := doctypePostgres.NewDocumentTypeRepository(gormDB)
	doctypeService := doctype.NewService(doctypeRepo, appLogger)
	doctypeHandler := doctype.NewHandler(transport.NewBaseHandler(appLogger), doctypeService)

	documentRepo := documentPostgres.NewDocumentRepository(gormDB)
	documentService := document.NewService(
		documentRepo,
		identityService,
		activityService,
		commentService,
		eventBus,
		config.Workflow.LockTimeoutOrDefault(),
		appLogger,
	)
	documentHandler := document.NewHandler(documentService)

	return &Dependencies{
		Config:          config,
		Logger:          appLogger,
		DB:              db,
		GormDB:          gormDB,
		Router:          chi.NewRouter(),
		EventBus:        eventBus,
		DocumentHandler: documentHandler,
		IdentityHandler: identityHandler,
		DoctypeHandler:  doctypeHandler,
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
