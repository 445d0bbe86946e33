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

	"github.com/vesotel/worklog-management/internal"
	"github.com/vesotel/worklog-management/internal/accessrequest"
	requestPostgres "github.com/vesotel/worklog-management/internal/accessrequest/postgres"
	"github.com/vesotel/worklog-management/internal/company"
	companyPostgres "github.com/vesotel/worklog-management/internal/company/postgres"
	"github.com/vesotel/worklog-management/internal/core/events"
	"github.com/vesotel/worklog-management/internal/settings"
	settingsPostgres "github.com/vesotel/worklog-management/internal/settings/postgres"
	"github.com/vesotel/worklog-management/internal/transport/rest"
	"github.com/vesotel/worklog-management/internal/user"
	userPostgres "github.com/vesotel/worklog-management/internal/user/postgres"
	"github.com/vesotel/worklog-management/internal/worklog"
	worklogPostgres "github.com/vesotel/worklog-management/internal/worklog/postgres"
	"github.com/vesotel/worklog-management/pkg/logger"

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
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger

	WorkLogHandler  *worklog.Handler
	SettingsHandler *settings.Handler
	UserHandler     *user.Handler
	CompanyHandler  *company.Handler
	RequestHandler  *accessrequest.Handler
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(
		deps.Router,
		deps.DB.DB,
		deps.WorkLogHandler,
		deps.SettingsHandler,
		deps.UserHandler,
		deps.CompanyHandler,
		deps.RequestHandler,
		deps.Logger,
	)

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

	logger.Init(os.Getenv("APP_ENV"))
	appLogger := logger.LoggerWrapper()
	if appLogger == nil {
		appLogger = slog.Default()
	}

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{
		Conn: db.DB,
	}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	eventBus := events.NewEventBus(appLogger)
	registerEventHandlers(eventBus, appLogger)

	workLogRepo := worklogPostgres.NewWorkLogRepository(gormDB)
	settingsRepo := settingsPostgres.NewSettingsRepository(gormDB)
	userRepo := userPostgres.NewUserRepository(gormDB)
	companyRepo := companyPostgres.NewCompanyRepository(gormDB)
	requestRepo := requestPostgres.NewAccessRequestRepository(gormDB)

	settingsService := settings.NewService(settingsRepo, appLogger)
	workLogService := worklog.NewService(workLogRepo, settingsService, eventBus, appLogger)
	userService := user.NewService(userRepo, appLogger)
	companyService := company.NewService(companyRepo, appLogger)
	requestService := accessrequest.NewService(requestRepo, eventBus, appLogger)

	return &Dependencies{
		Config: config,
		Logger: appLogger,
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),

		WorkLogHandler:  worklog.NewHandler(workLogService),
		SettingsHandler: settings.NewHandler(settingsService),
		UserHandler:     user.NewHandler(userService),
		CompanyHandler:  company.NewHandler(companyService),
		RequestHandler:  accessrequest.NewHandler(requestService),
	}, nil
}

// registerEventHandlers wires audit logging for domain events
func registerEventHandlers(bus *events.EventBus, appLogger *slog.Logger) {
	bus.Subscribe(events.EventTypeWorkLogCreated, func(ctx context.Context, event events.Event) error {
		appLogger.Info("audit: work log created",
			"event_id", event.EventID(),
			"payload", event.Payload())
		return nil
	})

	bus.Subscribe(events.EventTypeAccessRequestResolved, func(ctx context.Context, event events.Event) error {
		appLogger.Info("audit: access request resolved",
			"event_id", event.EventID(),
			"payload", event.Payload())
		return nil
	})
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

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
