package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/frahmantamala/ops-dashboard/internal"
	"github.com/frahmantamala/ops-dashboard/internal/activity"
	activityPostgres "github.com/frahmantamala/ops-dashboard/internal/activity/postgres"
	"github.com/frahmantamala/ops-dashboard/internal/core/events"
	"github.com/frahmantamala/ops-dashboard/internal/daterange"
	"github.com/frahmantamala/ops-dashboard/internal/employee"
	employeePostgres "github.com/frahmantamala/ops-dashboard/internal/employee/postgres"
	"github.com/frahmantamala/ops-dashboard/internal/jobrequest"
	jobrequestPostgres "github.com/frahmantamala/ops-dashboard/internal/jobrequest/postgres"
	"github.com/frahmantamala/ops-dashboard/internal/scope"
	scopePostgres "github.com/frahmantamala/ops-dashboard/internal/scope/postgres"
	"github.com/frahmantamala/ops-dashboard/internal/session"
	"github.com/frahmantamala/ops-dashboard/internal/talent"
	"github.com/frahmantamala/ops-dashboard/internal/talent/ai"
	talentPostgres "github.com/frahmantamala/ops-dashboard/internal/talent/postgres"
	"github.com/frahmantamala/ops-dashboard/internal/transport"
	"github.com/frahmantamala/ops-dashboard/internal/transport/middleware"
	"github.com/frahmantamala/ops-dashboard/internal/transport/rest"
)

const shutdownTimeout = 30 * time.Second

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	DB       *sqlx.DB
	Gorm     *gorm.DB
	EventBus *events.EventBus
	Router   *chi.Mux
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := internal.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
		if err := deps.EventBus.Drain(ctx); err != nil {
			deps.Logger.Warn("Event handlers still running at shutdown", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			deps.Logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	lg := setupLogger(config)

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	gormDB, err := initGorm(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	deps := &Dependencies{
		Config:   config,
		DB:       db,
		Gorm:     gormDB,
		EventBus: events.NewEventBus(lg),
		Router:   chi.NewRouter(),
		Logger:   lg,
	}

	routes, err := buildRoutes(deps)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	rest.RegisterAllRoutes(deps.Router, routes, lg)
	return deps, nil
}

func buildRoutes(deps *Dependencies) (rest.Dependencies, error) {
	cfg := deps.Config
	lg := deps.Logger
	base := transport.NewBaseHandler(lg)

	dates, err := daterange.NewResolver(cfg.Organization.Timezone)
	if err != nil {
		return rest.Dependencies{}, fmt.Errorf("failed to load organisation timezone: %w", err)
	}
	scopes := scope.NewResolver(scopePostgres.NewLookupRepository(deps.Gorm), lg)
	authorizer := session.NewAuthorizer(cfg.Security.SessionSecret, lg)

	lim, err := middleware.NewLimiter(cfg.Server.RateLimit)
	if err != nil {
		return rest.Dependencies{}, fmt.Errorf("failed to build rate limiter: %w", err)
	}

	doc, err := rest.LoadOpenAPI(context.Background(), cfg.Server.OpenAPIPath)
	if err != nil {
		return rest.Dependencies{}, fmt.Errorf("failed to load openapi document: %w", err)
	}

	activityService := activity.NewService(activityPostgres.NewActivityRepository(deps.Gorm), dates, lg)

	employeeService := employee.NewService(
		employeePostgres.NewEmployeeRepository(deps.Gorm),
		employee.NewListOptions(cfg.Directory.DefaultLimit, cfg.Directory.MaxLimit),
		lg,
	)

	talentService := talent.NewService(
		talentPostgres.NewTalentRepository(deps.Gorm),
		ai.New(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model, lg),
		talent.NewListOptions(cfg.Directory.DefaultLimit, cfg.Directory.MaxLimit),
		lg,
	)

	jobrequest.NewEventHandler(lg).RegisterEventHandlers(deps.EventBus)
	jobRequestService := jobrequest.NewService(
		jobrequestPostgres.NewJobRequestRepository(deps.Gorm),
		jobrequestPostgres.NewLatestRepository(deps.DB),
		deps.EventBus,
		cfg.JobRequests.DisplayCap,
		lg,
	)

	routes := rest.Dependencies{
		DB:             deps.DB,
		OpenAPI:        doc,
		Authorizer:     authorizer,
		Limiter:        lim,
		AllowedOrigins: cfg.Server.Origins(),
		Activity:       activity.NewHandler(base, activityService, scopes, dates, cfg.Directory.MaxLimit),
		Employee:       employee.NewHandler(base, employeeService, scopes),
		Talent:         talent.NewHandler(base, talentService),
		JobRequest:     jobrequest.NewHandler(base, jobRequestService, scopes),
	}
	if cfg.Observability.Metrics.Enabled {
		routes.MetricsPath = cfg.Observability.Metrics.Path
	}
	return routes, nil
}

// initDB opens the pgx pool that sqlx and gorm share.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	ctx, cancel := internal.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbConn.PingContext(ctx); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return dbConn, nil
}

func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{Conn: db.DB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
}
