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

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/saifuldipak/eoffice/internal"
	"github.com/saifuldipak/eoffice/internal/auth"
	authPostgres "github.com/saifuldipak/eoffice/internal/auth/postgres"
	"github.com/saifuldipak/eoffice/internal/role"
	rolePostgres "github.com/saifuldipak/eoffice/internal/role/postgres"
	"github.com/saifuldipak/eoffice/internal/transport"
	"github.com/saifuldipak/eoffice/internal/transport/rest"
	"github.com/saifuldipak/eoffice/internal/user"
	userPostgres "github.com/saifuldipak/eoffice/internal/user/postgres"
	"github.com/saifuldipak/eoffice/pkg/logger"
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
	Gorm   *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

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
		deps.Logger.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func setupRoutes(deps *Dependencies) {
	cfg := deps.Config

	baseHandler := transport.NewBaseHandler(deps.Logger)

	authRepo := authPostgres.NewRepository(deps.Gorm)
	tokenValidator := &auth.TokenValidator{
		Secret: []byte(cfg.Security.AccessTokenSecret),
		TTL:    cfg.Security.AccessTokenDuration,
	}
	authSvc := auth.NewService(authRepo, tokenValidator, deps.Logger)

	userRepo := userPostgres.NewUserRepository(deps.Gorm)
	userSvc := user.NewService(userRepo, cfg.Security.BCryptCost, deps.Logger)
	userHandler := user.NewHandler(baseHandler, userSvc)

	roleRepo := rolePostgres.NewRoleRepository(deps.Gorm)
	roleSvc := role.NewService(roleRepo, deps.Logger)
	roleHandler := role.NewHandler(baseHandler, roleSvc)

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, authSvc, userHandler, roleHandler, deps.Logger)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)

	db, gormDB, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.L(),
		DB:     db,
		Gorm:   gormDB,
		Router: chi.NewRouter(),
	}, nil
}

// initDB opens the pgx-backed pool and a gorm session over the same
// connection. TranslateError lets the repositories see integrity
// violations as gorm sentinel errors.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, *gorm.DB, error) {
	dbConn, err := sqlx.Connect("pgx", cfg.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: dbConn.DB}), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		_ = dbConn.Close()
		return nil, nil, fmt.Errorf("failed to open gorm session: %w", err)
	}

	return dbConn, gormDB, nil
}
