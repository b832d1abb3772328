package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/01moynul/inkwell-api/internal/auth"
	"github.com/01moynul/inkwell-api/internal/config"
	"github.com/01moynul/inkwell-api/internal/database"
	"github.com/01moynul/inkwell-api/internal/handlers"
	"github.com/01moynul/inkwell-api/internal/logger"
	"github.com/01moynul/inkwell-api/internal/routes"
	"github.com/01moynul/inkwell-api/internal/service"
	"github.com/01moynul/inkwell-api/internal/store/sqlstore"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	zap.ReplaceGlobals(zlog)

	os.Exit(exitCode(zlog, run(cfg, zlog)))
}

// exitCode logs err and flushes zlog before the process exits.
func exitCode(zlog *zap.Logger, err error) int {
	code := 0
	if err != nil {
		zlog.Error("server stopped", zap.Error(err))
		code = 1
	}
	_ = zlog.Sync()
	return code
}

func run(cfg config.Config, zlog *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.JWTSecret == config.DevJWTSecret {
		zlog.Warn("using the development JWT secret; set JWT_SECRET")
	}

	// 1. --- Database Connection ---
	db, err := database.Open(ctx, cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return err
	}
	st, err := sqlstore.New(db, sqlstore.WithLogger(zlog.Named("sqlstore")))
	if err != nil {
		_ = db.Close()
		return err
	}
	defer st.Close()

	if err := st.Migrate(ctx); err != nil {
		return err
	}

	// 2. --- Services ---
	slugify, err := service.SluggerFor(cfg.SlugMode)
	if err != nil {
		return err
	}
	opts := service.Options{
		Slugify:      slugify,
		MaxPageLimit: cfg.MaxPageLimit,
		Logger:       zlog.Named("service"),
	}
	tokens := auth.NewManager(cfg.JWTSecret, cfg.JWTTTL)

	// --- Application Setup ---
	app := &handlers.Handlers{
		Articles:   service.NewArticleService(st, opts),
		Categories: service.NewCategoryService(st, opts),
		Users:      service.NewUserService(st, tokens, opts),
		UploadDir:  cfg.UploadDir,
	}

	// --- Router Setup ---
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.SetupRouter(app, routes.Options{
		Logger:     zlog.Named("http"),
		Tokens:     tokens,
		CORSOrigin: cfg.CORSOrigin,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           otelhttp.NewHandler(router, "inkwell-api"),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// --- Start Server ---
	errCh := make(chan error, 1)
	go func() {
		zlog.Info("starting Inkwell API server", zap.String("addr", cfg.Addr), zap.String("db_driver", cfg.DBDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zlog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
