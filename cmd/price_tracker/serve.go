package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/SscSPs/price_tracker_app/internal/adapters/tgju"
	portssvc "github.com/SscSPs/price_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/price_tracker_app/internal/core/services"
	"github.com/SscSPs/price_tracker_app/internal/handlers"
	"github.com/SscSPs/price_tracker_app/internal/middleware"
	"github.com/SscSPs/price_tracker_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/price_tracker_app/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if runMigrations, _ := cmd.Flags().GetBool("migrate"); runMigrations {
			logger.Info("Running database migrations...")
			if _, err := database.RunMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
				return err
			}
		}

		dbPool, svc, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer dbPool.Close()

		if cfg.IsProduction {
			gin.SetMode(gin.ReleaseMode)
		}

		r := gin.New()
		r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
		r.Use(cors.New(corsConfig()))

		if err := r.SetTrustedProxies(nil); err != nil {
			return fmt.Errorf("failed to set trusted proxies: %w", err)
		}

		if err := handlers.RegisterRoutes(r, cfg, svc); err != nil {
			return fmt.Errorf("failed to register routes: %w", err)
		}

		logger.Info("Server starting", slog.String("port", cfg.Port))
		return r.Run(":" + cfg.Port)
	},
}

func init() {
	serveCmd.Flags().Bool("migrate", true, "apply pending migrations before serving")
}

// bootstrap connects to the database and wires the service container.
func bootstrap(ctx context.Context) (*pgxpool.Pool, *portssvc.ServiceContainer, error) {
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	logger.Info("Database connection pool established.")

	source := tgju.NewClient(
		cfg.TGJUTimeout,
		tgju.WithURL(cfg.TGJUURL),
		tgju.WithUserAgent(cfg.TGJUUserAgent),
		tgju.WithLogger(logger),
	)

	repos := pgsql.NewRepositoryProvider(dbPool)
	return dbPool, services.NewServiceContainer(cfg, repos, source), nil
}

func corsConfig() cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}
	if len(cfg.CORSAllowedOrigins) == 0 || (len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return c
}
