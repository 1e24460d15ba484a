package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/valbrand/crm-backend/internal/app"
	"github.com/valbrand/crm-backend/internal/config"
	"github.com/valbrand/crm-backend/internal/database"
	"github.com/valbrand/crm-backend/internal/health"
	"github.com/valbrand/crm-backend/internal/http/handler"
	"github.com/valbrand/crm-backend/internal/http/router"
	"github.com/valbrand/crm-backend/internal/observability"
	"github.com/valbrand/crm-backend/internal/repository"
	"github.com/valbrand/crm-backend/internal/security"
	"github.com/valbrand/crm-backend/internal/service"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var envFile string
	cmd := &cobra.Command{
		Use:          "crm-backend",
		Short:        "ValBrand CRM API server",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.LoadEnvFile(envFile)
		},
	}
	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "path to an optional env file")
	cmd.AddCommand(newServeCommand(), newMigrateCommand(), newAuditCleanupCommand())
	return cmd
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := config.Load(ctx)
			if err != nil {
				return err
			}

			logger, loggerProvider, err := observability.InitLogging(ctx, cfg)
			if err != nil {
				return err
			}
			runtime, err := observability.InitRuntime(ctx, cfg, logger, loggerProvider)
			if err != nil {
				return err
			}

			db, err := database.Open(cfg)
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("migrate schema: %w", err)
			}

			var redisClient redis.UniversalClient
			revoked := service.RevocationStore(service.NewInMemoryRevocationStore())
			checkers := []health.Checker{health.NewDatabaseChecker(db)}
			if cfg.RedisAddr != "" {
				redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
				revoked = service.NewRedisRevocationStore(redisClient, "revoked_tokens")
				checkers = append(checkers, health.NewRedisChecker(redisClient))
			}

			users := repository.NewUserRepository(db)
			jwtMgr := security.NewJWTManager(cfg.JWTSecret, cfg.AccessTokenTTL)
			auth := service.NewAuthService(users, jwtMgr, revoked,
				service.NewLockoutPolicy(users),
				service.NewLogResetTokenSender(logger),
				logger,
			)
			audit := service.NewAuditService(repository.NewAuditLogRepository(db))

			h := router.NewRouter(router.Dependencies{
				AuthHandler:    handler.NewAuthHandler(auth),
				AuditHandler:   handler.NewAuditHandler(audit),
				UserHandler:    handler.NewUserHandler(users),
				AuditService:   audit,
				DB:             db,
				APIKey:         cfg.APIKey,
				Logger:         logger,
				Readiness:      health.NewProbeRunner(5*time.Second, 2*time.Second, checkers...),
				EnableOTelHTTP: cfg.OTELTracesEnabled,
			})

			server := &http.Server{
				Addr:              cfg.HTTPAddr,
				Handler:           h,
				ReadHeaderTimeout: 10 * time.Second,
			}
			return app.New(cfg, logger, server, runtime).Run(ctx)
		},
	}
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openFromEnv(cmd.Context())
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("migrate schema: %w", err)
			}
			fmt.Println("schema up to date")
			return nil
		},
	}
}

func newAuditCleanupCommand() *cobra.Command {
	var daysToKeep int
	cmd := &cobra.Command{
		Use:   "audit-cleanup",
		Short: "Delete audit logs older than the retention window",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openFromEnv(cmd.Context())
			if err != nil {
				return err
			}
			audit := service.NewAuditService(repository.NewAuditLogRepository(db))
			deleted, cutoff, err := audit.Cleanup(daysToKeep)
			if err != nil {
				return err
			}
			fmt.Printf("deleted %d audit logs older than %s\n", deleted, cutoff.Format("2006-01-02"))
			return nil
		},
	}
	cmd.Flags().IntVar(&daysToKeep, "days-to-keep", 30, "audit log retention in days")
	return cmd
}

func openFromEnv(ctx context.Context) (*gorm.DB, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	return database.Open(cfg)
}
