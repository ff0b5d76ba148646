package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blogem/opsledger/blobstore"
	"github.com/blogem/opsledger/config"
	"github.com/blogem/opsledger/database"
	"github.com/blogem/opsledger/logging"
	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/querycache"
	"github.com/blogem/opsledger/repositories"
	"github.com/blogem/opsledger/services"
	"github.com/blogem/opsledger/userctx"
)

var (
	configPath string
	verbose    bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "opsledger",
	Short: "Operations, compliance and finance records backend",
	Long: `opsledger serves the JSON API for maintenance, food safety, HR safety
and finance records, scoped per organization.

Settings come from .env, an optional opsledger.yaml and the environment.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: opsledger.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// app holds the process-wide dependencies shared by every command
type app struct {
	cfg      config.Config
	logger   *zap.Logger
	db       *sql.DB
	repos    *repositories.Repositories
	srvs     *services.Services
	registry *prometheus.Registry
}

// newApp loads configuration, opens and migrates the database and wires the services
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	db, err := database.InitializeDatabase(cfg.Database.Path)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	blobs, err := blobstore.Open(ctx, cfg.Blob.Options())
	if err != nil {
		db.Close()
		_ = logger.Sync()
		return nil, fmt.Errorf("failed to open blob store: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	repos := repositories.NewRepositories(db)
	srvs := services.NewServices(repos, services.Deps{
		Cache:  querycache.New(cfg.Cache.Size, cfg.Cache.TTL, querycache.NewMetrics(registry)),
		Logger: logger,
		Blobs:  blobs,
	})

	logger.Debug("application initialized",
		zap.String("database", cfg.Database.Path),
		zap.String("blob_driver", cfg.Blob.Driver))

	return &app{cfg: cfg, logger: logger, db: db, repos: repos, srvs: srvs, registry: registry}, nil
}

// Close releases the database and flushes the logger
func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.logger.Warn("failed to close database", zap.Error(err))
	}
	_ = a.logger.Sync()
}

// operatorContext acts as the owner of orgID for command-line operations
func operatorContext(ctx context.Context, orgID int) context.Context {
	ctx = userctx.SetUserEmail(ctx, "cli")
	return userctx.SetOrganization(ctx, orgID, models.RoleOwner)
}
