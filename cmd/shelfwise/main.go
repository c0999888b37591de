package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	corecfg "github.com/shelfwise-lab/project-shelfwise/internal/core/config"
	"github.com/shelfwise-lab/project-shelfwise/internal/core/storage/postgres"
	"github.com/shelfwise-lab/project-shelfwise/internal/insight"
	"github.com/shelfwise-lab/project-shelfwise/internal/migrations"
	"github.com/shelfwise-lab/project-shelfwise/internal/offers"
	"github.com/shelfwise-lab/project-shelfwise/internal/server"
)

func main() {
	configPath := flag.String("config", "shelfwise.yaml", "Path to configuration file")
	flag.Parse()

	// .env is optional; real deployments set variables directly.
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env file")
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config",
		"server_addr", fmtAddr(cfg.Server.Host, cfg.Server.Port),
		"offers_dir", cfg.Offers.ConfigDir)

	dbAdapter, err := postgres.NewAdapter(
		cfg.Database.DSN,
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
	)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbAdapter.Close()

	if err := migrations.RunMigrations(dbAdapter.DB(), cfg.Database.AutoMigrate); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	offerRepo, err := offers.NewFileSystemRepository(cfg.Offers.ConfigDir)
	if err != nil {
		slog.Error("Failed to load promotional offers", "error", err)
		os.Exit(1)
	}
	offerHandler := offers.NewHandler(offers.NewKeywordIndex(offerRepo.Offers()))

	insightSvc := insight.NewService(dbAdapter)

	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), dbAdapter.DB(), cfg.Server.Mode)
	insightSvc.RegisterRoutes(srv.Engine)
	offerHandler.RegisterRoutes(srv.Engine)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
