package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/ogurasousui/codex-employee-api/internal/adapters/http/handler"
	"github.com/ogurasousui/codex-employee-api/internal/adapters/repository/memory"
	"github.com/ogurasousui/codex-employee-api/internal/core/employee"
	"github.com/ogurasousui/codex-employee-api/internal/platform/config"
	"github.com/ogurasousui/codex-employee-api/internal/platform/logging"
	"github.com/ogurasousui/codex-employee-api/internal/platform/seed"
	"github.com/ogurasousui/codex-employee-api/internal/platform/server"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const defaultConfigPath = "assets/local.yaml"

func main() {
	configPath := pflag.String("config", "", "path to config file (defaults to CONFIG_PATH env or "+defaultConfigPath+")")
	skipSeed := pflag.Bool("skip-seed", false, "start with an empty employee store")
	pflag.Parse()

	if err := run(effectiveConfigPath(*configPath), *skipSeed); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfgPath string, skipSeed bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	employeeRepo := memory.NewEmployeeRepository()
	employeeSvc := employee.NewService(employeeRepo, nil, nil)

	if !skipSeed {
		entries, err := seed.Load(cfg.Seed.Path)
		if err != nil {
			logger.Error("failed to load seed data", zap.Error(err))
			return err
		}
		if _, err := seed.Apply(ctx, employeeSvc, entries, logger); err != nil {
			logger.Error("failed to apply seed data", zap.Error(err))
			return err
		}
	}

	router := handler.NewRouter(employeeSvc, logger, cfg.Server.BasePath)
	srv := server.New(cfg.Server, router, logger)

	logger.Info("employee API starting",
		zap.String("http_addr", cfg.Server.HTTPAddr),
		zap.String("grpc_health_addr", cfg.Server.GRPCHealthAddr),
		zap.String("base_path", cfg.Server.BasePath),
		zap.Int("employees", employeeRepo.Len()),
	)

	if err := srv.Run(ctx); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return err
	}

	logger.Info("server stopped")
	return nil
}

func effectiveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return defaultConfigPath
}
