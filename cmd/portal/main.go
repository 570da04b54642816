package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/exam-portal/internal/api/http"
	"github.com/spec-kit/exam-portal/internal/api/http/handlers"
	"github.com/spec-kit/exam-portal/internal/apiclient"
	"github.com/spec-kit/exam-portal/internal/auth"
	"github.com/spec-kit/exam-portal/internal/config"
	"github.com/spec-kit/exam-portal/internal/domain"
	"github.com/spec-kit/exam-portal/internal/events"
	"github.com/spec-kit/exam-portal/internal/observability"
	"github.com/spec-kit/exam-portal/internal/persistence"
	"github.com/spec-kit/exam-portal/internal/repository"
	"github.com/spec-kit/exam-portal/internal/routes"
	"github.com/spec-kit/exam-portal/internal/service"
	"github.com/spec-kit/exam-portal/internal/session"
	"github.com/spec-kit/exam-portal/internal/shell"
	"github.com/spec-kit/exam-portal/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	checks := map[string]handlers.Pinger{}
	store, closeStore, err := openStore(ctx, cfg, logger, checks)
	if err != nil {
		logger.Fatal("failed to open session store", zap.String("store", cfg.Session.Store), zap.Error(err))
	}
	defer closeStore()

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(service.NewAuditService(dispatcher, logger))

	manager := session.NewManager(store, dispatcher, logger)
	checks["session_store"] = manager

	reload := func(_ context.Context, path string) {
		logger.Info("credentials rejected by backend; portal returns to login", zap.String("path", path))
	}
	adminClient := apiclient.New(cfg.Backend,
		apiclient.WithLogger(logger),
		apiclient.WithAuthorizer(apiclient.AdminBearer(manager)),
		apiclient.WithUnauthorizedHandler(apiclient.RejectAndReload(domain.RoleAdmin, manager.RejectAdmin, reload, logger)))
	studentClient := apiclient.New(cfg.Backend,
		apiclient.WithLogger(logger),
		apiclient.WithAuthorizer(apiclient.StudentBearer(manager)),
		apiclient.WithUnauthorizedHandler(apiclient.RejectAndReload(domain.RoleStudent, manager.RejectStudent, reload, logger)))
	checks["backend"] = adminClient

	metrics := observability.NewMetrics()
	table := routes.Default()
	navigator := service.NewNavigator(table, manager, metrics, logger)
	authService := service.NewAuthService(adminClient.Auth(), manager, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httptransport.ErrorHandler(logger, metrics),
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, checks, metrics),
		Navigation:    handlers.NewNavigationHandler(navigator),
		Session:       handlers.NewSessionHandler(authService, manager),
		AdminBridge:   handlers.NewAdminBridgeHandler(adminClient),
		StudentBridge: handlers.NewStudentBridgeHandler(studentClient, manager),
		Shell: handlers.NewShellHandler(
			shell.NewNavigationPolicy(cfg.Shell.DevOrigin, cfg.App.BaseURL()),
			shell.NewWindowOpenHandler(shell.SystemOpener{}, logger)),
		SessionMiddleware: auth.NewSessionMiddleware(manager),
		Routes:            table,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	if cfg.Shell.OpenOnStart {
		go launchShell(ctx, cfg, logger)
	}

	waitForShutdown(logger)
	cancel()

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

// openStore builds the configured credential store and registers its
// backing service for readiness checks.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger, checks map[string]handlers.Pinger) (session.Store, func(), error) {
	noop := func() {}

	switch cfg.Session.Store {
	case config.StoreMemory:
		return session.NewMemoryStore(), noop, nil

	case config.StoreRedis:
		r := persistence.NewRedis(ctx, cfg.Redis, logger)
		checks["redis"] = r
		return session.NewRedisStore(r.Client, r.Key("credentials")), func() { _ = r.Close() }, nil

	case config.StorePostgres:
		pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, noop, err
		}
		checks["postgres"] = pg
		return session.NewPostgresStore(repository.NewCredentialRepository(pg.Pool)), pg.Close, nil

	default:
		secret := cfg.Session.Secret
		if secret == "" {
			generated, err := auth.LoadOrCreateSecret(cfg.Session.SecretPath())
			if err != nil {
				return nil, noop, err
			}
			secret = generated
		}
		sealer, err := auth.NewSealer(secret)
		if err != nil {
			return nil, noop, err
		}
		fs, err := session.OpenFileStore(cfg.Session.FilePath, sealer, logger)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("session file", zap.String("path", fs.Path()))
		return fs, func() { _ = fs.Close() }, nil
	}
}

func launchShell(ctx context.Context, cfg *config.Config, logger *zap.Logger) {
	appURL := cfg.App.BaseURL()
	if cfg.Shell.DevMode {
		appURL = cfg.Shell.DevOrigin
	}

	opener := shell.SystemOpener{}
	launcher := shell.NewLauncher(appURL, cfg.App.BaseURL()+"/health/live",
		shell.WindowOptionsFromConfig(cfg.Shell), opener, logger)

	readyCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Shell.ReadyTimeout)*time.Second)
	defer cancel()
	if err := launcher.Show(readyCtx); err != nil {
		logger.Warn("portal window not shown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
