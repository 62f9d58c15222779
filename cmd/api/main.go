package main

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/infenixDeveloper/artegallera-backend/internal/api"
	apivalidator "github.com/infenixDeveloper/artegallera-backend/internal/api/validator"
	v1 "github.com/infenixDeveloper/artegallera-backend/internal/api/v1"
	"github.com/infenixDeveloper/artegallera-backend/internal/api/v1/middleware"
	"github.com/infenixDeveloper/artegallera-backend/internal/cache"
	"github.com/infenixDeveloper/artegallera-backend/internal/config"
	"github.com/infenixDeveloper/artegallera-backend/internal/database"
	apierrors "github.com/infenixDeveloper/artegallera-backend/internal/errors"
	"github.com/infenixDeveloper/artegallera-backend/internal/metrics"
	"github.com/infenixDeveloper/artegallera-backend/internal/realtime"
	"github.com/infenixDeveloper/artegallera-backend/internal/repository"
	"github.com/infenixDeveloper/artegallera-backend/internal/service"
	"github.com/infenixDeveloper/artegallera-backend/pkg/redis"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,
			newRedisClient,
			metrics.New,
			newFiberApp,
			newValidator,

			repository.NewTransactionManager,
			repository.NewUserRepository,
			repository.NewEventRepository,
			repository.NewRoundRepository,
			repository.NewBetRepository,
			repository.NewMarriedBetRepository,
			repository.NewLedgerRepository,
			repository.NewWinnerRepository,
			repository.NewMessageRepository,
			repository.NewPromotionRepository,

			newMessageCache,
			realtime.NewHub,
			newBroadcaster,

			service.NewLedgerService,
			service.NewBettingService,
			service.NewEventService,
			service.NewRoundService,
			service.NewUserService,
			service.NewMessageService,
			service.NewWinnerService,
			service.NewPromotionService,
			service.NewReportService,

			newHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func newRedisClient(cfg *config.Config, logger *zap.Logger) (*goredis.Client, error) {
	return redis.NewClient(redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger)
}

func newFiberApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: apierrors.ErrorHandler(),
	})
}

func newValidator() apivalidator.IXValidator {
	return apivalidator.NewXValidator(validator.New())
}

func newMessageCache(client *goredis.Client, logger *zap.Logger, m *metrics.Metrics,
	cfg *config.Config) cache.MessageCache {
	return cache.NewMessageCache(client, logger, m, time.Duration(cfg.Chat.CacheTTLSeconds)*time.Second)
}

func newBroadcaster(hub *realtime.Hub) realtime.Broadcaster {
	return hub
}

func newHandler(logger *zap.Logger, xValidator apivalidator.IXValidator, cfg *config.Config,
	betting service.BettingService, events service.EventService, rounds service.RoundService,
	users service.UserService, messages service.MessageService, winners service.WinnerService,
	promotions service.PromotionService, reports service.ReportService) *v1.Handler {
	return v1.NewHandler(logger, xValidator, betting, events, rounds, users, messages,
		winners, promotions, reports, cfg.Uploads.Dir)
}

func startServer(app *fiber.App, handler *v1.Handler, hub *realtime.Hub, db *gorm.DB,
	m *metrics.Metrics, cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	// frontends are served from other origins
	app.Use(cors.New())
	app.Use(middleware.HTTPMetrics(m, logger))
	app.Static("/uploads", cfg.Uploads.Dir)
	api.SetupRoutes(app, handler, middleware.JWTAuth(cfg.JWT.Secret))

	var chatServer, metricsServer *http.Server

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := database.Migrate(db); err != nil {
				return err
			}

			if err := os.MkdirAll(filepath.Join(cfg.Uploads.Dir, "chat-images"), 0o755); err != nil {
				return err
			}

			chatServer = realtime.Serve(hub, cfg.Chat.SocketPort, logger)
			metricsServer = metrics.Serve(cfg.Metrics.Port, logger)

			go func() {
				if err := app.Listen(cfg.API.Port); err != nil {
					logger.Error("API server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if chatServer != nil {
				_ = chatServer.Shutdown(ctx)
			}
			if metricsServer != nil {
				_ = metricsServer.Shutdown(ctx)
			}
			return app.ShutdownWithContext(ctx)
		},
	})
}
