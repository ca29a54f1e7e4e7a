package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtw/paperstore/internal/config"
	"github.com/mtw/paperstore/internal/configurator"
	"github.com/mtw/paperstore/internal/domain"
	"github.com/mtw/paperstore/internal/handlers"
	"github.com/mtw/paperstore/internal/repository/postgres"
	"github.com/mtw/paperstore/internal/service"
	"github.com/mtw/paperstore/internal/utils/jwt"
	"github.com/mtw/paperstore/internal/utils/password"
	"github.com/mtw/paperstore/internal/worker"
	"go.uber.org/zap"
)

// repositories содержит все репозитории приложения
type repositories struct {
	cart  domain.CartRepository
	order domain.OrderRepository
}

// services содержит все сервисы приложения
type services struct {
	auth     domain.AuthService
	cart     domain.CartService
	checkout domain.CheckoutService
	order    domain.OrderService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	auth     *handlers.AuthHandler
	catalog  *handlers.CatalogHandler
	builder  *handlers.BuilderHandler
	cart     *handlers.CartHandler
	checkout *handlers.CheckoutHandler
	orders   *handlers.OrderHandler
	health   *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos      *repositories
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	workerPool *worker.Pool
}

// noopNotifier используется, когда email-уведомления не настроены
type noopNotifier struct {
	logger *zap.Logger
}

func (n *noopNotifier) SendOrderEmail(_ context.Context, order *domain.Order) error {
	n.logger.Debug("email notifications disabled, skipping",
		zap.String("order_number", order.Number))
	return nil
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) (*dependencies, error) {
	// Создание репозиториев
	repos := &repositories{
		cart:  postgres.NewCartRepository(dbPool),
		order: postgres.NewOrderRepository(dbPool),
	}

	// Создание утилит
	passcodeHasher := password.NewBCryptHasher(password.DefaultCost)
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	// Пасскод хешируется при старте, если готовый хеш не задан
	passcodeHash := cfg.AdminPasscodeHash
	if passcodeHash == "" {
		hash, err := passcodeHasher.Hash(cfg.AdminPasscode)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin passcode: %w", err)
		}
		passcodeHash = hash
	}

	// Отправка уведомлений о заказах
	var notifier domain.Notifier
	if cfg.EmailEnabled() {
		notifier = service.NewEmailClient(service.EmailConfig{
			BaseURL:    cfg.EmailBaseURL,
			ServiceID:  cfg.EmailServiceID,
			TemplateID: cfg.EmailTemplateID,
			UserID:     cfg.EmailUserID,
		})
	} else {
		logger.Warn("email notifications are not configured")
		notifier = &noopNotifier{logger: logger}
	}

	workerPool := worker.NewPool(cfg.NotifyWorkers, cfg.NotifyQueueSize, notifier, logger)

	// Создание сервисов
	svcs := &services{
		auth:     service.NewAuthService(passcodeHash, passcodeHasher, jwtManager),
		cart:     service.NewCartService(repos.cart),
		checkout: service.NewCheckoutService(repos.cart, repos.order, workerPool, logger),
		order:    service.NewOrderService(repos.order),
	}

	// Сборщик пакетов живет в памяти процесса
	builderStore := configurator.NewStore()

	// Создание handlers
	hdlrs := &handlerSet{
		auth:     handlers.NewAuthHandler(svcs.auth, logger),
		catalog:  handlers.NewCatalogHandler(logger),
		builder:  handlers.NewBuilderHandler(builderStore, svcs.cart, logger),
		cart:     handlers.NewCartHandler(svcs.cart, svcs.checkout, logger),
		checkout: handlers.NewCheckoutHandler(svcs.checkout, svcs.cart, logger),
		orders:   handlers.NewOrderHandler(svcs.order, logger),
		health:   handlers.NewHealthHandler(dbPool, workerPool, logger),
	}

	return &dependencies{
		repos:      repos,
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwtManager,
		workerPool: workerPool,
	}, nil
}
