package app

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mtw/paperstore/internal/handlers"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, deps)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies) {
	// Health check эндпоинты
	r.Get("/health", deps.handlers.health.Health)
	r.Get("/ready", deps.handlers.health.Ready)

	// Каталог
	r.Get("/api/catalog/levels", deps.handlers.catalog.Levels)
	r.Get("/api/catalog/levels/{level}/subjects", deps.handlers.catalog.Subjects)
	r.Get("/api/catalog/levels/{level}/notes", deps.handlers.catalog.Notes)
	r.Get("/api/catalog/cities", deps.handlers.catalog.Cities)
	r.Get("/api/catalog/country-codes", deps.handlers.catalog.CountryCodes)

	// Витрина: сборщик, корзина и оформление заказа.
	// Корзина привязывается к токену из заголовка X-Cart-Token.
	r.Group(func(r chi.Router) {
		r.Use(handlers.CartTokenMiddleware())

		r.Get("/api/builder", deps.handlers.builder.State)
		r.Post("/api/builder/level", deps.handlers.builder.SelectLevel)
		r.Post("/api/builder/subjects/{subjectID}", deps.handlers.builder.ToggleSubject)
		r.Post("/api/builder/subjects/{subjectID}/papers/{paper}", deps.handlers.builder.TogglePaper)
		r.Post("/api/builder/subjects/{subjectID}/papers/{paper}/years", deps.handlers.builder.AdjustYear)
		r.Post("/api/builder/subjects/{subjectID}/papers/{paper}/sessions/{session}", deps.handlers.builder.ToggleSession)
		r.Post("/api/builder/binding", deps.handlers.builder.SetBinding)
		r.Post("/api/builder/commit", deps.handlers.builder.Commit)

		r.Get("/api/cart", deps.handlers.cart.Get)
		r.Post("/api/cart/items", deps.handlers.cart.AddItem)
		r.Patch("/api/cart/items/{itemID}", deps.handlers.cart.UpdateQuantity)
		r.Delete("/api/cart/items/{itemID}", deps.handlers.cart.RemoveItem)
		r.Delete("/api/cart", deps.handlers.cart.Clear)

		r.Post("/api/checkout", deps.handlers.checkout.Submit)
		r.Post("/api/checkout/promo", deps.handlers.checkout.ValidatePromo)
		r.Get("/api/checkout/quote", deps.handlers.checkout.Quote)
	})

	// Дашборд
	r.Post("/api/admin/login", deps.handlers.auth.Login)

	r.Group(func(r chi.Router) {
		r.Use(handlers.AdminAuthMiddleware(deps.jwtManager))

		r.Get("/api/admin/orders", deps.handlers.orders.List)
		r.Get("/api/admin/orders/{orderID}", deps.handlers.orders.Get)
		r.Get("/api/admin/orders/{orderID}/slip", deps.handlers.orders.Slip)
		r.Patch("/api/admin/orders/{orderID}/status", deps.handlers.orders.UpdateStatus)
		r.Patch("/api/admin/orders/{orderID}/payment-status", deps.handlers.orders.UpdatePaymentStatus)
		r.Delete("/api/admin/orders/{orderID}", deps.handlers.orders.Delete)
		r.Delete("/api/admin/orders", deps.handlers.orders.Clear)
	})
}
