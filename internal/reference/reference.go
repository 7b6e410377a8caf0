// Package reference hosts a local, in-process implementation of the
// documented favorites contract. It exists so the conformance harness can be
// validated against a known-conforming target and used for local dry runs;
// it is not the production favorites service.
package reference

import (
	"context"
	"fmt"

	refhttp "favorites-conformance/internal/reference/adapter/http"
	"favorites-conformance/internal/reference/adapter/persistence/memory"
	"favorites-conformance/internal/reference/adapter/security"
	"favorites-conformance/internal/reference/config"
	"favorites-conformance/internal/reference/domain/repository"
	"favorites-conformance/internal/reference/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// Module represents the complete reference favorites service.
type Module struct {
	sessions  *memory.SessionStore
	spots     *memory.SpotStore
	tokenSvc  repository.TokenService
	sessionUC usecase.SessionUsecaseInterface
	spotUC    usecase.FavoritesUsecaseInterface
	handler   *refhttp.FavoritesHTTPHandler
	config    *config.Config
	logger    *zap.Logger
}

// NewModule creates a new reference module instance.
func NewModule(cfg *config.Config, log *zap.Logger) (*Module, error) {
	if log == nil {
		log = zap.NewNop()
	}

	tokenSvc, err := security.NewJWTokenService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	sessionStore := memory.NewSessionStore()
	spotStore := memory.NewSpotStore()

	sessionUC := usecase.NewSessionUsecase(sessionStore, tokenSvc, cfg, log)
	spotUC := usecase.NewFavoritesUsecase(spotStore, log)

	handler := refhttp.NewFavoritesHTTPHandler(sessionUC, spotUC, cfg, log)

	return &Module{
		sessions:  sessionStore,
		spots:     spotStore,
		tokenSvc:  tokenSvc,
		sessionUC: sessionUC,
		spotUC:    spotUC,
		handler:   handler,
		config:    cfg,
		logger:    log,
	}, nil
}

// RegisterRoutes registers the contract routes with the provided router.
func (m *Module) RegisterRoutes(router fiber.Router) {
	middleware := m.GetMiddleware()
	m.handler.SetupRoutesWithMiddleware(router, middleware)
}

// GetMiddleware returns the session middleware.
func (m *Module) GetMiddleware() *refhttp.SessionMiddleware {
	return refhttp.NewSessionMiddleware(m.sessionUC, m.config.CookieName, m.logger)
}

// GetSessionUsecase returns the session usecase for external access.
func (m *Module) GetSessionUsecase() usecase.SessionUsecaseInterface {
	return m.sessionUC
}

// GetFavoritesUsecase returns the favorites usecase for external access.
func (m *Module) GetFavoritesUsecase() usecase.FavoritesUsecaseInterface {
	return m.spotUC
}

// Reset clears all sessions and spots. IDs keep increasing across resets.
func (m *Module) Reset(ctx context.Context) error {
	if err := m.sessions.Reset(ctx); err != nil {
		return err
	}
	return m.spots.Reset(ctx)
}

// NewApp builds a Fiber app with the module's routes, middleware, and a
// health endpoint, ready to listen.
func (m *Module) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Favorites Reference API v1.0",
		ReadTimeout:  m.config.ReadTimeout,
		WriteTimeout: m.config.WriteTimeout,
		IdleTimeout:  m.config.IdleTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			m.logger.Error("unhandled http error", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal server error",
			})
		},
	})

	app.Use(recover.New())
	app.Use(m.GetMiddleware().RequestID())
	if m.config.RateLimitMax > 0 {
		app.Use(m.GetMiddleware().RateLimiter(m.config.RateLimitMax, m.config.RateLimitWindow))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "HEALTHY",
			"message": "favorites reference is running",
		})
	})

	m.RegisterRoutes(app)
	return app
}
