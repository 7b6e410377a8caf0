package http

import (
	stderrors "errors"
	"time"

	"favorites-conformance/internal/reference/config"
	"favorites-conformance/internal/reference/usecase"
	"favorites-conformance/internal/shared/errors"
	"favorites-conformance/internal/shared/timestamp"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FavoritesHTTPHandler handles HTTP requests for the favorites contract.
type FavoritesHTTPHandler struct {
	sessions  usecase.SessionUsecaseInterface
	favorites usecase.FavoritesUsecaseInterface
	config    *config.Config
	logger    *zap.Logger
}

// NewFavoritesHTTPHandler creates a new favorites HTTP handler.
func NewFavoritesHTTPHandler(
	sessions usecase.SessionUsecaseInterface,
	favorites usecase.FavoritesUsecaseInterface,
	cfg *config.Config,
	log *zap.Logger,
) *FavoritesHTTPHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &FavoritesHTTPHandler{
		sessions:  sessions,
		favorites: favorites,
		config:    cfg,
		logger:    log,
	}
}

// SetupRoutesWithMiddleware registers the contract routes.
func (h *FavoritesHTTPHandler) SetupRoutesWithMiddleware(router fiber.Router, middleware *SessionMiddleware) {
	router.Post("/v1/auth/tokens", h.IssueToken)
	router.Post("/v1/favorites", middleware.RequireSession(), h.CreateSpot)
	router.Get("/v1/favorites", middleware.RequireSession(), h.ListSpots)
}

// IssueToken handles session acquisition. The body is ignored; the endpoint
// always mints a fresh credential.
func (h *FavoritesHTTPHandler) IssueToken(c *fiber.Ctx) error {
	session, err := h.sessions.IssueSession(c.Context())
	if err != nil {
		h.logger.Error("failed to issue session", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to issue session",
		})
	}

	h.setCookie(c, session.Token, session.ExpiresAt)

	return c.JSON(fiber.Map{
		"token":      session.Token,
		"expires_at": timestamp.FormatMillis(session.ExpiresAt),
	})
}

// CreateSpot handles favorite spot creation from a form-urlencoded body.
// Form keys are read presence-aware: a key submitted with an empty value is
// not the same as an absent key.
func (h *FavoritesHTTPHandler) CreateSpot(c *fiber.Ctx) error {
	args := c.Request().PostArgs()

	req := usecase.CreateSpotRequest{}
	if args.Has("title") {
		v := string(args.Peek("title"))
		req.Title = &v
	}
	if args.Has("lat") {
		v := string(args.Peek("lat"))
		req.Lat = &v
	}
	if args.Has("lon") {
		v := string(args.Peek("lon"))
		req.Lon = &v
	}
	if args.Has("color") {
		v := string(args.Peek("color"))
		req.Color = &v
	}

	spot, err := h.favorites.CreateSpot(c.Context(), req)
	if err != nil {
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) && appErr.Type == errors.ErrorTypeValidation {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   appErr.Message,
				"details": appErr.Details,
			})
		}
		h.logger.Error("failed to create spot", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create spot",
		})
	}

	return c.JSON(spot)
}

// ListSpots returns all spots created so far.
func (h *FavoritesHTTPHandler) ListSpots(c *fiber.Ctx) error {
	spots, err := h.favorites.ListSpots(c.Context())
	if err != nil {
		h.logger.Error("failed to list spots", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list spots",
		})
	}

	return c.JSON(fiber.Map{
		"spots": spots,
		"total": len(spots),
	})
}

// setCookie attaches the session credential as a cookie.
func (h *FavoritesHTTPHandler) setCookie(c *fiber.Ctx, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     h.config.CookieName,
		Value:    token,
		Path:     h.config.CookiePath,
		Domain:   h.config.CookieDomain,
		Secure:   h.config.CookieSecure,
		HTTPOnly: h.config.CookieHTTPOnly,
		SameSite: h.config.CookieSameSite,
		Expires:  expiresAt,
	})
}
