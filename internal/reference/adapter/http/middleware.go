package http

import (
	"errors"
	"strings"
	"time"

	"favorites-conformance/internal/reference/usecase"
	"favorites-conformance/internal/shared/contextkeys"
	"favorites-conformance/internal/shared/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

// SessionMiddleware guards routes that require a live session credential.
type SessionMiddleware struct {
	sessions   usecase.SessionUsecaseInterface
	cookieName string
	logger     *zap.Logger
}

// NewSessionMiddleware creates a new session middleware.
func NewSessionMiddleware(sessions usecase.SessionUsecaseInterface, cookieName string, log *zap.Logger) *SessionMiddleware {
	if log == nil {
		log = zap.NewNop()
	}
	return &SessionMiddleware{
		sessions:   sessions,
		cookieName: cookieName,
		logger:     log,
	}
}

// RequestID middleware
func (m *SessionMiddleware) RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     "X-Request-ID",
		ContextKey: string(contextkeys.RequestIDKey),
	})
}

// RateLimiter creates rate limiting middleware.
func (m *SessionMiddleware) RateLimiter(max int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               max,
		Expiration:        window,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.Get("X-Forwarded-For", c.IP())
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "rate limit exceeded",
			})
		},
	})
}

// RequireSession returns middleware that rejects requests without a live
// credential: 401 for missing, unknown, malformed, and expired tokens alike.
func (m *SessionMiddleware) RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := m.extractToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "session credential required",
			})
		}

		session, err := m.sessions.ValidateSession(c.Context(), token)
		if err != nil {
			msg := "invalid session credential"
			if errors.Is(err, usecase.ErrSessionExpired) {
				msg = "session credential expired"
			}
			m.logger.Debug("request rejected", zap.String("reason", msg))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": msg,
			})
		}

		c.SetUserContext(utils.WithSessionID(c.UserContext(), session.ID))
		return c.Next()
	}
}

// extractToken extracts the credential from the Authorization header or the
// session cookie. The contract allows either carrier.
func (m *SessionMiddleware) extractToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return c.Cookies(m.cookieName)
}
