package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/yourplaces/places-server/internal/api/rest/reqctx"
	"github.com/yourplaces/places-server/internal/apperr"
	"github.com/yourplaces/places-server/internal/logger"
	"github.com/yourplaces/places-server/internal/model"
)

// authScheme is the expected prefix of the Authorization header,
// "Cameleon <token>".
const authScheme = "Cameleon"

// Authenticate validates bearer tokens and injects the user ID into the
// request context.
type Authenticate struct {
	tokenManager model.TokenManager
	logger       *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenManager model.TokenManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenManager: tokenManager, logger: logger}
}

// Handle parses the Authorization header, validates the token and stores the
// user ID for downstream handlers. CORS preflights pass through untouched.
func (m *Authenticate) Handle(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodOptions {
		return c.Next()
	}

	userID, err := m.authenticateUser(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		m.logger.Info("Authenticate middleware: rejected request",
			"path", c.Path(),
			"error", err.Error())
		return apperr.NewAuthentication("Authentication failed!")
	}

	c.SetUserContext(reqctx.WithUserID(c.UserContext(), userID))
	return c.Next()
}

func (m *Authenticate) authenticateUser(header string) (uuid.UUID, error) {
	scheme, tokenString, found := strings.Cut(header, " ")
	if !found || scheme != authScheme || tokenString == "" {
		return uuid.Nil, model.ErrInvalidToken
	}

	userID, err := m.tokenManager.Parse(tokenString)
	if err != nil {
		return uuid.Nil, err
	}
	if userID == uuid.Nil {
		return uuid.Nil, model.ErrInvalidToken
	}

	return userID, nil
}
