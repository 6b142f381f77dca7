package graph

import (
	"bytes"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/graphql-go/graphql"

	"sellerdesk/internal/domain"
	applog "sellerdesk/internal/log"
	"sellerdesk/internal/services"
)

// AuthMiddleware verifies the bearer trust token, if present, and attaches
// the decoded claims to the request. An absent or invalid token leaves the
// request unauthenticated; operations that need a caller then fail on their
// own.
func AuthMiddleware(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(fiber.HeaderAuthorization)
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))
		if raw != "" {
			claims, err := auth.VerifyToken(raw)
			if err != nil {
				applog.Security(c, "auth.token.invalid", nil)
			} else {
				c.Locals("claims", claims)
				c.Locals("caller_id", claims.ID)
			}
		}
		return c.Next()
	}
}

// LoginLimiter throttles authentication attempts much tighter than the
// global limiter. Requests whose document does not invoke authenticateUser
// pass through uncounted.
func LoginLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return !bytes.Contains(c.Body(), []byte("authenticateUser"))
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many login attempts, retry later"})
		},
	})
}

type Handler struct {
	Schema graphql.Schema
}

type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Serve executes one GraphQL request. Errors ride back in the standard
// "errors" array; the HTTP status is 200 either way, per GraphQL convention.
func (h *Handler) Serve(c *fiber.Ctx) error {
	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}
	if strings.TrimSpace(req.Query) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing query"})
	}

	ctx := c.UserContext()
	if claims, ok := c.Locals("claims").(*domain.Claims); ok {
		ctx = WithClaims(ctx, claims)
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.Schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        ctx,
	})
	if result.HasErrors() {
		applog.Info(c, "graphql.errors", map[string]any{"count": len(result.Errors)})
	}
	return c.JSON(result)
}
