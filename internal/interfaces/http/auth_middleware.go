package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ferdcas/tienda-romantica/internal/domain/entity"
	"github.com/ferdcas/tienda-romantica/pkg/jwt"
)

// Locals keys para UserID y Tipo en Fiber.
const (
	LocalUserID = "user_id"
	LocalTipo   = "tipo"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID y Tipo a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fail(c, fiber.StatusUnauthorized, "MISSING_TOKEN: Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fail(c, fiber.StatusUnauthorized, "INVALID_TOKEN: formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return fail(c, fiber.StatusUnauthorized, "MISSING_TOKEN: token vacío")
		}
		userID, tipo, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, "INVALID_TOKEN: token inválido o expirado")
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalTipo, tipo)
		return c.Next()
	}
}

// RequireAdmin autoriza solo a usuarios con tipo admin (después de AuthMiddleware).
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tipo := GetTipo(c)
		if tipo == "" {
			return fail(c, fiber.StatusUnauthorized, "MISSING_ROLE: el token no incluye tipo de usuario")
		}
		if tipo != entity.TipoAdmin {
			return fail(c, fiber.StatusForbidden, "FORBIDDEN: se requiere usuario admin")
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetTipo devuelve el tipo de usuario del contexto (después del middleware de auth).
func GetTipo(c *fiber.Ctx) string {
	v := c.Locals(LocalTipo)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// canAccessUser indica si el usuario autenticado puede operar sobre los
// recursos de userID: él mismo, o un admin.
func canAccessUser(c *fiber.Ctx, userID string) bool {
	return GetUserID(c) == userID || GetTipo(c) == entity.TipoAdmin
}
