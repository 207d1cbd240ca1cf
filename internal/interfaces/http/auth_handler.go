package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ferdcas/tienda-romantica/internal/application/auth"
	"github.com/ferdcas/tienda-romantica/internal/application/dto"
	"github.com/ferdcas/tienda-romantica/internal/domain"
)

// AuthHandler maneja registro, login, verify y perfil.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario (el auto-registro de la portada usa esta misma ruta)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "nombres, apellidos, correo, contrasena"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.Nombres == "" || in.Correo == "" || in.Contrasena == "" {
		return fail(c, fiber.StatusBadRequest, "nombres, correo y contrasena son requeridos")
	}
	if len(in.Contrasena) < 6 {
		return fail(c, fiber.StatusBadRequest, "contrasena debe tener al menos 6 caracteres")
	}
	out, err := h.uc.Register(in)
	if err != nil {
		if err == domain.ErrEmailAlreadyExists {
			return fail(c, fiber.StatusConflict, "el correo ya está registrado")
		}
		return failErr(c, err)
	}
	return created(c, out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "correo, contrasena"
// @Success      200   {object}  dto.Envelope
// @Failure      401   {object}  dto.Envelope
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.Correo == "" || in.Contrasena == "" {
		return fail(c, fiber.StatusBadRequest, "correo y contrasena son requeridos")
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if err == domain.ErrUserNotFound || err == domain.ErrUnauthorized {
			return fail(c, fiber.StatusUnauthorized, "credenciales inválidas")
		}
		return failErr(c, err)
	}
	return ok(c, out)
}

// Verify godoc
// @Summary      Validar el token de sesión y devolver el usuario
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Envelope
// @Failure      401  {object}  dto.Envelope
// @Router       /auth/verify [get]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	user, err := h.uc.Verify(GetUserID(c))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, user)
}

// Profile godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Envelope
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	user, err := h.uc.GetProfile(GetUserID(c))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, user)
}

// UpdateProfile godoc
// @Summary      Actualizar el perfil del usuario autenticado
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UpdateProfileRequest  true  "campos editables"
// @Success      200   {object}  dto.Envelope
// @Router       /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	user, err := h.uc.UpdateProfile(GetUserID(c), in)
	if err != nil {
		return failErr(c, err)
	}
	return okMsg(c, user, "perfil actualizado")
}
