package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ferdcas/tienda-romantica/internal/application/dto"
	"github.com/ferdcas/tienda-romantica/internal/domain/repository"
)

// UserHandler listado de usuarios para el dashboard admin.
type UserHandler struct {
	userRepo repository.UserRepository
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(userRepo repository.UserRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// List godoc
// @Summary      Listar usuarios (solo admin)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máximo de usuarios"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.Envelope
// @Router       /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fail(c, fiber.StatusBadRequest, "paginación inválida")
	}
	page.DefaultPage()
	list, err := h.userRepo.List(page.Limit, page.Offset)
	if err != nil {
		return failErr(c, err)
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.ToUserResponse(u))
	}
	return ok(c, out)
}

// GetByCorreo godoc
// @Summary      Buscar un usuario por correo (solo admin)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        correo  path  string  true  "correo del usuario"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /users/email/{correo} [get]
func (h *UserHandler) GetByCorreo(c *fiber.Ctx) error {
	user, err := h.userRepo.GetByCorreo(c.Params("correo"))
	if err != nil {
		return failErr(c, err)
	}
	if user == nil {
		return fail(c, fiber.StatusNotFound, "no encontrado")
	}
	return ok(c, dto.ToUserResponse(user))
}

// GetByID godoc
// @Summary      Obtener un usuario (él mismo o admin)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if !canAccessUser(c, id) {
		return fail(c, fiber.StatusForbidden, "acceso denegado")
	}
	user, err := h.userRepo.GetByID(id)
	if err != nil {
		return failErr(c, err)
	}
	if user == nil {
		return fail(c, fiber.StatusNotFound, "no encontrado")
	}
	return ok(c, dto.ToUserResponse(user))
}
