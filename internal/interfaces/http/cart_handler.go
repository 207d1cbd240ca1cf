package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ferdcas/tienda-romantica/internal/application/dto"
	"github.com/ferdcas/tienda-romantica/internal/application/usecase"
)

// CartHandler maneja el carrito del servidor. Todas las rutas requieren token;
// cada usuario solo puede tocar su propio carrito (admin puede verlos todos).
type CartHandler struct {
	uc *usecase.CartUseCase
}

// NewCartHandler construye el handler del carrito.
func NewCartHandler(uc *usecase.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener el carrito de un usuario
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.Envelope
// @Router       /cart/{userId} [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if !canAccessUser(c, userID) {
		return fail(c, fiber.StatusForbidden, "no puedes ver el carrito de otro usuario")
	}
	cart, err := h.uc.Get(userID)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, cart)
}

// Add godoc
// @Summary      Agregar un producto al carrito (fusiona líneas del mismo producto)
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AddToCartRequest  true  "userId, productId, quantity"
// @Success      200   {object}  dto.Envelope
// @Router       /cart/add [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.AddToCartRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.UserID == "" {
		in.UserID = GetUserID(c)
	}
	if !canAccessUser(c, in.UserID) {
		return fail(c, fiber.StatusForbidden, "no puedes modificar el carrito de otro usuario")
	}
	cart, err := h.uc.Add(in)
	if err != nil {
		return failErr(c, err)
	}
	return okMsg(c, cart, "producto agregado al carrito")
}

// UpdateItem godoc
// @Summary      Cambiar la cantidad de una línea del carrito
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID de la línea"
// @Param        body  body  dto.UpdateCartItemRequest  true  "quantity"
// @Success      200   {object}  dto.Envelope
// @Router       /cart/item/{id} [put]
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	cart, err := h.uc.UpdateItem(c.Params("id"), in.Quantity)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, cart)
}

// RemoveItem godoc
// @Summary      Quitar una línea del carrito
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la línea"
// @Success      200  {object}  dto.Envelope
// @Router       /cart/item/{id} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	cart, err := h.uc.RemoveItem(c.Params("id"))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, cart)
}

// Clear godoc
// @Summary      Vaciar el carrito de un usuario
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.Envelope
// @Router       /cart/clear/{userId} [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if !canAccessUser(c, userID) {
		return fail(c, fiber.StatusForbidden, "no puedes modificar el carrito de otro usuario")
	}
	cart, err := h.uc.Clear(userID)
	if err != nil {
		return failErr(c, err)
	}
	return okMsg(c, cart, "carrito vaciado")
}

// Migrate godoc
// @Summary      Replicar el carrito anónimo completo en el servidor (una sola transacción)
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.MigrateCartRequest  true  "userId, items"
// @Success      200   {object}  dto.Envelope
// @Router       /cart/migrate [post]
func (h *CartHandler) Migrate(c *fiber.Ctx) error {
	var in dto.MigrateCartRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.UserID == "" {
		in.UserID = GetUserID(c)
	}
	if !canAccessUser(c, in.UserID) {
		return fail(c, fiber.StatusForbidden, "no puedes modificar el carrito de otro usuario")
	}
	cart, err := h.uc.Migrate(c.UserContext(), in)
	if err != nil {
		return failErr(c, err)
	}
	return okMsg(c, cart, "carrito migrado")
}
