package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ferdcas/tienda-romantica/internal/application/dto"
	"github.com/ferdcas/tienda-romantica/internal/application/usecase"
	"github.com/ferdcas/tienda-romantica/internal/domain/entity"
)

// OrderHandler maneja checkout, dashboards de órdenes y el comprobante PDF.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler de órdenes.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Checkout godoc
// @Summary      Convertir el carrito en una orden (transaccional)
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CheckoutRequest  true  "userId, paymentMethod"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Router       /order/checkout [post]
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.UserID == "" {
		in.UserID = GetUserID(c)
	}
	if !canAccessUser(c, in.UserID) {
		return fail(c, fiber.StatusForbidden, "no puedes comprar por otro usuario")
	}
	order, err := h.uc.Checkout(c.UserContext(), in)
	if err != nil {
		return failErr(c, err)
	}
	return created(c, order)
}

// ListByUser godoc
// @Summary      Órdenes de un usuario (dashboard de cliente)
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.Envelope
// @Router       /order/user/{userId} [get]
func (h *OrderHandler) ListByUser(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if !canAccessUser(c, userID) {
		return fail(c, fiber.StatusForbidden, "no puedes ver las órdenes de otro usuario")
	}
	list, err := h.uc.ListByUser(userID)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, list)
}

// GetByID godoc
// @Summary      Obtener una orden
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /order/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return failErr(c, err)
	}
	if !canAccessUser(c, order.UserID) {
		return fail(c, fiber.StatusForbidden, "no puedes ver las órdenes de otro usuario")
	}
	return ok(c, order)
}

// Receipt godoc
// @Summary      Comprobante PDF de una orden
// @Tags         orders
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {file}  binary
// @Router       /order/{id}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	order, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return failErr(c, err)
	}
	if !canAccessUser(c, order.UserID) {
		return fail(c, fiber.StatusForbidden, "no puedes ver las órdenes de otro usuario")
	}
	pdfBytes, err := h.uc.Receipt(c.UserContext(), order.ID)
	if err != nil {
		return failErr(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="pedido-`+order.ID+`.pdf"`)
	return c.Send(pdfBytes)
}

// ListAll godoc
// @Summary      Todas las órdenes con su usuario (dashboard admin)
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máximo de órdenes"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.Envelope
// @Router       /orders [get]
func (h *OrderHandler) ListAll(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fail(c, fiber.StatusBadRequest, "paginación inválida")
	}
	list, err := h.uc.ListAll(page)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, list)
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de una orden (solo admin)
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "status"
// @Success      200   {object}  dto.Envelope
// @Router       /order/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	order, err := h.uc.UpdateEstado(c.Params("id"), in.Estado)
	if err != nil {
		return failErr(c, err)
	}
	return okMsg(c, order, "estado actualizado a "+in.Estado)
}

// Estados godoc
// @Summary      Ciclo de vida de estados de una orden
// @Tags         orders
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /order/estados [get]
func (h *OrderHandler) Estados(c *fiber.Ctx) error {
	return ok(c, entity.Estados)
}
