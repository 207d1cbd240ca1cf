package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ferdcas/tienda-romantica/internal/application/usecase"
)

// ProductHandler maneja el catálogo público de regalos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar el catálogo activo
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, list)
}

// Search godoc
// @Summary      Buscar productos sin distinguir mayúsculas ni tildes
// @Tags         products
// @Produce      json
// @Param        q  query  string  false  "texto a buscar"
// @Success      200  {object}  dto.Envelope
// @Router       /products/search [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	list, err := h.uc.Search(c.Query("q"))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, list)
}

// ListByCategoria godoc
// @Summary      Listar productos de una categoría
// @Tags         products
// @Produce      json
// @Param        categoria  path  string  true  "categoría"
// @Success      200  {object}  dto.Envelope
// @Router       /products/categoria/{categoria} [get]
func (h *ProductHandler) ListByCategoria(c *fiber.Ctx) error {
	list, err := h.uc.ListByCategoria(c.Params("categoria"))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, list)
}

// GetByID godoc
// @Summary      Obtener un producto
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	p, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, p)
}
