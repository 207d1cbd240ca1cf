package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ferdcas/tienda-romantica/internal/domain/entity"
)

// AddToCartRequest cuerpo de POST /cart/add.
type AddToCartRequest struct {
	UserID     string `json:"userId"`
	ProductID  string `json:"productId"`
	Quantity   int    `json:"quantity"`
	MetodoPago string `json:"paymentMethod,omitempty"`
}

// UpdateCartItemRequest cuerpo de PUT /cart/item/:id.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// MigrateCartLine una línea del carrito anónimo a replicar en el servidor.
type MigrateCartLine struct {
	ProductID  string `json:"productId"`
	Quantity   int    `json:"quantity"`
	MetodoPago string `json:"paymentMethod,omitempty"`
}

// MigrateCartRequest cuerpo de POST /cart/migrate: todo el carrito local en
// una sola petición. El servidor fusiona por producto, así un reintento no
// duplica líneas.
type MigrateCartRequest struct {
	UserID string            `json:"userId"`
	Items  []MigrateCartLine `json:"items"`
}

// CartItemResponse línea del carrito tal como la consume la UI.
type CartItemResponse struct {
	ID             string           `json:"id"`
	ProductID      string           `json:"productId"`
	Quantity       int              `json:"quantity"`
	UnitPrice      decimal.Decimal  `json:"unitPrice"`
	TotalPrice     decimal.Decimal  `json:"totalPrice"`
	MetodoPago     string           `json:"paymentMethod,omitempty"`
	Product        *ProductResponse `json:"product,omitempty"`
}

// CartResponse carrito completo. Toda mutación del carrito responde con este
// objeto entero; el cliente reemplaza su estado local sin parches parciales.
type CartResponse struct {
	ID     string             `json:"id"`
	UserID string             `json:"userId"`
	Items  []CartItemResponse `json:"items"`
	Total  decimal.Decimal    `json:"total"`
}

// ToCartResponse convierte la entidad a DTO. Devuelve nil para carrito inexistente.
func ToCartResponse(c *entity.Cart) *CartResponse {
	if c == nil {
		return nil
	}
	items := make([]CartItemResponse, 0, len(c.Items))
	for i := range c.Items {
		it := &c.Items[i]
		line := CartItemResponse{
			ID:         it.ID,
			ProductID:  it.ProductID,
			Quantity:   it.Cantidad,
			UnitPrice:  it.PrecioUnitario,
			TotalPrice: it.PrecioTotal,
			MetodoPago: it.MetodoPago,
		}
		if it.Producto != nil {
			p := ToProductResponse(it.Producto)
			line.Product = &p
		}
		items = append(items, line)
	}
	return &CartResponse{ID: c.ID, UserID: c.UserID, Items: items, Total: c.Total()}
}
