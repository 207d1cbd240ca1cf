package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ferdcas/tienda-romantica/internal/domain/entity"
)

// CheckoutRequest cuerpo de POST /order/checkout.
type CheckoutRequest struct {
	UserID     string `json:"userId"`
	MetodoPago string `json:"paymentMethod"`
}

// UpdateOrderStatusRequest cuerpo de PUT /order/:id/status (solo admin).
type UpdateOrderStatusRequest struct {
	Estado string `json:"status"`
}

// OrderItemResponse línea de orden con precios congelados al momento de compra.
type OrderItemResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"productId"`
	NombreProducto string          `json:"nombreProducto"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`
}

// OrderResponse proyección de una orden.
type OrderResponse struct {
	ID         string              `json:"id"`
	UserID     string              `json:"userId"`
	Estado     string              `json:"status"`
	Total      decimal.Decimal     `json:"total"`
	MetodoPago string              `json:"paymentMethod"`
	Items      []OrderItemResponse `json:"items,omitempty"`
	User       *UserResponse       `json:"user,omitempty"` // solo en vistas de admin
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

// ToOrderResponse convierte la entidad a DTO.
func ToOrderResponse(o *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ID:             it.ID,
			ProductID:      it.ProductID,
			NombreProducto: it.NombreProducto,
			Quantity:       it.Cantidad,
			UnitPrice:      it.PrecioUnitario,
			TotalPrice:     it.PrecioTotal,
		})
	}
	resp := OrderResponse{
		ID:         o.ID,
		UserID:     o.UserID,
		Estado:     o.Estado,
		Total:      o.Total,
		MetodoPago: o.MetodoPago,
		Items:      items,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
	if o.User != nil {
		u := ToUserResponse(o.User)
		resp.User = &u
	}
	return resp
}

// ToOrderResponses convierte un listado.
func ToOrderResponses(list []*entity.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, ToOrderResponse(o))
	}
	return out
}
