package usecase

import (
	"context"

	"github.com/ferdcas/tienda-romantica/internal/domain/entity"
	"github.com/ferdcas/tienda-romantica/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una transacción.
// Lo usan el checkout (snapshot de orden + vaciado de carrito) y la migración
// del carrito anónimo, que deben ser atómicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		cartRepo repository.CartRepository,
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ReceiptGenerator genera el comprobante PDF de una orden.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, order *entity.Order, user *entity.User) ([]byte, error)
}
