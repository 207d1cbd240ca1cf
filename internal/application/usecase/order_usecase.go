package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ferdcas/tienda-romantica/internal/application/dto"
	"github.com/ferdcas/tienda-romantica/internal/domain"
	"github.com/ferdcas/tienda-romantica/internal/domain/entity"
	"github.com/ferdcas/tienda-romantica/internal/domain/repository"
)

// OrderUseCase casos de uso de órdenes: checkout, dashboards y comprobante.
type OrderUseCase struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	userRepo  repository.UserRepository
	tx        TxRunner
	receipts  ReceiptGenerator
}

// NewOrderUseCase construye el caso de uso de órdenes.
func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	userRepo repository.UserRepository,
	tx TxRunner,
	receipts ReceiptGenerator,
) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, cartRepo: cartRepo, userRepo: userRepo, tx: tx, receipts: receipts}
}

// Checkout convierte el carrito del usuario en una orden, dentro de una
// transacción: snapshot de las líneas (nombre y precio congelados), creación
// de la orden en estado pendiente y vaciado del carrito. Un carrito vacío o
// inexistente es un error de dominio, no un pánico.
func (uc *OrderUseCase) Checkout(ctx context.Context, in dto.CheckoutRequest) (*dto.OrderResponse, error) {
	if in.UserID == "" {
		return nil, domain.ErrInvalidInput
	}
	metodo := in.MetodoPago
	if metodo == "" {
		metodo = entity.PagoBeso
	}
	if !entity.MetodoPagoValido(metodo) {
		return nil, domain.ErrInvalidMetodoPago
	}

	var orderID string
	err := uc.tx.Run(ctx, func(cartRepo repository.CartRepository, orderRepo repository.OrderRepository, _ repository.ProductRepository) error {
		cart, err := cartRepo.GetByUserID(in.UserID)
		if err != nil {
			return err
		}
		if cart == nil || len(cart.Items) == 0 {
			return domain.ErrCartEmpty
		}

		now := time.Now()
		order := &entity.Order{
			ID:         uuid.New().String(),
			UserID:     in.UserID,
			Estado:     entity.EstadoPendiente,
			Total:      cart.Total(),
			MetodoPago: metodo,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for i := range cart.Items {
			line := &cart.Items[i]
			item := &entity.OrderItem{
				ID:             uuid.New().String(),
				OrderID:        order.ID,
				ProductID:      line.ProductID,
				Cantidad:       line.Cantidad,
				PrecioUnitario: line.PrecioUnitario,
				PrecioTotal:    line.PrecioTotal,
			}
			if line.Producto != nil {
				item.NombreProducto = line.Producto.Nombre
			}
			if err := orderRepo.CreateItem(item); err != nil {
				return err
			}
		}
		if err := cartRepo.Clear(in.UserID); err != nil {
			return err
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(orderID)
}

// GetByID devuelve una orden completa con sus líneas.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToOrderResponse(order)
	return &resp, nil
}

// ListByUser devuelve las órdenes del usuario (dashboard de cliente).
func (uc *OrderUseCase) ListByUser(userID string) ([]dto.OrderResponse, error) {
	list, err := uc.orderRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return dto.ToOrderResponses(list), nil
}

// ListAll devuelve todas las órdenes con el usuario adjunto (dashboard admin).
func (uc *OrderUseCase) ListAll(page dto.PageRequest) ([]dto.OrderResponse, error) {
	page.DefaultPage()
	list, err := uc.orderRepo.ListAll(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	for _, o := range list {
		user, err := uc.userRepo.GetByID(o.UserID)
		if err == nil && user != nil {
			o.User = user
		}
	}
	return dto.ToOrderResponses(list), nil
}

// UpdateEstado cambia el estado de una orden (solo admin; el router aplica el
// RBAC). Rechaza estados fuera del ciclo de vida conocido.
func (uc *OrderUseCase) UpdateEstado(id, estado string) (*dto.OrderResponse, error) {
	if !entity.EstadoValido(estado) {
		return nil, domain.ErrInvalidEstado
	}
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.orderRepo.UpdateEstado(id, estado); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Receipt genera el comprobante PDF de una orden.
func (uc *OrderUseCase) Receipt(ctx context.Context, id string) ([]byte, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	user, err := uc.userRepo.GetByID(order.UserID)
	if err != nil {
		return nil, err
	}
	return uc.receipts.GenerateReceipt(ctx, order, user)
}
