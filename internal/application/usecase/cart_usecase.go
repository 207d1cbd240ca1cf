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

// CartUseCase casos de uso del carrito del servidor.
//
// Protocolo con el cliente: toda operación que muta el carrito responde con el
// carrito ENTERO actualizado; el cliente reemplaza su copia completa (último
// escritor gana, sin parches parciales ni merge optimista entre pestañas).
type CartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	tx          TxRunner
}

// NewCartUseCase construye el caso de uso del carrito.
func NewCartUseCase(cartRepo repository.CartRepository, productRepo repository.ProductRepository, tx TxRunner) *CartUseCase {
	return &CartUseCase{cartRepo: cartRepo, productRepo: productRepo, tx: tx}
}

// Get devuelve el carrito del usuario, o nil si todavía no existe.
func (uc *CartUseCase) Get(userID string) (*dto.CartResponse, error) {
	cart, err := uc.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	return dto.ToCartResponse(cart), nil
}

// Add agrega un producto al carrito del usuario. Si el producto ya está en el
// carrito se fusionan las líneas: la cantidad se suma y el total se recalcula.
// El carrito se crea de forma perezosa en el primer add.
func (uc *CartUseCase) Add(in dto.AddToCartRequest) (*dto.CartResponse, error) {
	if in.UserID == "" || in.ProductID == "" || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	metodo := in.MetodoPago
	if metodo == "" {
		metodo = entity.PagoBeso
	}
	if !entity.MetodoPagoValido(metodo) {
		return nil, domain.ErrInvalidMetodoPago
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !product.Activo {
		return nil, domain.ErrProductInactive
	}

	cart, err := uc.cartRepo.GetByUserID(in.UserID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		now := time.Now()
		cart = &entity.Cart{ID: uuid.New().String(), UserID: in.UserID, CreatedAt: now, UpdatedAt: now}
		if err := uc.cartRepo.Create(cart); err != nil {
			return nil, err
		}
	}

	if err := upsertLine(uc.cartRepo, cart, product, in.Quantity, metodo); err != nil {
		return nil, err
	}
	return uc.Get(in.UserID)
}

// UpdateItem cambia la cantidad de una línea (mínimo 1) y recalcula su total.
func (uc *CartUseCase) UpdateItem(itemID string, quantity int) (*dto.CartResponse, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.cartRepo.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	item.Cantidad = quantity
	item.Recompute()
	if err := uc.cartRepo.UpdateItem(item); err != nil {
		return nil, err
	}
	return uc.getByCartID(item.CartID)
}

// RemoveItem elimina una línea del carrito.
func (uc *CartUseCase) RemoveItem(itemID string) (*dto.CartResponse, error) {
	item, err := uc.cartRepo.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.cartRepo.DeleteItem(itemID); err != nil {
		return nil, err
	}
	return uc.getByCartID(item.CartID)
}

// Clear vacía el carrito del usuario.
func (uc *CartUseCase) Clear(userID string) (*dto.CartResponse, error) {
	if err := uc.cartRepo.Clear(userID); err != nil {
		return nil, err
	}
	return uc.Get(userID)
}

// Migrate replica el carrito anónimo completo en el carrito del servidor, en
// una sola transacción. Reemplaza en vez de acumular: primero vacía el carrito
// del servidor y luego aplica las líneas del payload, de modo que reintentar
// con el mismo carrito local deja el mismo resultado y no duplica cantidades.
func (uc *CartUseCase) Migrate(ctx context.Context, in dto.MigrateCartRequest) (*dto.CartResponse, error) {
	if in.UserID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Items {
		if line.ProductID == "" || line.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
	}

	err := uc.tx.Run(ctx, func(cartRepo repository.CartRepository, _ repository.OrderRepository, productRepo repository.ProductRepository) error {
		cart, err := cartRepo.GetByUserID(in.UserID)
		if err != nil {
			return err
		}
		if cart == nil {
			now := time.Now()
			cart = &entity.Cart{ID: uuid.New().String(), UserID: in.UserID, CreatedAt: now, UpdatedAt: now}
			if err := cartRepo.Create(cart); err != nil {
				return err
			}
		} else {
			// La migración reemplaza, no acumula: si el servidor ya tiene
			// líneas de un intento anterior se parte del carrito vacío.
			if err := cartRepo.Clear(in.UserID); err != nil {
				return err
			}
			cart.Items = nil
		}
		for _, line := range in.Items {
			product, err := productRepo.GetByID(line.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			metodo := line.MetodoPago
			if metodo == "" {
				metodo = entity.PagoBeso
			}
			if err := upsertLine(cartRepo, cart, product, line.Quantity, metodo); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.Get(in.UserID)
}

// getByCartID recarga el carrito entero al que pertenece una línea.
func (uc *CartUseCase) getByCartID(cartID string) (*dto.CartResponse, error) {
	cart, err := uc.cartRepo.GetByID(cartID)
	if err != nil {
		return nil, err
	}
	return dto.ToCartResponse(cart), nil
}

// upsertLine fusiona o crea la línea de un producto dentro del carrito dado.
func upsertLine(cartRepo repository.CartRepository, cart *entity.Cart, product *entity.Product, quantity int, metodo string) error {
	if existing := cart.FindItemByProduct(product.ID); existing != nil {
		existing.Cantidad += quantity
		existing.Recompute()
		return cartRepo.UpdateItem(existing)
	}
	item := entity.CartItem{
		ID:             uuid.New().String(),
		CartID:         cart.ID,
		ProductID:      product.ID,
		Cantidad:       quantity,
		PrecioUnitario: product.Precio,
		MetodoPago:     metodo,
	}
	item.Recompute()
	cart.Items = append(cart.Items, item)
	return cartRepo.CreateItem(&item)
}
