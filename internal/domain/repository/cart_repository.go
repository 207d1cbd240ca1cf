package repository

import "github.com/ferdcas/tienda-romantica/internal/domain/entity"

// CartRepository puerto de persistencia para el carrito del servidor.
// GetByUserID devuelve (nil, nil) mientras el usuario no tenga carrito;
// la fila se crea de forma perezosa en el primer add autenticado.
type CartRepository interface {
	GetByID(cartID string) (*entity.Cart, error)
	GetByUserID(userID string) (*entity.Cart, error)
	GetItem(itemID string) (*entity.CartItem, error)
	Create(cart *entity.Cart) error
	CreateItem(item *entity.CartItem) error
	UpdateItem(item *entity.CartItem) error
	DeleteItem(itemID string) error
	Clear(userID string) error
}
