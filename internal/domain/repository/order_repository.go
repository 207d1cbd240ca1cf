package repository

import "github.com/ferdcas/tienda-romantica/internal/domain/entity"

// OrderRepository puerto de persistencia para órdenes.
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	GetByID(id string) (*entity.Order, error)
	ListByUser(userID string) ([]*entity.Order, error)
	ListAll(limit, offset int) ([]*entity.Order, error)
	UpdateEstado(id, estado string) error
}
