package repository

import "github.com/ferdcas/tienda-romantica/internal/domain/entity"

// ProductRepository puerto de persistencia para el catálogo.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	ListActive() ([]*entity.Product, error)
	ListByCategoria(categoria string) ([]*entity.Product, error)
	Update(product *entity.Product) error
}
