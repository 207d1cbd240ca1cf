package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ferdcas/tienda-romantica/internal/domain"
	"github.com/ferdcas/tienda-romantica/internal/domain/entity"
	"github.com/ferdcas/tienda-romantica/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, nombre, descripcion, precio, categoria, imagen_url, activo, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Nombre, product.Descripcion, product.Precio,
		product.Categoria, nullIfEmpty(product.ImagenURL), product.Activo,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	var imagenURL *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.Categoria,
		&imagenURL, &p.Activo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p.ImagenURL = derefStr(imagenURL)
	return &p, nil
}

// ListActive lista los productos activos del catálogo.
func (r *ProductRepo) ListActive() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE activo ORDER BY created_at`
	return r.list(query)
}

// ListByCategoria lista los productos activos de una categoría.
func (r *ProductRepo) ListByCategoria(categoria string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE activo AND categoria = $1 ORDER BY created_at`
	return r.list(query, categoria)
}

// Update actualiza un producto del catálogo.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET nombre = $2, descripcion = $3, precio = $4, categoria = $5, imagen_url = $6, activo = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Nombre, product.Descripcion, product.Precio,
		product.Categoria, nullIfEmpty(product.ImagenURL), product.Activo, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (r *ProductRepo) list(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var imagenURL *string
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.Categoria,
			&imagenURL, &p.Activo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.ImagenURL = derefStr(imagenURL)
		list = append(list, &p)
	}
	return list, rows.Err()
}
