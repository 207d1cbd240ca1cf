package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ferdcas/tienda-romantica/internal/domain/entity"
	"github.com/ferdcas/tienda-romantica/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación del puerto CartRepository sobre PostgreSQL
// (usable con pool o tx).
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador de persistencia para carritos.
// Pasar pool o tx (Querier).
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// GetByID obtiene un carrito por ID con sus líneas y el snapshot de producto.
func (r *CartRepo) GetByID(cartID string) (*entity.Cart, error) {
	return r.getOne(`SELECT id, user_id, created_at, updated_at FROM carts WHERE id = $1`, cartID)
}

// GetByUserID obtiene el carrito de un usuario. Devuelve (nil, nil) mientras
// no exista: el carrito se crea perezosamente en el primer add autenticado.
func (r *CartRepo) GetByUserID(userID string) (*entity.Cart, error) {
	return r.getOne(`SELECT id, user_id, created_at, updated_at FROM carts WHERE user_id = $1`, userID)
}

func (r *CartRepo) getOne(query string, arg any) (*entity.Cart, error) {
	var c entity.Cart
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.UserID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	items, err := r.listItems(c.ID)
	if err != nil {
		return nil, err
	}
	c.Items = items
	return &c, nil
}

// listItems carga las líneas de un carrito con el producto desnormalizado.
func (r *CartRepo) listItems(cartID string) ([]entity.CartItem, error) {
	query := `
		SELECT i.id, i.cart_id, i.product_id, i.cantidad, i.precio_unitario, i.precio_total, i.metodo_pago,
		       p.id, p.nombre, p.descripcion, p.precio, p.categoria, p.imagen_url, p.activo, p.created_at, p.updated_at
		FROM cart_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.cart_id = $1
		ORDER BY i.created_at`
	rows, err := r.q.Query(context.Background(), query, cartID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()
	var items []entity.CartItem
	for rows.Next() {
		var it entity.CartItem
		var metodo *string
		var p entity.Product
		var imagenURL *string
		if err := rows.Scan(
			&it.ID, &it.CartID, &it.ProductID, &it.Cantidad, &it.PrecioUnitario, &it.PrecioTotal, &metodo,
			&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.Categoria, &imagenURL, &p.Activo, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		it.MetodoPago = derefStr(metodo)
		p.ImagenURL = derefStr(imagenURL)
		it.Producto = &p
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetItem obtiene una línea por ID. Devuelve (nil, nil) si no existe.
func (r *CartRepo) GetItem(itemID string) (*entity.CartItem, error) {
	query := `
		SELECT id, cart_id, product_id, cantidad, precio_unitario, precio_total, metodo_pago
		FROM cart_items WHERE id = $1`
	var it entity.CartItem
	var metodo *string
	err := r.q.QueryRow(context.Background(), query, itemID).Scan(
		&it.ID, &it.CartID, &it.ProductID, &it.Cantidad, &it.PrecioUnitario, &it.PrecioTotal, &metodo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart item: %w", err)
	}
	it.MetodoPago = derefStr(metodo)
	return &it, nil
}

// Create persiste un carrito vacío.
func (r *CartRepo) Create(cart *entity.Cart) error {
	query := `INSERT INTO carts (id, user_id, created_at, updated_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, cart.ID, cart.UserID, cart.CreatedAt, cart.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert cart: %w", err)
	}
	return nil
}

// CreateItem persiste una línea nueva.
func (r *CartRepo) CreateItem(item *entity.CartItem) error {
	query := `
		INSERT INTO cart_items (id, cart_id, product_id, cantidad, precio_unitario, precio_total, metodo_pago, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.CartID, item.ProductID, item.Cantidad,
		item.PrecioUnitario, item.PrecioTotal, nullIfEmpty(item.MetodoPago),
	)
	if err != nil {
		return fmt.Errorf("insert cart item: %w", err)
	}
	return nil
}

// UpdateItem actualiza cantidad y totales de una línea.
func (r *CartRepo) UpdateItem(item *entity.CartItem) error {
	query := `
		UPDATE cart_items
		SET cantidad = $2, precio_unitario = $3, precio_total = $4, metodo_pago = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Cantidad, item.PrecioUnitario, item.PrecioTotal, nullIfEmpty(item.MetodoPago),
	)
	if err != nil {
		return fmt.Errorf("update cart item: %w", err)
	}
	return nil
}

// DeleteItem elimina una línea.
func (r *CartRepo) DeleteItem(itemID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cart_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

// Clear elimina todas las líneas del carrito de un usuario.
func (r *CartRepo) Clear(userID string) error {
	query := `DELETE FROM cart_items WHERE cart_id IN (SELECT id FROM carts WHERE user_id = $1)`
	_, err := r.q.Exec(context.Background(), query, userID)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
