package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ferdcas/tienda-romantica/internal/domain/entity"
	"github.com/ferdcas/tienda-romantica/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL
// (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para órdenes.
// Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera de una orden.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, user_id, estado, total, metodo_pago, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.UserID, order.Estado, order.Total, order.MetodoPago,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de orden (snapshot congelado del producto).
func (r *OrderRepo) CreateItem(item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, nombre_producto, cantidad, precio_unitario, precio_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.ProductID, item.NombreProducto,
		item.Cantidad, item.PrecioUnitario, item.PrecioTotal,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtiene una orden completa con sus líneas. Devuelve (nil, nil) si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT id, user_id, estado, total, metodo_pago, created_at, updated_at FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.UserID, &o.Estado, &o.Total, &o.MetodoPago, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	items, err := r.listItems(id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *OrderRepo) listItems(orderID string) ([]entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, nombre_producto, cantidad, precio_unitario, precio_total
		FROM order_items WHERE order_id = $1`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var items []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.NombreProducto,
			&it.Cantidad, &it.PrecioUnitario, &it.PrecioTotal); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ListByUser lista las órdenes de un usuario, recientes primero, con líneas.
func (r *OrderRepo) ListByUser(userID string) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, estado, total, metodo_pago, created_at, updated_at
		FROM orders WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(query, userID)
}

// ListAll lista todas las órdenes con paginación (dashboard admin).
func (r *OrderRepo) ListAll(limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, estado, total, metodo_pago, created_at, updated_at
		FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

func (r *OrderRepo) list(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Estado, &o.Total, &o.MetodoPago,
			&o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		items, err := r.listItems(o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}
	return list, nil
}

// UpdateEstado cambia el estado de una orden.
func (r *OrderRepo) UpdateEstado(id, estado string) error {
	query := `UPDATE orders SET estado = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, estado, time.Now())
	if err != nil {
		return fmt.Errorf("update order estado: %w", err)
	}
	return nil
}
