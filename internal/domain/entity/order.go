package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una orden. Solo un admin puede mutarlos.
const (
	EstadoPendiente  = "pendiente"
	EstadoProcesando = "procesando"
	EstadoEnviado    = "enviado"
	EstadoEntregado  = "entregado"
	EstadoCancelado  = "cancelado"
)

// Estados lista los estados válidos de una orden.
var Estados = []string{EstadoPendiente, EstadoProcesando, EstadoEnviado, EstadoEntregado, EstadoCancelado}

// EstadoValido indica si el estado pertenece al ciclo de vida conocido.
func EstadoValido(e string) bool {
	for _, v := range Estados {
		if v == e {
			return true
		}
	}
	return false
}

// Order es una compra confirmada. Items es un snapshot inmutable de los
// productos al momento del checkout: editar el catálogo después no altera
// órdenes históricas.
type Order struct {
	ID         string
	UserID     string
	Estado     string
	Total      decimal.Decimal
	MetodoPago string
	Items      []OrderItem
	User       *User // solo poblado en vistas de admin
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OrderItem es una línea de orden con el nombre y precio congelados.
type OrderItem struct {
	ID             string
	OrderID        string
	ProductID      string
	NombreProducto string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	PrecioTotal    decimal.Decimal
}
