package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago no monetarios aceptados en el checkout.
const (
	PagoBeso           = "beso"
	PagoAbrazo         = "abrazo"
	PagoBaile          = "baile"
	PagoCancion        = "cancion"
	PagoFoto           = "foto"
	PagoRegaloSorpresa = "regalo_sorpresa"
)

// MetodosPago lista los métodos válidos, en el orden que los muestra la UI.
var MetodosPago = []string{PagoBeso, PagoAbrazo, PagoBaile, PagoCancion, PagoFoto, PagoRegaloSorpresa}

// MetodoPagoValido indica si el método está dentro del catálogo aceptado.
func MetodoPagoValido(m string) bool {
	for _, v := range MetodosPago {
		if v == m {
			return true
		}
	}
	return false
}

// Cart es el carrito del servidor, propiedad de un usuario autenticado.
// No existe fila hasta el primer add autenticado; mientras tanto el cliente
// trabaja con su carrito local.
type Cart struct {
	ID        string
	UserID    string
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Total suma los PrecioTotal de todas las líneas.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.PrecioTotal)
	}
	return total
}

// FindItemByProduct devuelve la línea para un producto, o nil si no existe.
func (c *Cart) FindItemByProduct(productID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// CartItem es una línea del carrito.
// Invariante: PrecioTotal siempre se recalcula como Cantidad × PrecioUnitario
// (ver Recompute); nunca se edita de forma independiente. Cantidad ≥ 1.
type CartItem struct {
	ID             string
	CartID         string
	ProductID      string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	PrecioTotal    decimal.Decimal
	MetodoPago     string
	Producto       *Product // snapshot desnormalizado para mostrar en la UI
}

// Recompute restablece el invariante PrecioTotal = Cantidad × PrecioUnitario.
func (i *CartItem) Recompute() {
	i.PrecioTotal = i.PrecioUnitario.Mul(decimal.NewFromInt(int64(i.Cantidad)))
}
