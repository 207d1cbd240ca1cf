package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un regalo del catálogo romántico.
// El precio es simbólico: se "paga" con besos, bailes o abrazos, pero se
// modela como decimal para que los totales del carrito y las órdenes cuadren.
type Product struct {
	ID          string
	Nombre      string
	Descripcion string
	Precio      decimal.Decimal
	Categoria   string
	ImagenURL   string
	Activo      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
