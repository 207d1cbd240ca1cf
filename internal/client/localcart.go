package client

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ferdcas/tienda-romantica/internal/application/dto"
)

// LocalCartItem línea del carrito anónimo. El ID es local y se descarta al
// migrar; el servidor asigna los suyos.
type LocalCartItem struct {
	ID            string               `json:"id"`
	ProductID     string               `json:"productId"`
	Quantity      int                  `json:"quantity"`
	UnitPrice     decimal.Decimal      `json:"unitPrice"`
	TotalPrice    decimal.Decimal      `json:"totalPrice"`
	PaymentMethod string               `json:"paymentMethod,omitempty"`
	Product       *dto.ProductResponse `json:"product,omitempty"`
}

// LocalCart carrito anónimo persistido bajo KeyLocalCart. Está ligado al
// cliente, no a la identidad: cambiar de cuenta en el mismo cliente ve el
// mismo contenido anónimo salvo que se limpie explícitamente.
type LocalCart struct {
	store Storage
	log   zerolog.Logger
}

// NewLocalCart construye el carrito local sobre el almacenamiento dado.
func NewLocalCart(store Storage, log zerolog.Logger) *LocalCart {
	return &LocalCart{store: store, log: log}
}

// Load devuelve las líneas persistidas. Un payload corrupto se registra y
// se trata como carrito vacío; no hay validación de esquema.
func (lc *LocalCart) Load() []LocalCartItem {
	raw, ok := lc.store.Get(KeyLocalCart)
	if !ok || raw == "" {
		return nil
	}
	var items []LocalCartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		lc.log.Warn().Err(err).Msg("carrito local corrupto; se trata como vacío")
		return nil
	}
	return items
}

// Save persiste la lista completa (sobrescritura atómica, no append).
func (lc *LocalCart) Save(items []LocalCartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return lc.store.Set(KeyLocalCart, string(raw))
}

// Add agrega un producto fusionando por productId: la cantidad se suma y el
// total se recalcula siempre desde cantidad × precio unitario.
func (lc *LocalCart) Add(product dto.ProductResponse, quantity int, paymentMethod string) ([]LocalCartItem, error) {
	if quantity < 1 {
		quantity = 1
	}
	items := lc.Load()
	merged := false
	for i := range items {
		if items[i].ProductID == product.ID {
			items[i].Quantity += quantity
			items[i].TotalPrice = product.Precio.Mul(decimal.NewFromInt(int64(items[i].Quantity)))
			merged = true
			break
		}
	}
	if !merged {
		p := product
		items = append(items, LocalCartItem{
			ID:            uuid.New().String(),
			ProductID:     product.ID,
			Quantity:      quantity,
			UnitPrice:     product.Precio,
			TotalPrice:    product.Precio.Mul(decimal.NewFromInt(int64(quantity))),
			PaymentMethod: paymentMethod,
			Product:       &p,
		})
	}
	if err := lc.Save(items); err != nil {
		return nil, err
	}
	return items, nil
}

// Remove quita la línea de un producto.
func (lc *LocalCart) Remove(productID string) ([]LocalCartItem, error) {
	items := lc.Load()
	out := items[:0]
	for _, it := range items {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	if err := lc.Save(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Clear descarta el carrito local por completo.
func (lc *LocalCart) Clear() error {
	return lc.store.Delete(KeyLocalCart)
}

// Total suma los totales de todas las líneas.
func (lc *LocalCart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range lc.Load() {
		total = total.Add(it.TotalPrice)
	}
	return total
}
