package client

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ferdcas/tienda-romantica/internal/application/dto"
)

// Reconciler funde el carrito anónimo con el carrito del servidor en el
// momento del checkout. La migración va en una sola petición batch: el
// servidor fusiona por producto, así que un reintento tras un fallo parcial
// no duplica líneas.
type Reconciler struct {
	api   *API
	local *LocalCart
	log   zerolog.Logger
}

// NewReconciler construye el reconciliador.
func NewReconciler(api *API, local *LocalCart, log zerolog.Logger) *Reconciler {
	return &Reconciler{api: api, local: local, log: log}
}

// EnsureServerCart garantiza que el servidor tenga el contenido del carrito
// local: si el usuario aún no tiene carrito en el servidor (todas las
// adiciones previas fueron anónimas) y el carrito local tiene líneas, las
// migra en batch. El carrito local NO se limpia aquí; eso ocurre solo cuando
// el checkout completo tiene éxito.
func (r *Reconciler) EnsureServerCart(ctx context.Context, userID string) (*dto.CartResponse, error) {
	cart, err := r.api.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart != nil && len(cart.Items) > 0 {
		return cart, nil
	}

	localItems := r.local.Load()
	if len(localItems) == 0 {
		return cart, nil
	}

	req := dto.MigrateCartRequest{UserID: userID, Items: make([]dto.MigrateCartLine, 0, len(localItems))}
	for _, it := range localItems {
		req.Items = append(req.Items, dto.MigrateCartLine{
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			MetodoPago: it.PaymentMethod,
		})
	}
	r.log.Info().Int("lineas", len(req.Items)).Str("user_id", userID).Msg("migrando carrito local al servidor")
	migrated, err := r.api.MigrateCart(ctx, req)
	if err != nil {
		// El carrito local queda intacto para poder reintentar.
		return nil, err
	}
	return migrated, nil
}

// Checkout migra el carrito local si hace falta y ejecuta el checkout.
// El carrito local se descarta únicamente después de que el checkout
// completo tuvo éxito.
func (r *Reconciler) Checkout(ctx context.Context, userID, metodoPago string) (*dto.OrderResponse, error) {
	if _, err := r.EnsureServerCart(ctx, userID); err != nil {
		return nil, err
	}
	order, err := r.api.Checkout(ctx, userID, metodoPago)
	if err != nil {
		return nil, err
	}
	if err := r.local.Clear(); err != nil {
		r.log.Warn().Err(err).Msg("no se pudo limpiar el carrito local tras el checkout")
	}
	return order, nil
}
