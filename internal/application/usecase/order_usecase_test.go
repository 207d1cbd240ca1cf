package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferdcas/tienda-romantica/internal/application/dto"
	"github.com/ferdcas/tienda-romantica/internal/domain"
	"github.com/ferdcas/tienda-romantica/internal/domain/entity"
)

type orderFixture struct {
	orders   *OrderUseCase
	carts    *CartUseCase
	products *fakeProductRepo
	users    *fakeUserRepo
	cartRepo *fakeCartRepo
}

func newOrderFixture(t *testing.T) orderFixture {
	t.Helper()
	products := newFakeProductRepo()
	cartRepo := newFakeCartRepo(products)
	orderRepo := newFakeOrderRepo()
	users := newFakeUserRepo()
	tx := &fakeTx{cartRepo: cartRepo, orderRepo: orderRepo, productRepo: products}
	return orderFixture{
		orders:   NewOrderUseCase(orderRepo, cartRepo, users, tx, fakeReceipts{}),
		carts:    NewCartUseCase(cartRepo, products, tx),
		products: products,
		users:    users,
		cartRepo: cartRepo,
	}
}

func (f orderFixture) fillCart(t *testing.T, userID string) {
	t.Helper()
	seedProduct(t, f.products, "p1", "Ramo de rosas", "10", true)
	seedProduct(t, f.products, "p2", "Chocolates", "5", true)
	_, err := f.carts.Add(dto.AddToCartRequest{UserID: userID, ProductID: "p1", Quantity: 2})
	require.NoError(t, err)
	_, err = f.carts.Add(dto.AddToCartRequest{UserID: userID, ProductID: "p2", Quantity: 1})
	require.NoError(t, err)
}

// Checkout congela nombre y precio en las líneas, deja la orden pendiente con
// el total del carrito y vacía el carrito.
func TestCheckout_CongelaLineasYVaciaElCarrito(t *testing.T) {
	f := newOrderFixture(t)
	f.fillCart(t, "u1")

	order, err := f.orders.Checkout(context.Background(), dto.CheckoutRequest{UserID: "u1", MetodoPago: entity.PagoAbrazo})
	require.NoError(t, err)

	assert.Equal(t, entity.EstadoPendiente, order.Estado)
	assert.Equal(t, entity.PagoAbrazo, order.MetodoPago)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("25")))
	require.Len(t, order.Items, 2)
	for _, it := range order.Items {
		assert.NotEmpty(t, it.NombreProducto, "el nombre queda congelado en la línea")
		assert.True(t, it.TotalPrice.Equal(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))))
	}

	cart, err := f.carts.Get("u1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items, "el checkout vacía el carrito")
}

// Sin carrito o con carrito vacío el checkout es un error de dominio.
func TestCheckout_CarritoVacio(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orders.Checkout(context.Background(), dto.CheckoutRequest{UserID: "u1"})
	assert.ErrorIs(t, err, domain.ErrCartEmpty)

	_, err = f.orders.Checkout(context.Background(), dto.CheckoutRequest{UserID: "u1", MetodoPago: "dinero"})
	assert.ErrorIs(t, err, domain.ErrInvalidMetodoPago)

	_, err = f.orders.Checkout(context.Background(), dto.CheckoutRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Sin método explícito el checkout usa beso.
func TestCheckout_MetodoPorDefecto(t *testing.T) {
	f := newOrderFixture(t)
	f.fillCart(t, "u1")

	order, err := f.orders.Checkout(context.Background(), dto.CheckoutRequest{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, entity.PagoBeso, order.MetodoPago)
}

// Un cambio de precio en el catálogo no altera órdenes ya creadas.
func TestCheckout_ElSnapshotSobreviveCambiosDePrecio(t *testing.T) {
	f := newOrderFixture(t)
	f.fillCart(t, "u1")

	order, err := f.orders.Checkout(context.Background(), dto.CheckoutRequest{UserID: "u1"})
	require.NoError(t, err)

	p, err := f.products.GetByID("p1")
	require.NoError(t, err)
	p.Precio = decimal.RequireFromString("999")
	require.NoError(t, f.products.Update(p))

	again, err := f.orders.GetByID(order.ID)
	require.NoError(t, err)
	assert.True(t, again.Total.Equal(decimal.RequireFromString("25")))
}

// UpdateEstado acepta solo estados del ciclo de vida conocido.
func TestUpdateEstado(t *testing.T) {
	f := newOrderFixture(t)
	f.fillCart(t, "u1")
	order, err := f.orders.Checkout(context.Background(), dto.CheckoutRequest{UserID: "u1"})
	require.NoError(t, err)

	updated, err := f.orders.UpdateEstado(order.ID, entity.EstadoEnviado)
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoEnviado, updated.Estado)

	_, err = f.orders.UpdateEstado(order.ID, "perdido")
	assert.ErrorIs(t, err, domain.ErrInvalidEstado)

	_, err = f.orders.UpdateEstado("no-existe", entity.EstadoEnviado)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ListAll adjunta el usuario a cada orden para el dashboard admin.
func TestListAll_AdjuntaElUsuario(t *testing.T) {
	f := newOrderFixture(t)
	require.NoError(t, f.users.Create(&entity.User{ID: "u1", Nombres: "Fer", Correo: "fer@test.local", Tipo: entity.TipoCliente, CreatedAt: time.Now()}))
	f.fillCart(t, "u1")
	_, err := f.orders.Checkout(context.Background(), dto.CheckoutRequest{UserID: "u1"})
	require.NoError(t, err)

	list, err := f.orders.ListAll(dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].User)
	assert.Equal(t, "Fer", list[0].User.Nombres)
}

// Receipt devuelve el PDF del generador para una orden existente.
func TestReceipt(t *testing.T) {
	f := newOrderFixture(t)
	require.NoError(t, f.users.Create(&entity.User{ID: "u1", Nombres: "Fer"}))
	f.fillCart(t, "u1")
	order, err := f.orders.Checkout(context.Background(), dto.CheckoutRequest{UserID: "u1"})
	require.NoError(t, err)

	pdf, err := f.orders.Receipt(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Contains(t, string(pdf), "%PDF")

	_, err = f.orders.Receipt(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
