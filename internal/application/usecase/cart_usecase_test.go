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

func seedProduct(t *testing.T, repo *fakeProductRepo, id, nombre, precio string, activo bool) {
	t.Helper()
	require.NoError(t, repo.Create(&entity.Product{
		ID:        id,
		Nombre:    nombre,
		Precio:    decimal.RequireFromString(precio),
		Activo:    activo,
		CreatedAt: time.Now(),
	}))
}

func newCartFixture(t *testing.T) (*CartUseCase, *fakeProductRepo, *fakeCartRepo) {
	t.Helper()
	products := newFakeProductRepo()
	carts := newFakeCartRepo(products)
	tx := &fakeTx{cartRepo: carts, orderRepo: newFakeOrderRepo(), productRepo: products}
	return NewCartUseCase(carts, products, tx), products, carts
}

// Agregar dos veces el mismo producto fusiona en una línea con la cantidad
// sumada y el total recalculado.
func TestCartAdd_MismoProducto_FusionaLineas(t *testing.T) {
	uc, products, _ := newCartFixture(t)
	seedProduct(t, products, "p1", "Ramo de rosas", "10", true)

	_, err := uc.Add(dto.AddToCartRequest{UserID: "u1", ProductID: "p1", Quantity: 1})
	require.NoError(t, err)
	cart, err := uc.Add(dto.AddToCartRequest{UserID: "u1", ProductID: "p1", Quantity: 1})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.True(t, cart.Items[0].TotalPrice.Equal(decimal.RequireFromString("20")))
	assert.True(t, cart.Total.Equal(decimal.RequireFromString("20")))
}

// El método de pago por defecto es beso; uno fuera del catálogo se rechaza.
func TestCartAdd_MetodoDePago(t *testing.T) {
	uc, products, _ := newCartFixture(t)
	seedProduct(t, products, "p1", "Rosas", "10", true)

	cart, err := uc.Add(dto.AddToCartRequest{UserID: "u1", ProductID: "p1", Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, entity.PagoBeso, cart.Items[0].MetodoPago)

	_, err = uc.Add(dto.AddToCartRequest{UserID: "u1", ProductID: "p1", Quantity: 1, MetodoPago: "dinero"})
	assert.ErrorIs(t, err, domain.ErrInvalidMetodoPago)
}

// Producto inexistente o inactivo no entra al carrito.
func TestCartAdd_ProductoInvalido(t *testing.T) {
	uc, products, _ := newCartFixture(t)
	seedProduct(t, products, "p2", "Descontinuado", "10", false)

	_, err := uc.Add(dto.AddToCartRequest{UserID: "u1", ProductID: "no-existe", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Add(dto.AddToCartRequest{UserID: "u1", ProductID: "p2", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrProductInactive)

	_, err = uc.Add(dto.AddToCartRequest{UserID: "u1", ProductID: "p2", Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// UpdateItem restablece el invariante total = cantidad × precio unitario.
func TestCartUpdateItem_RecalculaElTotal(t *testing.T) {
	uc, products, _ := newCartFixture(t)
	seedProduct(t, products, "p1", "Rosas", "10", true)

	cart, err := uc.Add(dto.AddToCartRequest{UserID: "u1", ProductID: "p1", Quantity: 1})
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	updated, err := uc.UpdateItem(itemID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Items[0].Quantity)
	assert.True(t, updated.Items[0].TotalPrice.Equal(decimal.RequireFromString("50")))

	_, err = uc.UpdateItem(itemID, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Get devuelve nil mientras el usuario no tenga carrito.
func TestCartGet_SinCarrito_Nil(t *testing.T) {
	uc, _, _ := newCartFixture(t)
	cart, err := uc.Get("u-nuevo")
	require.NoError(t, err)
	assert.Nil(t, cart)
}

// La migración reemplaza el carrito del servidor: reenviar el mismo carrito
// local tras un intento fallido deja la cantidad del carrito local, no la suma.
func TestCartMigrate_ReintentoNoDuplica(t *testing.T) {
	uc, products, _ := newCartFixture(t)
	seedProduct(t, products, "p1", "Ramo de rosas", "10", true)

	payload := dto.MigrateCartRequest{
		UserID: "u1",
		Items:  []dto.MigrateCartLine{{ProductID: "p1", Quantity: 2}},
	}

	cart, err := uc.Migrate(context.Background(), payload)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)

	// El cliente reintenta con el mismo carrito local intacto.
	cart, err = uc.Migrate(context.Background(), payload)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity, "el reintento no debe duplicar la cantidad")
	assert.True(t, cart.Total.Equal(decimal.RequireFromString("20")))
}

// La migración fusiona por producto líneas repetidas del payload.
func TestCartMigrate_FusionaPorProducto(t *testing.T) {
	uc, products, _ := newCartFixture(t)
	seedProduct(t, products, "p1", "Rosas", "10", true)
	seedProduct(t, products, "p2", "Chocolates", "5", true)

	cart, err := uc.Migrate(context.Background(), dto.MigrateCartRequest{
		UserID: "u1",
		Items: []dto.MigrateCartLine{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "p2", Quantity: 3},
			{ProductID: "p1", Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	assert.True(t, cart.Total.Equal(decimal.RequireFromString("35")))
}

// Entradas inválidas de la migración.
func TestCartMigrate_EntradasInvalidas(t *testing.T) {
	uc, _, _ := newCartFixture(t)

	_, err := uc.Migrate(context.Background(), dto.MigrateCartRequest{UserID: "u1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Migrate(context.Background(), dto.MigrateCartRequest{
		UserID: "u1",
		Items:  []dto.MigrateCartLine{{ProductID: "p1", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// RemoveItem y Clear dejan el carrito consistente.
func TestCartRemoveYClear(t *testing.T) {
	uc, products, _ := newCartFixture(t)
	seedProduct(t, products, "p1", "Rosas", "10", true)
	seedProduct(t, products, "p2", "Chocolates", "5", true)

	cart, err := uc.Add(dto.AddToCartRequest{UserID: "u1", ProductID: "p1", Quantity: 1})
	require.NoError(t, err)
	_, err = uc.Add(dto.AddToCartRequest{UserID: "u1", ProductID: "p2", Quantity: 1})
	require.NoError(t, err)

	afterRemove, err := uc.RemoveItem(cart.Items[0].ID)
	require.NoError(t, err)
	require.Len(t, afterRemove.Items, 1)

	cleared, err := uc.Clear("u1")
	require.NoError(t, err)
	assert.Empty(t, cleared.Items)
}
