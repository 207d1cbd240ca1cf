package usecase

import (
	"context"
	"sort"

	"github.com/ferdcas/tienda-romantica/internal/domain/entity"
	"github.com/ferdcas/tienda-romantica/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia, compartidos por los tests
// del paquete.

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) ListActive() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if p.Activo {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (f *fakeProductRepo) ListByCategoria(categoria string) ([]*entity.Product, error) {
	list, _ := f.ListActive()
	var out []*entity.Product
	for _, p := range list {
		if p.Categoria == categoria {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

type fakeCartRepo struct {
	products *fakeProductRepo
	carts    map[string]*entity.Cart
	items    map[string]*entity.CartItem
}

func newFakeCartRepo(products *fakeProductRepo) *fakeCartRepo {
	return &fakeCartRepo{
		products: products,
		carts:    map[string]*entity.Cart{},
		items:    map[string]*entity.CartItem{},
	}
}

// hydrate devuelve una copia del carrito con sus líneas y el snapshot de producto.
func (f *fakeCartRepo) hydrate(cart *entity.Cart) *entity.Cart {
	cp := *cart
	cp.Items = nil
	var ids []string
	for id, it := range f.items {
		if it.CartID == cart.ID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	for _, id := range ids {
		it := *f.items[id]
		if f.products != nil {
			if p, _ := f.products.GetByID(it.ProductID); p != nil {
				it.Producto = p
			}
		}
		cp.Items = append(cp.Items, it)
	}
	return &cp
}

func (f *fakeCartRepo) GetByID(cartID string) (*entity.Cart, error) {
	cart, ok := f.carts[cartID]
	if !ok {
		return nil, nil
	}
	return f.hydrate(cart), nil
}

func (f *fakeCartRepo) GetByUserID(userID string) (*entity.Cart, error) {
	for _, cart := range f.carts {
		if cart.UserID == userID {
			return f.hydrate(cart), nil
		}
	}
	return nil, nil
}

func (f *fakeCartRepo) GetItem(itemID string) (*entity.CartItem, error) {
	it, ok := f.items[itemID]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (f *fakeCartRepo) Create(cart *entity.Cart) error {
	cp := *cart
	cp.Items = nil
	f.carts[cart.ID] = &cp
	return nil
}

func (f *fakeCartRepo) CreateItem(item *entity.CartItem) error {
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeCartRepo) UpdateItem(item *entity.CartItem) error {
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeCartRepo) DeleteItem(itemID string) error {
	delete(f.items, itemID)
	return nil
}

func (f *fakeCartRepo) Clear(userID string) error {
	for _, cart := range f.carts {
		if cart.UserID != userID {
			continue
		}
		for id, it := range f.items {
			if it.CartID == cart.ID {
				delete(f.items, id)
			}
		}
	}
	return nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
	items  map[string]*entity.OrderItem
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.Order{}, items: map[string]*entity.OrderItem{}}
}

func (f *fakeOrderRepo) Create(order *entity.Order) error {
	cp := *order
	cp.Items = nil
	f.orders[order.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) CreateItem(item *entity.OrderItem) error {
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *order
	var ids []string
	for itemID, it := range f.items {
		if it.OrderID == id {
			ids = append(ids, itemID)
		}
	}
	sort.Strings(ids)
	for _, itemID := range ids {
		cp.Items = append(cp.Items, *f.items[itemID])
	}
	return &cp, nil
}

func (f *fakeOrderRepo) ListByUser(userID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for id, o := range f.orders {
		if o.UserID == userID {
			full, _ := f.GetByID(id)
			out = append(out, full)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListAll(limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for id := range f.orders {
		full, _ := f.GetByID(id)
		out = append(out, full)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeOrderRepo) UpdateEstado(id, estado string) error {
	if o, ok := f.orders[id]; ok {
		o.Estado = estado
	}
	return nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByCorreo(correo string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Correo == correo {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

// fakeTx ejecuta el callback con los mismos fakes, sin transacción real.
type fakeTx struct {
	cartRepo    repository.CartRepository
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

func (f *fakeTx) Run(_ context.Context, fn func(
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(f.cartRepo, f.orderRepo, f.productRepo)
}

// fakeReceipts generador de comprobantes trivial.
type fakeReceipts struct{}

func (fakeReceipts) GenerateReceipt(_ context.Context, _ *entity.Order, _ *entity.User) ([]byte, error) {
	return []byte("%PDF-1.7 comprobante"), nil
}
