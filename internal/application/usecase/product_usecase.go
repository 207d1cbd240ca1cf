package usecase

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ferdcas/tienda-romantica/internal/application/dto"
	"github.com/ferdcas/tienda-romantica/internal/domain"
	"github.com/ferdcas/tienda-romantica/internal/domain/entity"
	"github.com/ferdcas/tienda-romantica/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo de regalos.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso de productos.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// List devuelve el catálogo activo.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.productRepo.ListActive()
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponses(list), nil
}

// GetByID devuelve un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToProductResponse(p)
	return &resp, nil
}

// ListByCategoria devuelve los productos activos de una categoría.
func (uc *ProductUseCase) ListByCategoria(categoria string) ([]dto.ProductResponse, error) {
	list, err := uc.productRepo.ListByCategoria(categoria)
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponses(list), nil
}

// Search busca en nombre, descripción y categoría sin distinguir mayúsculas
// ni tildes: "corazón" encuentra "Corazon" y viceversa. El catálogo es
// pequeño, así que el filtrado se hace en memoria sobre los activos.
func (uc *ProductUseCase) Search(q string) ([]dto.ProductResponse, error) {
	list, err := uc.productRepo.ListActive()
	if err != nil {
		return nil, err
	}
	q = normalizar(q)
	if q == "" {
		return dto.ToProductResponses(list), nil
	}
	var out []*entity.Product
	for _, p := range list {
		if strings.Contains(normalizar(p.Nombre), q) ||
			strings.Contains(normalizar(p.Descripcion), q) ||
			strings.Contains(normalizar(p.Categoria), q) {
			out = append(out, p)
		}
	}
	return dto.ToProductResponses(out), nil
}

// Create registra un producto nuevo en el catálogo (seed y admin).
func (uc *ProductUseCase) Create(p *entity.Product) (*dto.ProductResponse, error) {
	if p.Nombre == "" || p.Precio.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now()
	p.Activo = true
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := uc.productRepo.Create(p); err != nil {
		return nil, err
	}
	resp := dto.ToProductResponse(p)
	return &resp, nil
}

// normalizar pasa a minúsculas y elimina marcas diacríticas (NFD + remoción
// de la categoría Mn + NFC). El transformer no es reutilizable entre
// goroutines, por eso se construye en cada llamada.
func normalizar(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return strings.ToLower(strings.TrimSpace(out))
}
