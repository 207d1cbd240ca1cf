package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ferdcas/tienda-romantica/internal/domain/entity"
)

// ProductResponse proyección de un producto del catálogo.
type ProductResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Categoria   string          `json:"categoria"`
	ImagenURL   string          `json:"imagenUrl,omitempty"`
	Activo      bool            `json:"activo"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToProductResponse convierte la entidad a DTO.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Precio:      p.Precio,
		Categoria:   p.Categoria,
		ImagenURL:   p.ImagenURL,
		Activo:      p.Activo,
		CreatedAt:   p.CreatedAt,
	}
}

// ToProductResponses convierte un listado.
func ToProductResponses(list []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToProductResponse(p))
	}
	return out
}
