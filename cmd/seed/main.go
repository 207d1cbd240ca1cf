// seed puebla el catálogo de regalos de la tienda directamente en PostgreSQL.
// Es idempotente: si un producto con el mismo nombre ya existe, se salta.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ferdcas/tienda-romantica/internal/application/usecase"
	"github.com/ferdcas/tienda-romantica/internal/domain/entity"
	"github.com/ferdcas/tienda-romantica/internal/infrastructure/postgres"
	"github.com/ferdcas/tienda-romantica/pkg/config"
	"github.com/ferdcas/tienda-romantica/pkg/logger"
)

type seedProduct struct {
	nombre      string
	descripcion string
	precio      string
	categoria   string
	imagenURL   string
}

// Catálogo inicial. Los precios son simbólicos: la tienda se paga con besos.
var catalogo = []seedProduct{
	{"Ramo de rosas rojas", "Doce rosas rojas recién cortadas, con una nota escrita a mano.", "45000", "flores", "/img/rosas.jpg"},
	{"Girasoles del amanecer", "Cinco girasoles enormes para empezar el día con luz.", "30000", "flores", "/img/girasoles.jpg"},
	{"Tulipanes importados", "Ramo de tulipanes de colores, duran más de una semana.", "60000", "flores", "/img/tulipanes.jpg"},
	{"Oso de peluche gigante", "Un metro de abrazo permanente, suave y paciente.", "80000", "peluches", "/img/oso.jpg"},
	{"Peluche de capibara", "El roedor más tranquilo del mundo, versión abrazable.", "35000", "peluches", "/img/capibara.jpg"},
	{"Caja de chocolates artesanales", "Dieciséis bombones rellenos, cada uno distinto.", "40000", "dulces", "/img/chocolates.jpg"},
	{"Fresas con chocolate", "Docena de fresas bañadas en chocolate oscuro.", "25000", "dulces", "/img/fresas.jpg"},
	{"Carta escrita a mano", "Una página entera de razones, tinta y sin borrador.", "5000", "detalles", "/img/carta.jpg"},
	{"Álbum de fotos de los dos", "Treinta páginas para llenar de recuerdos juntos.", "50000", "detalles", "/img/album.jpg"},
	{"Playlist dedicada", "Dos horas de canciones que explican lo que cuesta decir.", "1000", "detalles", "/img/playlist.jpg"},
	{"Cena a la luz de las velas", "Cena para dos preparada en casa, menú sorpresa.", "90000", "experiencias", "/img/cena.jpg"},
	{"Picnic en el parque", "Canasta, mantel, termo de café y toda una tarde.", "55000", "experiencias", "/img/picnic.jpg"},
	{"Noche de películas", "Maratón con cobijas, crispetas y derecho a elegir la película.", "15000", "experiencias", "/img/peliculas.jpg"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	productUC := usecase.NewProductUseCase(productRepo)

	existing, err := productRepo.ListActive()
	if err != nil {
		log.Fatal().Err(err).Msg("listar productos existentes")
	}
	byNombre := make(map[string]bool, len(existing))
	for _, p := range existing {
		byNombre[p.Nombre] = true
	}

	creados := 0
	for _, sp := range catalogo {
		if byNombre[sp.nombre] {
			continue
		}
		precio, err := decimal.NewFromString(sp.precio)
		if err != nil {
			log.Fatal().Err(err).Str("producto", sp.nombre).Msg("precio inválido en el catálogo semilla")
		}
		_, err = productUC.Create(&entity.Product{
			Nombre:      sp.nombre,
			Descripcion: sp.descripcion,
			Precio:      precio,
			Categoria:   sp.categoria,
			ImagenURL:   sp.imagenURL,
		})
		if err != nil {
			log.Fatal().Err(err).Str("producto", sp.nombre).Msg("crear producto")
		}
		creados++
	}

	log.Info().Int("creados", creados).Int("existentes", len(existing)).Msg("catálogo sembrado")
}
