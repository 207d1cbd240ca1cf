package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ferdcas/tienda-romantica/internal/application/auth"
	"github.com/ferdcas/tienda-romantica/internal/application/usecase"
	"github.com/ferdcas/tienda-romantica/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	ProductUC       *usecase.ProductUseCase
	CartUC          *usecase.CartUseCase
	OrderUC         *usecase.OrderUseCase
	QuestionnaireUC *usecase.QuestionnaireUseCase
	UserRepo        repository.UserRepository
	JWTSecret       string
}

// Router registra las rutas de la API. Las rutas no llevan prefijo /api:
// el cliente las consume tal cual desde la raíz.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Auth (protegido)
	authProtected := authGroup.Group("/", AuthMiddleware(deps.JWTSecret))
	authProtected.Get("/verify", authHandler.Verify)
	authProtected.Get("/profile", authHandler.Profile)
	authProtected.Put("/profile", authHandler.UpdateProfile)

	// Catálogo (público). /search y /categoria van antes de /:id.
	products := app.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/categoria/:categoria", productHandler.ListByCategoria)
	products.Get("/:id", productHandler.GetByID)

	// Carrito (protegido)
	cart := app.Group("/cart", AuthMiddleware(deps.JWTSecret))
	cartHandler := NewCartHandler(deps.CartUC)
	cart.Post("/add", cartHandler.Add)
	cart.Post("/migrate", cartHandler.Migrate)
	cart.Put("/item/:id", cartHandler.UpdateItem)
	cart.Delete("/item/:id", cartHandler.RemoveItem)
	cart.Delete("/clear/:userId", cartHandler.Clear)
	cart.Get("/:userId", cartHandler.Get)

	// Órdenes (protegido)
	orderHandler := NewOrderHandler(deps.OrderUC)
	order := app.Group("/order", AuthMiddleware(deps.JWTSecret))
	order.Post("/checkout", orderHandler.Checkout)
	order.Get("/estados", orderHandler.Estados)
	order.Get("/user/:userId", orderHandler.ListByUser)
	order.Get("/:id/receipt", orderHandler.Receipt)
	order.Get("/:id", orderHandler.GetByID)
	order.Put("/:id/status", RequireAdmin(), orderHandler.UpdateStatus)

	// Dashboard admin
	admin := app.Group("/", AuthMiddleware(deps.JWTSecret), RequireAdmin())
	admin.Get("/orders", orderHandler.ListAll)
	userHandler := NewUserHandler(deps.UserRepo)
	admin.Get("/users", userHandler.List)

	users := app.Group("/users", AuthMiddleware(deps.JWTSecret))
	users.Get("/email/:correo", RequireAdmin(), userHandler.GetByCorreo)
	users.Get("/:id", userHandler.GetByID)

	// Cuestionario: submit es público (la UI permite responder antes de
	// registrarse); el resto requiere token.
	questionnaireHandler := NewQuestionnaireHandler(deps.QuestionnaireUC)
	questionnaire := app.Group("/questionnaire")
	questionnaire.Post("/submit", questionnaireHandler.Submit)
	qProtected := questionnaire.Group("/", AuthMiddleware(deps.JWTSecret))
	qProtected.Get("/user/:id/count", questionnaireHandler.Count)
	qProtected.Get("/user/:id", questionnaireHandler.ListByUser)
	qProtected.Get("/responses", RequireAdmin(), questionnaireHandler.ListAll)
	qProtected.Delete("/:id", RequireAdmin(), questionnaireHandler.Delete)
}
