package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/delivery-api/internal/application/auth"
	"github.com/tu-usuario/delivery-api/internal/application/usecase"
	"github.com/tu-usuario/delivery-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	DeliveryUC *usecase.DeliveryUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Las rutas de /delivery requieren Bearer
// Token; las de escritura exigen además el rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)

	// Deliveries (protegido)
	deliveryHandler := NewDeliveryHandler(deps.DeliveryUC)
	deliveries := app.Group("/delivery", AuthMiddleware(deps.JWTSecret))
	deliveries.Get("/", deliveryHandler.List)
	deliveries.Get("/:id", deliveryHandler.GetByID)
	deliveries.Post("/", RequireRole(entity.RoleAdmin), deliveryHandler.BulkCreate)
	deliveries.Put("/:id", RequireRole(entity.RoleAdmin), deliveryHandler.Update)
	deliveries.Delete("/:id", RequireRole(entity.RoleAdmin), deliveryHandler.Delete)
}
