package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalog-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	SkuUC      *usecase.SkuUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	categories := app.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	products := app.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// SKUs siempre anidados bajo su producto.
	skus := products.Group("/:productId/skus")
	skuHandler := NewSkuHandler(deps.SkuUC)
	skus.Get("/", skuHandler.ListByProduct)
	skus.Post("/", skuHandler.Create)
	skus.Get("/:skuId", skuHandler.GetByID)
	skus.Put("/:skuId", skuHandler.Update)
	skus.Delete("/:skuId", skuHandler.Delete)
}
