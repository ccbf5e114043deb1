package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalog-api/internal/application/dto"
	"github.com/tu-usuario/catalog-api/internal/application/usecase"
)

// SkuHandler maneja las peticiones HTTP para SKUs, siempre anidadas bajo
// su producto dueño.
type SkuHandler struct {
	uc *usecase.SkuUseCase
}

// NewSkuHandler construye el handler.
func NewSkuHandler(uc *usecase.SkuUseCase) *SkuHandler {
	return &SkuHandler{uc: uc}
}

// ListByProduct godoc
// @Summary      Listar SKUs de un producto
// @Tags         skus
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.APIResponse{data=[]dto.SkuResponse}
// @Failure      404  {object}  dto.APIResponse
// @Router       /products/{productId}/skus [get]
func (h *SkuHandler) ListByProduct(c *fiber.Ctx) error {
	out, err := h.uc.ListByProduct(c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetByID godoc
// @Summary      Obtener SKU restringido a su producto
// @Tags         skus
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Param        skuId      path  string  true  "ID del SKU"
// @Success      200  {object}  dto.APIResponse{data=dto.SkuResponse}
// @Failure      404  {object}  dto.APIResponse
// @Router       /products/{productId}/skus/{skuId} [get]
func (h *SkuHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("productId"), c.Params("skuId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Create godoc
// @Summary      Crear SKU bajo un producto existente
// @Tags         skus
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Param        body       body  dto.CreateSkuRequest  true  "Datos del SKU"
// @Success      201  {object}  dto.APIResponse{data=dto.SkuResponse}
// @Failure      400  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Failure      409  {object}  dto.APIResponse
// @Router       /products/{productId}/skus [post]
func (h *SkuHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSkuRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	if msg := checkStruct(in); msg != "" {
		return badRequest(c, msg)
	}
	if !dto.ValidAmount(in.Price) {
		return badRequest(c, "price must be positive with at most 8 integer digits and 2 decimal places")
	}
	out, err := h.uc.Create(c.Params("productId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMsg("SKU created successfully", out))
}

// Update godoc
// @Summary      Actualizar SKU (parcial)
// @Tags         skus
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Param        skuId      path  string  true  "ID del SKU"
// @Param        body       body  dto.UpdateSkuRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.APIResponse{data=dto.SkuResponse}
// @Failure      400  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Failure      409  {object}  dto.APIResponse
// @Router       /products/{productId}/skus/{skuId} [put]
func (h *SkuHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSkuRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	if msg := checkStruct(in); msg != "" {
		return badRequest(c, msg)
	}
	if in.Price != nil && !dto.ValidAmount(*in.Price) {
		return badRequest(c, "price must be positive with at most 8 integer digits and 2 decimal places")
	}
	out, err := h.uc.Update(c.Params("productId"), c.Params("skuId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMsg("SKU updated successfully", out))
}

// Delete godoc
// @Summary      Eliminar SKU restringido a su producto
// @Tags         skus
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Param        skuId      path  string  true  "ID del SKU"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /products/{productId}/skus/{skuId} [delete]
func (h *SkuHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("productId"), c.Params("skuId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMsg("SKU deleted successfully", nil))
}
