package http

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalog-api/internal/application/dto"
	"github.com/tu-usuario/catalog-api/internal/domain"
)

// validate instancia compartida del validador de structs (thread-safe).
var validate = validator.New()

// checkStruct corre el pase de validación sobre un request ya parseado y
// devuelve un mensaje apto para el cliente, o "" si es válido.
func checkStruct(in any) string {
	err := validate.Struct(in)
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("validation failed on field '%s' (rule: %s)", fe.Field(), fe.Tag())
	}
	return "invalid request"
}

// respondError traduce la taxonomía de errores del core a códigos HTTP:
// NotFound -> 404, Duplicate -> 409, InvalidOperation/InvalidInput -> 400.
// Cualquier otro error es de infraestructura y no filtra detalles.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrInvalidOperation), errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("internal server error"))
	}
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(message))
}
