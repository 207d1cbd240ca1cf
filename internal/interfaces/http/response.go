package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ferdcas/tienda-romantica/internal/application/dto"
	"github.com/ferdcas/tienda-romantica/internal/domain"
)

// Todas las respuestas de la API usan el mismo sobre {success, data, message}.
// El cliente decide por el sobre, no por el status HTTP.

// ok responde 200 con data.
func ok(c *fiber.Ctx, data any) error {
	return c.JSON(dto.Envelope{Success: true, Data: data})
}

// okMsg responde 200 con data y mensaje.
func okMsg(c *fiber.Ctx, data any, message string) error {
	return c.JSON(dto.Envelope{Success: true, Data: data, Message: message})
}

// created responde 201 con data.
func created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(dto.Envelope{Success: true, Data: data})
}

// fail responde con success:false y el mensaje de error.
func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.Envelope{Success: false, Message: message})
}

// failErr mapea los errores de dominio a status + mensaje dentro del sobre.
func failErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, "datos inválidos")
	case errors.Is(err, domain.ErrInvalidMetodoPago):
		return fail(c, fiber.StatusBadRequest, "método de pago inválido")
	case errors.Is(err, domain.ErrInvalidEstado):
		return fail(c, fiber.StatusBadRequest, "estado de orden inválido")
	case errors.Is(err, domain.ErrCartEmpty):
		return fail(c, fiber.StatusBadRequest, "el carrito está vacío")
	case errors.Is(err, domain.ErrProductInactive):
		return fail(c, fiber.StatusBadRequest, "el producto no está disponible")
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fail(c, fiber.StatusNotFound, "no encontrado")
	case errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, "credenciales inválidas")
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, "acceso denegado")
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fail(c, fiber.StatusConflict, "el correo ya está registrado")
	default:
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
}
