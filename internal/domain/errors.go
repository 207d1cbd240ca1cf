package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el correo ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrCartEmpty          = errors.New("el carrito está vacío")
	ErrProductInactive    = errors.New("el producto no está disponible")
	ErrInvalidEstado      = errors.New("estado de orden inválido")
	ErrInvalidMetodoPago  = errors.New("método de pago inválido")
)
