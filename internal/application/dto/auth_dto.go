package dto

import (
	"time"

	"github.com/ferdcas/tienda-romantica/internal/domain/entity"
)

// RegisterRequest cuerpo de POST /auth/register.
// Los nombres de campo vienen del formulario de registro de la tienda.
type RegisterRequest struct {
	Nombres      string `json:"nombres"`
	Apellidos    string `json:"apellidos"`
	Correo       string `json:"correo"`
	Contrasena   string `json:"contrasena"`
	NroDocumento string `json:"nroDocumento"`
	Telefono     string `json:"telefono"`
	Tipo         string `json:"tipo"` // opcional; por defecto cliente
}

// LoginRequest cuerpo de POST /auth/login.
type LoginRequest struct {
	Correo     string `json:"correo"`
	Contrasena string `json:"contrasena"`
}

// UserResponse proyección pública de un usuario (sin hash).
type UserResponse struct {
	ID           string    `json:"id"`
	Nombres      string    `json:"nombres"`
	Apellidos    string    `json:"apellidos"`
	Correo       string    `json:"correo"`
	NroDocumento string    `json:"nroDocumento,omitempty"`
	Telefono     string    `json:"telefono,omitempty"`
	Tipo         string    `json:"tipo"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AuthResponse respuesta de login y register: usuario + token de sesión.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// UpdateProfileRequest cuerpo de PUT /user/:id.
type UpdateProfileRequest struct {
	Nombres      string `json:"nombres"`
	Apellidos    string `json:"apellidos"`
	Telefono     string `json:"telefono"`
	NroDocumento string `json:"nroDocumento"`
}

// ToUserResponse convierte la entidad a su proyección pública.
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Nombres:      u.Nombres,
		Apellidos:    u.Apellidos,
		Correo:       u.Correo,
		NroDocumento: u.NroDocumento,
		Telefono:     u.Telefono,
		Tipo:         u.Tipo,
		CreatedAt:    u.CreatedAt,
	}
}
