package entity

import "time"

// Tipos de usuario válidos.
const (
	TipoCliente = "cliente"
	TipoAdmin   = "admin"
)

// User representa a una persona registrada en la tienda.
// El registro normal y el auto-registro de la portada crean el mismo tipo de fila;
// solo el admin del dashboard tiene Tipo = admin.
type User struct {
	ID           string
	Nombres      string
	Apellidos    string
	Correo       string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	NroDocumento string
	Telefono     string
	Tipo         string // cliente, admin
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
