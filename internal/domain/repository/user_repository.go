package repository

import "github.com/ferdcas/tienda-romantica/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
// Los Get devuelven (nil, nil) cuando no existe la fila.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByCorreo(correo string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
}
