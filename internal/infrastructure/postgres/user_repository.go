package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ferdcas/tienda-romantica/internal/domain"
	"github.com/ferdcas/tienda-romantica/internal/domain/entity"
	"github.com/ferdcas/tienda-romantica/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, nombres, apellidos, correo, password_hash, nro_documento, telefono, tipo, created_at, updated_at`

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Nombres, user.Apellidos, user.Correo, user.PasswordHash,
		nullIfEmpty(user.NroDocumento), nullIfEmpty(user.Telefono), user.Tipo,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByCorreo obtiene un usuario por correo. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByCorreo(correo string) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE correo = $1 LIMIT 1`, correo)
}

func (r *UserRepo) getOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	var nroDocumento, telefono *string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Nombres, &u.Apellidos, &u.Correo, &u.PasswordHash,
		&nroDocumento, &telefono, &u.Tipo, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	u.NroDocumento = derefStr(nroDocumento)
	u.Telefono = derefStr(telefono)
	return &u, nil
}

// Update actualiza los datos de perfil de un usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users
		SET nombres = $2, apellidos = $3, nro_documento = $4, telefono = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Nombres, user.Apellidos,
		nullIfEmpty(user.NroDocumento), nullIfEmpty(user.Telefono), user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List lista usuarios con paginación.
func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		var nroDocumento, telefono *string
		if err := rows.Scan(&u.ID, &u.Nombres, &u.Apellidos, &u.Correo, &u.PasswordHash,
			&nroDocumento, &telefono, &u.Tipo, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.NroDocumento = derefStr(nroDocumento)
		u.Telefono = derefStr(telefono)
		list = append(list, &u)
	}
	return list, rows.Err()
}

func derefStr(p *string) string {
	if p != nil {
		return *p
	}
	return ""
}
