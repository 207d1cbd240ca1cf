package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ferdcas/tienda-romantica/internal/application/dto"
	"github.com/ferdcas/tienda-romantica/internal/domain"
	"github.com/ferdcas/tienda-romantica/internal/domain/entity"
	"github.com/ferdcas/tienda-romantica/internal/domain/repository"
	"github.com/ferdcas/tienda-romantica/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación y perfil: registro, login, verify.
// El auto-registro de la portada usa el mismo Register que el formulario completo.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea la contraseña con bcrypt, persiste y emite
// el token de sesión de inmediato para que el flujo de auto-registro no
// necesite un login aparte. Devuelve ErrEmailAlreadyExists si el correo ya existe.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	existing, _ := uc.userRepo.GetByCorreo(in.Correo)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	tipo := in.Tipo
	if tipo == "" {
		tipo = entity.TipoCliente
	}
	if tipo != entity.TipoCliente && tipo != entity.TipoAdmin {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Nombres:      in.Nombres,
		Apellidos:    in.Apellidos,
		Correo:       in.Correo,
		PasswordHash: string(hash),
		NroDocumento: in.NroDocumento,
		Telefono:     in.Telefono,
		Tipo:         tipo,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return uc.authResponse(user)
}

// Login verifica correo/contraseña, genera el token y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByCorreo(in.Correo)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Contrasena)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.authResponse(user)
}

// Verify devuelve el usuario asociado a un token ya validado por el middleware.
func (uc *AuthUseCase) Verify(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// GetProfile obtiene el perfil público de un usuario por ID.
func (uc *AuthUseCase) GetProfile(id string) (*dto.UserResponse, error) {
	return uc.Verify(id)
}

// UpdateProfile actualiza los datos editables del perfil. El correo, el tipo y
// la contraseña no se tocan por esta vía.
func (uc *AuthUseCase) UpdateProfile(id string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Nombres != "" {
		user.Nombres = in.Nombres
	}
	if in.Apellidos != "" {
		user.Apellidos = in.Apellidos
	}
	if in.Telefono != "" {
		user.Telefono = in.Telefono
	}
	if in.NroDocumento != "" {
		user.NroDocumento = in.NroDocumento
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (uc *AuthUseCase) authResponse(user *entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Tipo, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{User: dto.ToUserResponse(user), Token: token}, nil
}
