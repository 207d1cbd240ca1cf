package client

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ferdcas/tienda-romantica/internal/application/dto"
)

// Session dueña de la identidad actual: usuario + token de sesión.
// Persiste bajo KeyUser y KeyToken y se restaura al construirse; un estado
// guardado inválido se limpia en silencio, nunca es fatal.
type Session struct {
	store Storage
	api   *API
	log   zerolog.Logger

	mu   sync.RWMutex
	user *dto.UserResponse
}

// NewSession construye la sesión y restaura la identidad persistida si existe.
func NewSession(store Storage, api *API, log zerolog.Logger) *Session {
	s := &Session{store: store, api: api, log: log}
	s.restore()
	return s
}

// restore carga usuario y token del almacenamiento. Un JSON corrupto limpia
// la sesión guardada y deja al cliente como anónimo.
func (s *Session) restore() {
	raw, ok := s.store.Get(KeyUser)
	if !ok {
		return
	}
	var user dto.UserResponse
	if err := json.Unmarshal([]byte(raw), &user); err != nil || user.ID == "" {
		s.log.Warn().Err(err).Msg("sesión guardada corrupta; se limpia")
		s.clearPersisted()
		return
	}
	token, ok := s.store.Get(KeyToken)
	if !ok || token == "" {
		s.clearPersisted()
		return
	}
	s.user = &user
	s.api.SetToken(token)
}

// Login inicia sesión contra el backend y persiste la identidad.
func (s *Session) Login(ctx context.Context, correo, contrasena string) (*dto.UserResponse, error) {
	out, err := s.api.Login(ctx, correo, contrasena)
	if err != nil {
		return nil, err
	}
	return s.adopt(out)
}

// Register registra al usuario y queda autenticado de inmediato (el backend
// emite el token en el mismo registro; el auto-registro depende de esto).
func (s *Session) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	out, err := s.api.Register(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.adopt(out)
}

// adopt fija la identidad en memoria, en el API y en el almacenamiento.
func (s *Session) adopt(out *dto.AuthResponse) (*dto.UserResponse, error) {
	raw, err := json.Marshal(out.User)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(KeyUser, string(raw)); err != nil {
		return nil, err
	}
	if err := s.store.Set(KeyToken, out.Token); err != nil {
		return nil, err
	}
	s.mu.Lock()
	user := out.User
	s.user = &user
	s.mu.Unlock()
	s.api.SetToken(out.Token)
	s.log.Info().Str("user_id", out.User.ID).Msg("sesión iniciada")
	return &user, nil
}

// Logout limpia la identidad en memoria y la persistida.
func (s *Session) Logout() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	s.api.ClearToken()
	s.clearPersisted()
	s.log.Info().Msg("sesión cerrada")
}

func (s *Session) clearPersisted() {
	_ = s.store.Delete(KeyUser)
	_ = s.store.Delete(KeyToken)
}

// User devuelve el usuario actual, o nil si el cliente es anónimo.
func (s *Session) User() *dto.UserResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// UserID devuelve el ID del usuario actual, o "" si es anónimo.
func (s *Session) UserID() string {
	if u := s.User(); u != nil {
		return u.ID
	}
	return ""
}

// Authenticated indica si hay una identidad activa.
func (s *Session) Authenticated() bool { return s.User() != nil }
