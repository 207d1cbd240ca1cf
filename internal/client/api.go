package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ferdcas/tienda-romantica/internal/application/dto"
)

// APIError error de dominio: el servidor respondió con success:false.
// Se distingue del error de transporte (red caída, timeout) porque la UI los
// muestra distinto: el de dominio trae un mensaje para el usuario.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("el servidor respondió %d", e.Status)
}

// API cliente HTTP del backend de la tienda. Todas las respuestas vienen en
// el sobre {success, data, message}; el éxito se decide por el sobre, no por
// el status HTTP. No hay reintentos implícitos.
type API struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger

	mu    sync.RWMutex
	token string
}

// NewAPI construye el cliente contra baseURL (sin slash final).
func NewAPI(baseURL string, log zerolog.Logger) *API {
	return &API{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		log:     log,
	}
}

// SetToken fija el Bearer token para las llamadas siguientes.
func (a *API) SetToken(token string) {
	a.mu.Lock()
	a.token = token
	a.mu.Unlock()
}

// ClearToken borra el token (logout).
func (a *API) ClearToken() { a.SetToken("") }

func (a *API) bearer() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

// envelope sobre crudo; Data se decodifica después según la operación.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// do ejecuta la petición y devuelve el sobre ya validado.
func (a *API) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if tok := a.bearer(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transporte: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("transporte: %w", err)
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("respuesta no es el sobre esperado: %w", err)
	}
	if !env.Success {
		a.log.Debug().Str("path", path).Int("status", resp.StatusCode).
			Str("message", env.Message).Msg("respuesta de dominio fallida")
		return nil, &APIError{Status: resp.StatusCode, Message: env.Message}
	}
	return &env, nil
}

// call ejecuta la petición y decodifica data al tipo pedido.
func call[T any](ctx context.Context, a *API, method, path string, body any) (T, error) {
	var out T
	env, err := a.do(ctx, method, path, body)
	if err != nil {
		return out, err
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return out, nil
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, fmt.Errorf("decodificar data: %w", err)
	}
	return out, nil
}

// ── Auth ──────────────────────────────────────────────────────────────────────

// Login inicia sesión y devuelve usuario + token. No fija el token: eso es
// responsabilidad de la sesión.
func (a *API) Login(ctx context.Context, correo, contrasena string) (*dto.AuthResponse, error) {
	return call[*dto.AuthResponse](ctx, a, http.MethodPost, "/auth/login",
		dto.LoginRequest{Correo: correo, Contrasena: contrasena})
}

// Register registra un usuario (el auto-registro usa esta misma llamada).
func (a *API) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	return call[*dto.AuthResponse](ctx, a, http.MethodPost, "/auth/register", in)
}

// Verify valida el token actual y devuelve el usuario.
func (a *API) Verify(ctx context.Context) (*dto.UserResponse, error) {
	return call[*dto.UserResponse](ctx, a, http.MethodGet, "/auth/verify", nil)
}

// ── Catálogo ──────────────────────────────────────────────────────────────────

// GetProducts devuelve el catálogo activo.
func (a *API) GetProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	return call[[]dto.ProductResponse](ctx, a, http.MethodGet, "/products", nil)
}

// SearchProducts busca en el catálogo.
func (a *API) SearchProducts(ctx context.Context, q string) ([]dto.ProductResponse, error) {
	return call[[]dto.ProductResponse](ctx, a, http.MethodGet, "/products/search?q="+url.QueryEscape(q), nil)
}

// GetProduct devuelve un producto por ID.
func (a *API) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	return call[*dto.ProductResponse](ctx, a, http.MethodGet, "/products/"+id, nil)
}

// ── Carrito del servidor ──────────────────────────────────────────────────────

// GetCart devuelve el carrito del usuario, o nil si todavía no existe.
func (a *API) GetCart(ctx context.Context, userID string) (*dto.CartResponse, error) {
	return call[*dto.CartResponse](ctx, a, http.MethodGet, "/cart/"+userID, nil)
}

// AddToCart agrega un producto; responde con el carrito entero actualizado.
func (a *API) AddToCart(ctx context.Context, in dto.AddToCartRequest) (*dto.CartResponse, error) {
	return call[*dto.CartResponse](ctx, a, http.MethodPost, "/cart/add", in)
}

// UpdateCartItem cambia la cantidad de una línea.
func (a *API) UpdateCartItem(ctx context.Context, itemID string, quantity int) (*dto.CartResponse, error) {
	return call[*dto.CartResponse](ctx, a, http.MethodPut, "/cart/item/"+itemID,
		dto.UpdateCartItemRequest{Quantity: quantity})
}

// RemoveFromCart elimina una línea.
func (a *API) RemoveFromCart(ctx context.Context, itemID string) (*dto.CartResponse, error) {
	return call[*dto.CartResponse](ctx, a, http.MethodDelete, "/cart/item/"+itemID, nil)
}

// ClearCart vacía el carrito del usuario.
func (a *API) ClearCart(ctx context.Context, userID string) (*dto.CartResponse, error) {
	return call[*dto.CartResponse](ctx, a, http.MethodDelete, "/cart/clear/"+userID, nil)
}

// MigrateCart replica el carrito local completo en el servidor en una sola
// petición; el servidor fusiona por producto, así que reintentar no duplica.
func (a *API) MigrateCart(ctx context.Context, in dto.MigrateCartRequest) (*dto.CartResponse, error) {
	return call[*dto.CartResponse](ctx, a, http.MethodPost, "/cart/migrate", in)
}

// ── Órdenes ───────────────────────────────────────────────────────────────────

// Checkout convierte el carrito del servidor en una orden.
func (a *API) Checkout(ctx context.Context, userID, metodoPago string) (*dto.OrderResponse, error) {
	return call[*dto.OrderResponse](ctx, a, http.MethodPost, "/order/checkout",
		dto.CheckoutRequest{UserID: userID, MetodoPago: metodoPago})
}

// MyOrders devuelve las órdenes del usuario.
func (a *API) MyOrders(ctx context.Context, userID string) ([]dto.OrderResponse, error) {
	return call[[]dto.OrderResponse](ctx, a, http.MethodGet, "/order/user/"+userID, nil)
}

// ── Cuestionario ──────────────────────────────────────────────────────────────

// QuestionnaireCount devuelve cuántas veces el usuario completó el cuestionario.
func (a *API) QuestionnaireCount(ctx context.Context, userID string) (int, error) {
	out, err := call[dto.QuestionnaireCountResponse](ctx, a, http.MethodGet,
		"/questionnaire/user/"+userID+"/count", nil)
	if err != nil {
		return 0, err
	}
	return out.QuestionnaireCount, nil
}

// SubmitQuestionnaire registra un envío del cuestionario.
func (a *API) SubmitQuestionnaire(ctx context.Context, in dto.SubmitQuestionnaireRequest) (*dto.QuestionnaireResponseDTO, error) {
	return call[*dto.QuestionnaireResponseDTO](ctx, a, http.MethodPost, "/questionnaire/submit", in)
}
