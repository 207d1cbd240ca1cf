package client

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ferdcas/tienda-romantica/internal/application/dto"
)

// Helpers compartidos por los tests del paquete: un backend falso que habla
// el sobre {success, data, message}.

func writeOK(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dto.Envelope{Success: true, Data: data})
}

func writeFail(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.Envelope{Success: false, Message: msg})
}

// authedSession deja una sesión restaurada como autenticada, sembrando el
// usuario y el token directamente en el almacenamiento.
func authedSession(t *testing.T, store Storage, api *API, userID string) *Session {
	t.Helper()
	raw, err := json.Marshal(dto.UserResponse{ID: userID, Nombres: "Fer", Correo: "fer@test.local", Tipo: "cliente"})
	if err != nil {
		t.Fatalf("marshal user: %v", err)
	}
	if err := store.Set(KeyUser, string(raw)); err != nil {
		t.Fatalf("sembrar usuario: %v", err)
	}
	if err := store.Set(KeyToken, "token-de-prueba"); err != nil {
		t.Fatalf("sembrar token: %v", err)
	}
	return NewSession(store, api, zerolog.Nop())
}
