package entity

import (
	"encoding/json"
	"time"
)

// QuestionnaireResponse es un envío del cuestionario personal que abre la tienda.
// Respuestas es un mapa pregunta → respuesta serializado tal cual llegó; nunca
// se actualiza después de creado, solo un admin puede borrarlo.
type QuestionnaireResponse struct {
	ID          string
	UserID      string // vacío para envíos anónimos
	Respuestas  json.RawMessage
	CompletedAt time.Time
	IPAddress   string
}
