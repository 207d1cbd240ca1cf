package dto

import (
	"encoding/json"
	"time"

	"github.com/ferdcas/tienda-romantica/internal/domain/entity"
)

// SubmitQuestionnaireRequest cuerpo de POST /questionnaire/submit.
// UserID es opcional: la UI permite responder antes de registrarse.
type SubmitQuestionnaireRequest struct {
	UserID    string          `json:"userId,omitempty"`
	Responses json.RawMessage `json:"responses"`
}

// QuestionnaireCountResponse respuesta de GET /questionnaire/user/:id/count.
// Este conteo es el que decide si la tienda se abre o se redirige al cuestionario.
type QuestionnaireCountResponse struct {
	QuestionnaireCount int `json:"questionnaireCount"`
}

// QuestionnaireResponseDTO proyección de un envío del cuestionario.
type QuestionnaireResponseDTO struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId,omitempty"`
	Responses   json.RawMessage `json:"responses"`
	CompletedAt time.Time       `json:"completedAt"`
	IPAddress   string          `json:"ipAddress,omitempty"`
}

// ToQuestionnaireResponse convierte la entidad a DTO.
func ToQuestionnaireResponse(q *entity.QuestionnaireResponse) QuestionnaireResponseDTO {
	return QuestionnaireResponseDTO{
		ID:          q.ID,
		UserID:      q.UserID,
		Responses:   q.Respuestas,
		CompletedAt: q.CompletedAt,
		IPAddress:   q.IPAddress,
	}
}

// ToQuestionnaireResponses convierte un listado.
func ToQuestionnaireResponses(list []*entity.QuestionnaireResponse) []QuestionnaireResponseDTO {
	out := make([]QuestionnaireResponseDTO, 0, len(list))
	for _, q := range list {
		out = append(out, ToQuestionnaireResponse(q))
	}
	return out
}
