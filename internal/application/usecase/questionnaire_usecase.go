package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/ferdcas/tienda-romantica/internal/application/dto"
	"github.com/ferdcas/tienda-romantica/internal/domain"
	"github.com/ferdcas/tienda-romantica/internal/domain/entity"
	"github.com/ferdcas/tienda-romantica/internal/domain/repository"
)

// QuestionnaireUseCase casos de uso del cuestionario personal que abre la tienda.
type QuestionnaireUseCase struct {
	repo repository.QuestionnaireRepository
}

// NewQuestionnaireUseCase construye el caso de uso del cuestionario.
func NewQuestionnaireUseCase(repo repository.QuestionnaireRepository) *QuestionnaireUseCase {
	return &QuestionnaireUseCase{repo: repo}
}

// Submit registra un envío. UserID puede venir vacío (envío anónimo); esos
// envíos no cuentan para la compuerta de ningún usuario. El envío nunca se
// actualiza después.
func (uc *QuestionnaireUseCase) Submit(in dto.SubmitQuestionnaireRequest, ip string) (*dto.QuestionnaireResponseDTO, error) {
	if len(in.Responses) == 0 {
		return nil, domain.ErrInvalidInput
	}
	resp := &entity.QuestionnaireResponse{
		ID:          uuid.New().String(),
		UserID:      in.UserID,
		Respuestas:  in.Responses,
		CompletedAt: time.Now(),
		IPAddress:   ip,
	}
	if err := uc.repo.Create(resp); err != nil {
		return nil, err
	}
	out := dto.ToQuestionnaireResponse(resp)
	return &out, nil
}

// CountByUser devuelve cuántas veces el usuario completó el cuestionario.
// Este número es la fuente de verdad de la compuerta de la tienda.
func (uc *QuestionnaireUseCase) CountByUser(userID string) (*dto.QuestionnaireCountResponse, error) {
	count, err := uc.repo.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	return &dto.QuestionnaireCountResponse{QuestionnaireCount: count}, nil
}

// ListByUser devuelve los envíos de un usuario.
func (uc *QuestionnaireUseCase) ListByUser(userID string) ([]dto.QuestionnaireResponseDTO, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return dto.ToQuestionnaireResponses(list), nil
}

// ListAll devuelve todos los envíos (dashboard admin).
func (uc *QuestionnaireUseCase) ListAll(page dto.PageRequest) ([]dto.QuestionnaireResponseDTO, error) {
	page.DefaultPage()
	list, err := uc.repo.ListAll(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return dto.ToQuestionnaireResponses(list), nil
}

// Delete borra un envío (solo admin).
func (uc *QuestionnaireUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
