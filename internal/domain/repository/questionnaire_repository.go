package repository

import "github.com/ferdcas/tienda-romantica/internal/domain/entity"

// QuestionnaireRepository puerto de persistencia para envíos del cuestionario.
type QuestionnaireRepository interface {
	Create(resp *entity.QuestionnaireResponse) error
	CountByUser(userID string) (int, error)
	ListByUser(userID string) ([]*entity.QuestionnaireResponse, error)
	ListAll(limit, offset int) ([]*entity.QuestionnaireResponse, error)
	Delete(id string) error
}
