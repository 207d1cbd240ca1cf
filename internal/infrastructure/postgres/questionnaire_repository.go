package postgres

import (
	"context"
	"fmt"

	"github.com/ferdcas/tienda-romantica/internal/domain/entity"
	"github.com/ferdcas/tienda-romantica/internal/domain/repository"
)

var _ repository.QuestionnaireRepository = (*QuestionnaireRepo)(nil)

// QuestionnaireRepo implementación del puerto QuestionnaireRepository sobre PostgreSQL.
type QuestionnaireRepo struct {
	q Querier
}

// NewQuestionnaireRepository construye el adaptador de persistencia para el cuestionario.
func NewQuestionnaireRepository(q Querier) *QuestionnaireRepo {
	return &QuestionnaireRepo{q: q}
}

// Create persiste un envío del cuestionario.
func (r *QuestionnaireRepo) Create(resp *entity.QuestionnaireResponse) error {
	query := `
		INSERT INTO questionnaire_responses (id, user_id, respuestas, completed_at, ip_address)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		resp.ID, nullIfEmpty(resp.UserID), resp.Respuestas, resp.CompletedAt, nullIfEmpty(resp.IPAddress),
	)
	if err != nil {
		return fmt.Errorf("insert questionnaire response: %w", err)
	}
	return nil
}

// CountByUser cuenta los envíos de un usuario. Los envíos anónimos
// (user_id NULL) no cuentan para nadie.
func (r *QuestionnaireRepo) CountByUser(userID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM questionnaire_responses WHERE user_id = $1`, userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count questionnaire responses: %w", err)
	}
	return count, nil
}

// ListByUser lista los envíos de un usuario, recientes primero.
func (r *QuestionnaireRepo) ListByUser(userID string) ([]*entity.QuestionnaireResponse, error) {
	query := `
		SELECT id, COALESCE(user_id, ''), respuestas, completed_at, COALESCE(ip_address, '')
		FROM questionnaire_responses WHERE user_id = $1 ORDER BY completed_at DESC`
	return r.list(query, userID)
}

// ListAll lista todos los envíos con paginación (dashboard admin).
func (r *QuestionnaireRepo) ListAll(limit, offset int) ([]*entity.QuestionnaireResponse, error) {
	query := `
		SELECT id, COALESCE(user_id, ''), respuestas, completed_at, COALESCE(ip_address, '')
		FROM questionnaire_responses ORDER BY completed_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

func (r *QuestionnaireRepo) list(query string, args ...any) ([]*entity.QuestionnaireResponse, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list questionnaire responses: %w", err)
	}
	defer rows.Close()
	var list []*entity.QuestionnaireResponse
	for rows.Next() {
		var q entity.QuestionnaireResponse
		if err := rows.Scan(&q.ID, &q.UserID, &q.Respuestas, &q.CompletedAt, &q.IPAddress); err != nil {
			return nil, fmt.Errorf("scan questionnaire response: %w", err)
		}
		list = append(list, &q)
	}
	return list, rows.Err()
}

// Delete borra un envío por ID.
func (r *QuestionnaireRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM questionnaire_responses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete questionnaire response: %w", err)
	}
	return nil
}
