package usecase

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferdcas/tienda-romantica/internal/application/dto"
	"github.com/ferdcas/tienda-romantica/internal/domain"
	"github.com/ferdcas/tienda-romantica/internal/domain/entity"
)

type fakeQuestionnaireRepo struct {
	responses map[string]*entity.QuestionnaireResponse
}

func newFakeQuestionnaireRepo() *fakeQuestionnaireRepo {
	return &fakeQuestionnaireRepo{responses: map[string]*entity.QuestionnaireResponse{}}
}

func (f *fakeQuestionnaireRepo) Create(resp *entity.QuestionnaireResponse) error {
	cp := *resp
	f.responses[resp.ID] = &cp
	return nil
}

func (f *fakeQuestionnaireRepo) CountByUser(userID string) (int, error) {
	n := 0
	for _, r := range f.responses {
		if r.UserID == userID && userID != "" {
			n++
		}
	}
	return n, nil
}

func (f *fakeQuestionnaireRepo) ListByUser(userID string) ([]*entity.QuestionnaireResponse, error) {
	var out []*entity.QuestionnaireResponse
	for _, r := range f.responses {
		if r.UserID == userID {
			cp := *r
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeQuestionnaireRepo) ListAll(limit, offset int) ([]*entity.QuestionnaireResponse, error) {
	var out []*entity.QuestionnaireResponse
	for _, r := range f.responses {
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeQuestionnaireRepo) Delete(id string) error {
	delete(f.responses, id)
	return nil
}

func respuestas(t *testing.T) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(map[string]string{"color_favorito": "rosa", "cancion": "Perfect"})
	require.NoError(t, err)
	return raw
}

// Submit guarda el envío tal cual y cuenta para la compuerta del usuario.
func TestQuestionnaireSubmitYCount(t *testing.T) {
	uc := NewQuestionnaireUseCase(newFakeQuestionnaireRepo())

	out, err := uc.Submit(dto.SubmitQuestionnaireRequest{UserID: "u1", Responses: respuestas(t)}, "10.0.0.1")
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.JSONEq(t, string(respuestas(t)), string(out.Responses))

	count, err := uc.CountByUser("u1")
	require.NoError(t, err)
	assert.Equal(t, 1, count.QuestionnaireCount)

	// Un segundo envío del mismo usuario suma, nunca reemplaza.
	_, err = uc.Submit(dto.SubmitQuestionnaireRequest{UserID: "u1", Responses: respuestas(t)}, "10.0.0.1")
	require.NoError(t, err)
	count, err = uc.CountByUser("u1")
	require.NoError(t, err)
	assert.Equal(t, 2, count.QuestionnaireCount)
}

// Un envío anónimo se guarda pero no cuenta para ningún usuario.
func TestQuestionnaireSubmit_AnonimoNoCuenta(t *testing.T) {
	repo := newFakeQuestionnaireRepo()
	uc := NewQuestionnaireUseCase(repo)

	_, err := uc.Submit(dto.SubmitQuestionnaireRequest{Responses: respuestas(t)}, "10.0.0.9")
	require.NoError(t, err)

	count, err := uc.CountByUser("u1")
	require.NoError(t, err)
	assert.Equal(t, 0, count.QuestionnaireCount)

	all, err := uc.ListAll(dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

// Sin respuestas no hay nada que registrar.
func TestQuestionnaireSubmit_SinRespuestas(t *testing.T) {
	uc := NewQuestionnaireUseCase(newFakeQuestionnaireRepo())
	_, err := uc.Submit(dto.SubmitQuestionnaireRequest{UserID: "u1"}, "10.0.0.1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Delete elimina el envío y el conteo baja en consecuencia.
func TestQuestionnaireDelete(t *testing.T) {
	uc := NewQuestionnaireUseCase(newFakeQuestionnaireRepo())

	out, err := uc.Submit(dto.SubmitQuestionnaireRequest{UserID: "u1", Responses: respuestas(t)}, "")
	require.NoError(t, err)
	require.NoError(t, uc.Delete(out.ID))

	count, err := uc.CountByUser("u1")
	require.NoError(t, err)
	assert.Equal(t, 0, count.QuestionnaireCount)
}
