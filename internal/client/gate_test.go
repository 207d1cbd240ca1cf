package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferdcas/tienda-romantica/internal/application/dto"
)

// countServer responde el conteo del cuestionario con un valor fijo.
func countServer(t *testing.T, count int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /questionnaire/user/", func(w http.ResponseWriter, r *http.Request) {
		writeOK(w, dto.QuestionnaireCountResponse{QuestionnaireCount: count})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// Cliente anónimo sin estado previo: primera visita y conteo cero.
func TestGate_Reconcile_AnonimoSinEstado(t *testing.T) {
	store := NewMemStorage()
	api := NewAPI("http://127.0.0.1:0", zerolog.Nop()) // no debe llamarse
	session := NewSession(store, api, zerolog.Nop())
	gate := NewGate(store, api, session, zerolog.Nop())

	state := gate.Reconcile(context.Background())

	assert.Equal(t, Yes, state.FirstVisit)
	assert.Equal(t, 0, state.QuestionnaireCount)
	assert.False(t, state.HasCompleted)
}

// Con sesión activa el conteo del servidor manda y se reescribe en la caché.
func TestGate_Reconcile_ServidorEsLaFuenteDeVerdad(t *testing.T) {
	srv := countServer(t, 3)
	store := NewMemStorage()
	require.NoError(t, store.Set(KeyQuestionnaireCount, "1")) // caché vieja

	api := NewAPI(srv.URL, zerolog.Nop())
	session := authedSession(t, store, api, "u1")
	gate := NewGate(store, api, session, zerolog.Nop())

	state := gate.Reconcile(context.Background())

	assert.Equal(t, 3, state.QuestionnaireCount)
	assert.True(t, state.HasCompleted)
	cached, _ := store.Get(KeyQuestionnaireCount)
	assert.Equal(t, "3", cached, "el valor del servidor debe reescribir la caché")
}

// Si el servidor no responde, vale el conteo cacheado.
func TestGate_Reconcile_FalloDeRed_UsaLaCache(t *testing.T) {
	store := NewMemStorage()
	require.NoError(t, store.Set(KeyQuestionnaireCount, "2"))
	require.NoError(t, store.Set(KeyHasVisited, "true"))

	api := NewAPI("http://127.0.0.1:1", zerolog.Nop()) // puerto inválido: siempre falla
	session := authedSession(t, store, api, "u1")
	gate := NewGate(store, api, session, zerolog.Nop())

	state := gate.Reconcile(context.Background())

	assert.Equal(t, No, state.FirstVisit)
	assert.Equal(t, 2, state.QuestionnaireCount)
	assert.True(t, state.HasCompleted)
}

// Tras completar el cuestionario con sesión activa se adopta el conteo remoto
// verbatim y la visita queda marcada. El conteo resultante siempre es ≥ 1.
func TestGate_MarkCompleted_RefrescaDelServidor(t *testing.T) {
	srv := countServer(t, 1)
	store := NewMemStorage()
	api := NewAPI(srv.URL, zerolog.Nop())
	session := authedSession(t, store, api, "u1")
	gate := NewGate(store, api, session, zerolog.Nop())

	count := gate.MarkQuestionnaireCompleted(context.Background())

	assert.GreaterOrEqual(t, count, 1)
	state := gate.State()
	assert.Equal(t, No, state.FirstVisit, "completar el cuestionario marca la visita")
	assert.True(t, state.HasCompleted)
	_, visited := store.Get(KeyHasVisited)
	assert.True(t, visited)
}

// Si el refresco remoto falla, la caché local se incrementa en uno.
func TestGate_MarkCompleted_FalloDeRed_IncrementaLaCache(t *testing.T) {
	store := NewMemStorage()
	require.NoError(t, store.Set(KeyQuestionnaireCount, "1"))

	api := NewAPI("http://127.0.0.1:1", zerolog.Nop())
	session := authedSession(t, store, api, "u1")
	gate := NewGate(store, api, session, zerolog.Nop())

	count := gate.MarkQuestionnaireCompleted(context.Background())

	assert.Equal(t, 2, count)
	cached, _ := store.Get(KeyQuestionnaireCount)
	assert.Equal(t, "2", cached)
}

// Anónimo: completar el cuestionario incrementa la caché local desde cero.
func TestGate_MarkCompleted_Anonimo(t *testing.T) {
	store := NewMemStorage()
	api := NewAPI("http://127.0.0.1:0", zerolog.Nop())
	session := NewSession(store, api, zerolog.Nop())
	gate := NewGate(store, api, session, zerolog.Nop())

	count := gate.MarkQuestionnaireCompleted(context.Background())
	assert.Equal(t, 1, count)
	assert.True(t, gate.State().HasCompleted)
}

// Reset limpia las tres claves: la siguiente reconciliación reporta primera
// visita y conteo cero.
func TestGate_Reset_VuelveAPrimeraVisita(t *testing.T) {
	store := NewMemStorage()
	api := NewAPI("http://127.0.0.1:0", zerolog.Nop())
	session := NewSession(store, api, zerolog.Nop())
	gate := NewGate(store, api, session, zerolog.Nop())

	gate.MarkVisited()
	gate.MarkQuestionnaireCompleted(context.Background())
	gate.Reset()

	assert.Equal(t, Unknown, gate.State().FirstVisit)
	assert.Equal(t, CountUnknown, gate.State().QuestionnaireCount)

	state := gate.Reconcile(context.Background())
	assert.Equal(t, Yes, state.FirstVisit)
	assert.Equal(t, 0, state.QuestionnaireCount)
	assert.False(t, state.HasCompleted)
}

// HasCompleted es verdadero exactamente cuando el conteo es positivo.
func TestGate_HasCompletedDerivaDelConteo(t *testing.T) {
	srvCero := countServer(t, 0)
	store := NewMemStorage()
	api := NewAPI(srvCero.URL, zerolog.Nop())
	session := authedSession(t, store, api, "u1")
	gate := NewGate(store, api, session, zerolog.Nop())

	state := gate.Reconcile(context.Background())
	assert.Equal(t, 0, state.QuestionnaireCount)
	assert.False(t, state.HasCompleted)
}
