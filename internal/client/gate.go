package client

import (
	"context"
	"strconv"
	"sync"

	"github.com/rs/zerolog"
)

// Ternary flag de tres estados: aún no se sabe, sí, o no.
type Ternary int

const (
	Unknown Ternary = iota
	Yes
	No
)

// CountUnknown valor centinela del conteo mientras no se haya reconciliado.
const CountUnknown = -1

// SessionState estado de la compuerta de primera visita / cuestionario.
// Todo acceso a las claves persistidas pasa por el Gate; ningún otro módulo
// las lee por su cuenta.
type SessionState struct {
	FirstVisit         Ternary
	QuestionnaireCount int
	HasCompleted       bool
}

// Gate dueño único del SessionState. El conteo del servidor es la fuente de
// verdad; el almacenamiento local es una caché que sirve de respaldo cuando
// el cliente está anónimo o el servidor no responde.
type Gate struct {
	store   Storage
	api     *API
	session *Session
	log     zerolog.Logger

	mu    sync.Mutex
	state SessionState
}

// NewGate construye la compuerta en estado desconocido.
func NewGate(store Storage, api *API, session *Session, log zerolog.Logger) *Gate {
	return &Gate{
		store:   store,
		api:     api,
		session: session,
		log:     log,
		state:   SessionState{FirstVisit: Unknown, QuestionnaireCount: CountUnknown},
	}
}

// State devuelve una copia del estado actual.
func (g *Gate) State() SessionState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Reconcile sincroniza el estado con el almacenamiento y el servidor:
//
//  1. Lee el flag de visita: su ausencia significa primera visita.
//  2. Si hay sesión, consulta el conteo remoto; si responde, ese valor manda
//     y se reescribe en la caché local.
//  3. Si la llamada falla o el cliente es anónimo, vale el conteo cacheado.
func (g *Gate) Reconcile(ctx context.Context) SessionState {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, visited := g.store.Get(KeyHasVisited); visited {
		g.state.FirstVisit = No
	} else {
		g.state.FirstVisit = Yes
	}

	if g.session.Authenticated() {
		count, err := g.api.QuestionnaireCount(ctx, g.session.UserID())
		if err == nil {
			g.adoptCount(count)
			return g.state
		}
		g.log.Warn().Err(err).Msg("no se pudo consultar el conteo del cuestionario; se usa la caché local")
	}

	g.state.QuestionnaireCount = g.cachedCount()
	g.state.HasCompleted = g.state.QuestionnaireCount > 0
	return g.state
}

// MarkQuestionnaireCompleted registra que el usuario acaba de completar el
// cuestionario. Con sesión activa se vuelve a consultar el conteo remoto
// (para capturar el incremento que el envío ya causó en el servidor); si esa
// consulta falla o el cliente es anónimo, se incrementa la caché local.
// Devuelve el conteo resultante para que el llamador reaccione sin otra vuelta.
func (g *Gate) MarkQuestionnaireCompleted(ctx context.Context) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session.Authenticated() {
		count, err := g.api.QuestionnaireCount(ctx, g.session.UserID())
		if err == nil {
			g.adoptCount(count)
			g.markVisitedLocked()
			return g.state.QuestionnaireCount
		}
		g.log.Warn().Err(err).Msg("no se pudo refrescar el conteo tras el envío; se incrementa la caché")
	}

	g.adoptCount(g.cachedCount() + 1)
	g.markVisitedLocked()
	return g.state.QuestionnaireCount
}

// MarkVisited persiste el flag de visita y apaga el estado de primera visita.
func (g *Gate) MarkVisited() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.markVisitedLocked()
}

// Reset limpia las tres claves y vuelve al estado desconocido/primera visita.
// Solo para pruebas y depuración de la compuerta.
func (g *Gate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	_ = g.store.Delete(KeyHasVisited)
	_ = g.store.Delete(KeyQuestionnaireCompleted)
	_ = g.store.Delete(KeyQuestionnaireCount)
	g.state = SessionState{FirstVisit: Unknown, QuestionnaireCount: CountUnknown}
}

// adoptCount fija el conteo en memoria y lo reescribe en la caché local.
// Llamar con el mutex tomado.
func (g *Gate) adoptCount(count int) {
	if count < 0 {
		count = 0
	}
	g.state.QuestionnaireCount = count
	g.state.HasCompleted = count > 0
	_ = g.store.Set(KeyQuestionnaireCount, strconv.Itoa(count))
	_ = g.store.Set(KeyQuestionnaireCompleted, strconv.FormatBool(count > 0))
}

// cachedCount lee el conteo cacheado; un valor ilegible vale cero.
func (g *Gate) cachedCount() int {
	raw, ok := g.store.Get(KeyQuestionnaireCount)
	if !ok {
		return 0
	}
	count, err := strconv.Atoi(raw)
	if err != nil || count < 0 {
		return 0
	}
	return count
}

func (g *Gate) markVisitedLocked() {
	_ = g.store.Set(KeyHasVisited, "true")
	g.state.FirstVisit = No
}
