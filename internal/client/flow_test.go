package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Fuera de la raíz el enrutador nunca interviene, sin importar el resto del estado.
func TestDecide_FueraDeLaRaiz_Passthrough(t *testing.T) {
	for _, path := range []string{"/login", "/registro", "/dashboard", "/cuestionario"} {
		result := Decide(FlowState{Path: path, Authenticated: true, QuestionnaireCount: 0})
		assert.Equal(t, DecidePassthrough, result.Decision, "path %s debe pasar de largo", path)
		assert.False(t, result.MarkVisited)
	}
}

// Cargando o primera visita desconocida → placeholder de carga, nunca una decisión terminal.
func TestDecide_EstadoIncompleto_Cargando(t *testing.T) {
	result := Decide(FlowState{Path: "/", Loading: true, Authenticated: true, FirstVisit: No, QuestionnaireCount: 3})
	assert.Equal(t, DecideLoading, result.Decision)

	result = Decide(FlowState{Path: "/", Authenticated: true, FirstVisit: Unknown, QuestionnaireCount: 3})
	assert.Equal(t, DecideLoading, result.Decision)
}

// Anónimo en la raíz → siempre auto-registro, nunca tienda ni cuestionario.
func TestDecide_Anonimo_SiempreAutoRegistro(t *testing.T) {
	for _, count := range []int{CountUnknown, 0, 1, 5} {
		result := Decide(FlowState{Path: "/", FirstVisit: Yes, QuestionnaireCount: count})
		assert.Equal(t, DecideAutoRegister, result.Decision,
			"anónimo con conteo %d debe ir al auto-registro", count)
	}
}

// Autenticado con conteo cero → cuestionario obligatorio, sin importar la bandera de visita.
func TestDecide_ConteoCero_Cuestionario(t *testing.T) {
	for _, fv := range []Ternary{Yes, No} {
		result := Decide(FlowState{Path: "/", Authenticated: true, FirstVisit: fv, QuestionnaireCount: 0})
		assert.Equal(t, DecideQuestionnaire, result.Decision)
	}
}

// Autenticado con conteo positivo y sin señal de cuestionario → tienda, marcando
// la visita solo si aún no estaba marcada.
func TestDecide_ConteoPositivo_Tienda(t *testing.T) {
	result := Decide(FlowState{Path: "/", Authenticated: true, FirstVisit: Yes, QuestionnaireCount: 1})
	assert.Equal(t, DecideStore, result.Decision)
	assert.True(t, result.MarkVisited, "primera visita con conteo positivo debe marcar la visita")

	result = Decide(FlowState{Path: "/", Authenticated: true, FirstVisit: No, QuestionnaireCount: 1})
	assert.Equal(t, DecideStore, result.Decision)
	assert.False(t, result.MarkVisited, "visita ya marcada no se vuelve a marcar")
}

// La señal "vengo del cuestionario" con sesión activa salta el chequeo del
// conteo: evita la carrera entre el incremento del servidor y la redirección.
func TestDecide_SenalDeCuestionario_TiendaDirecta(t *testing.T) {
	result := Decide(FlowState{
		Path: "/", Authenticated: true, FromQuestionnaire: true,
		FirstVisit: Yes, QuestionnaireCount: 0,
	})
	assert.Equal(t, DecideStore, result.Decision)
	assert.True(t, result.MarkVisited)
	assert.True(t, result.StripQuery, "la señal debe quitarse de la URL")
}

// La señal sin sesión activa no abre la tienda: el anónimo va al auto-registro.
func TestDecide_SenalSinSesion_AutoRegistro(t *testing.T) {
	result := Decide(FlowState{Path: "/", FromQuestionnaire: true, FirstVisit: Yes, QuestionnaireCount: 0})
	assert.Equal(t, DecideAutoRegister, result.Decision)
}

// Conteo todavía desconocido con sesión activa → sincronizando, no terminal.
func TestDecide_ConteoDesconocido_Sincronizando(t *testing.T) {
	result := Decide(FlowState{Path: "/", Authenticated: true, FirstVisit: No, QuestionnaireCount: CountUnknown})
	assert.Equal(t, DecideSyncing, result.Decision)
}
