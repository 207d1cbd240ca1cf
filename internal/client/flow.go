package client

// Decision resultado del enrutador de flujo para la ruta raíz.
type Decision int

const (
	// DecidePassthrough la ruta no es la raíz; el enrutador no interviene.
	DecidePassthrough Decision = iota
	// DecideLoading el estado aún no está listo; mostrar el placeholder de carga.
	DecideLoading
	// DecideStore abrir la tienda.
	DecideStore
	// DecideAutoRegister el cliente es anónimo; mostrar el auto-registro.
	DecideAutoRegister
	// DecideQuestionnaire redirigir a la bienvenida del cuestionario.
	DecideQuestionnaire
	// DecideSyncing combinación de estado que no debería ocurrir; mostrar el
	// placeholder de sincronización y reevaluar en el próximo cambio.
	DecideSyncing
)

// FlowState entrada del enrutador: una foto del estado relevante.
type FlowState struct {
	Path               string
	Loading            bool
	Authenticated      bool
	FromQuestionnaire  bool // señal "?from=questionnaire" en la URL
	FirstVisit         Ternary
	QuestionnaireCount int // CountUnknown mientras no se haya reconciliado
}

// FlowResult decisión más las señales laterales que el llamador debe aplicar.
type FlowResult struct {
	Decision    Decision
	MarkVisited bool // el llamador debe marcar la visita en la compuerta
	StripQuery  bool // el llamador debe quitar la señal de la URL
}

// Decide enruta la ruta raíz. Es una función pura: toda mutación (marcar
// visita, limpiar la URL) queda señalada en el resultado, nunca se ejecuta
// aquí.
//
// Orden de evaluación:
//  1. Fuera de la raíz el enrutador no opina.
//  2. Cargando o primera visita desconocida → placeholder de carga.
//  3. Señal de "vengo del cuestionario" con sesión activa → tienda directa,
//     saltando el chequeo del conteo para evitar la carrera entre el
//     incremento del servidor y la redirección.
//  4. Anónimo → auto-registro.
//  5. Conteo en cero → cuestionario obligatorio (una vez por identidad).
//  6. Conteo positivo → tienda, marcando la visita si hace falta.
//  7. Cualquier otra combinación → sincronizando.
func Decide(s FlowState) FlowResult {
	if s.Path != "/" {
		return FlowResult{Decision: DecidePassthrough}
	}
	if s.Loading || s.FirstVisit == Unknown {
		return FlowResult{Decision: DecideLoading}
	}
	if s.FromQuestionnaire && s.Authenticated {
		return FlowResult{Decision: DecideStore, MarkVisited: true, StripQuery: true}
	}
	if !s.Authenticated {
		return FlowResult{Decision: DecideAutoRegister}
	}
	if s.QuestionnaireCount == 0 {
		return FlowResult{Decision: DecideQuestionnaire}
	}
	if s.QuestionnaireCount > 0 {
		return FlowResult{Decision: DecideStore, MarkVisited: s.FirstVisit != No}
	}
	return FlowResult{Decision: DecideSyncing}
}
