package http

import (
	"sync"

	"github.com/jhoicas/billed-client/internal/domain"
)

// RouteRecorder navegador que conserva la última ruta solicitada por los
// casos de uso. El cliente atiende a un solo usuario y la UI serializa sus
// operaciones, así que leer la ruta justo después de la llamada es seguro.
type RouteRecorder struct {
	mu   sync.Mutex
	last domain.Route
}

// Navigate implementa domain.Navigator (se inyecta como método-valor).
func (r *RouteRecorder) Navigate(to domain.Route) {
	r.mu.Lock()
	r.last = to
	r.mu.Unlock()
}

// Last última ruta registrada; vacía si nadie navegó todavía.
func (r *RouteRecorder) Last() domain.Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}
