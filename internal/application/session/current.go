package session

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/billed-client/internal/domain"
	"github.com/jhoicas/billed-client/internal/domain/entity"
	"github.com/jhoicas/billed-client/internal/domain/gateway"
)

// Current lee y decodifica la sesión persistida bajo "user". Devuelve
// domain.ErrSinSesion si nadie se ha identificado todavía.
func Current(store gateway.SessionStore) (*entity.Session, error) {
	raw, err := store.GetItem(gateway.SessionKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, domain.ErrSinSesion
	}
	var s entity.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("decodificar sesión: %w", err)
	}
	return &s, nil
}
