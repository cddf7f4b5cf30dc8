package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/jhoicas/billed-client/internal/domain/entity"
)

// Login POST /auth/login — identifica al usuario con email y password.
// El token que devuelva el backend se descarta: la sesión local es la fuente
// de verdad de este cliente.
func (c *Client) Login(ctx context.Context, email, password string) error {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/login", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, nil)
}

// CreateUser POST /users — alta con el registro de sesión completo. Es el
// camino de respaldo cuando el login rechaza las credenciales.
func (c *Client) CreateUser(ctx context.Context, s *entity.Session) error {
	body, err := json.Marshal(s)
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/users", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, nil)
}
