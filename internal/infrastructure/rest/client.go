// Package rest implementa los puertos BillsGateway y UsersGateway contra el
// backend HTTP de Billed.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/billed-client/internal/domain/gateway"
	"github.com/jhoicas/billed-client/pkg/logger"
)

var (
	_ gateway.BillsGateway = (*Client)(nil)
	_ gateway.UsersGateway = (*Client)(nil)
)

// Config del cliente contra el backend.
type Config struct {
	BaseURL string
	Timeout time.Duration // 0 = 30s
}

// Client adaptador HTTP de los dos gateways remotos.
type Client struct {
	base string
	http *http.Client
	log  *logger.Logger
}

// NewClient construye el cliente.
func NewClient(cfg Config, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		base: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

// HTTPError respuesta no-2xx del backend. El mensaje conserva el formato
// "Erreur <code>" que la app original registra tal cual.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("Erreur %d", e.Status)
}

// newRequest prepara la petición con un X-Request-ID para correlacionar logs.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Request-ID", uuid.New().String())
	return req, nil
}

// do ejecuta la petición, clasifica los no-2xx y decodifica el cuerpo en out
// cuando out no es nil.
func (c *Client) do(req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("llamada al store remoto")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{Status: resp.StatusCode}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decodificar respuesta de %s: %w", req.URL.Path, err)
	}
	return nil
}
