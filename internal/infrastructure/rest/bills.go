package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/jhoicas/billed-client/internal/domain/entity"
	"github.com/jhoicas/billed-client/internal/domain/gateway"
)

// List GET /bills — lista completa de notas de la sesión.
func (c *Client) List(ctx context.Context) ([]entity.Bill, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/bills", nil)
	if err != nil {
		return nil, err
	}
	var out []entity.Bill
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create POST /bills — alta del justificante como multipart con los campos
// "file" y "email". Devuelve la URL del archivo y la clave del borrador.
func (c *Client) Create(ctx context.Context, in gateway.CreateBillInput) (*gateway.CreateBillResult, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", in.FileName)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, in.Content); err != nil {
		return nil, fmt.Errorf("copiar justificante: %w", err)
	}
	if err := w.WriteField("email", in.Email); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/bills", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var out gateway.CreateBillResult
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update PATCH /bills/:id — envía la nota completa sobre el borrador.
func (c *Client) Update(ctx context.Context, id string, bill *entity.Bill) (*entity.Bill, error) {
	body, err := json.Marshal(bill)
	if err != nil {
		return nil, err
	}
	req, err := c.newRequest(ctx, http.MethodPatch, "/bills/"+url.PathEscape(id), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var out entity.Bill
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
