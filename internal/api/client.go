// Package api es el cliente REST del backend de Bookly: transporte con
// bearer/Accept-Language/X-Request-ID, errores tipados por status y el
// acceso genérico a colecciones paginadas (FetchPage).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TokenSource provee la credencial de sesión. session.Store la cumple.
// Un source nil significa cliente anónimo.
type TokenSource interface {
	Get(ctx context.Context) (string, error)
}

// Client habla con el backend. Seguro para uso concurrente.
type Client struct {
	BaseURL  string
	Language string // "pl" | "en"; viaja en Accept-Language
	HTTP     *http.Client
	Tokens   TokenSource
}

// New crea un Client. tokens puede ser nil (anónimo).
func New(baseURL, language string, tokens TokenSource) *Client {
	return &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Language: language,
		HTTP:     &http.Client{Timeout: 30 * time.Second},
		Tokens:   tokens,
	}
}

// do ejecuta un request. Adjunta la credencial si hay una disponible;
// los endpoints públicos la ignoran. Un error de red retorna err != nil;
// un status no-2xx retorna body y status sin error (lo tipan los callers).
func (c *Client) do(ctx context.Context, method, path string, q url.Values, body io.Reader, contentType string) (int, []byte, error) {
	u := c.BaseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.Language != "" {
		req.Header.Set("Accept-Language", c.Language)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.Tokens != nil {
		if token, err := c.Tokens.Get(ctx); err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		observeRequest(method, 0, time.Since(start).Seconds())
		return 0, nil, fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	observeRequest(method, resp.StatusCode, time.Since(start).Seconds())
	return resp.StatusCode, b, nil
}

// getJSON hace GET y decodifica el body 2xx en out.
func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	status, body, err := c.do(ctx, http.MethodGet, path, q, nil, "")
	if err != nil {
		return err
	}
	return decodeJSON(status, body, out)
}

// postJSON hace POST con body JSON y decodifica la respuesta 2xx en out.
func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return err
	}
	status, body, err := c.do(ctx, http.MethodPost, path, nil, bytes.NewReader(b), "application/json")
	if err != nil {
		return err
	}
	return decodeJSON(status, body, out)
}

// deleteJSON hace DELETE y decodifica la respuesta 2xx en out.
func (c *Client) deleteJSON(ctx context.Context, path string, out any) error {
	status, body, err := c.do(ctx, http.MethodDelete, path, nil, nil, "")
	if err != nil {
		return err
	}
	return decodeJSON(status, body, out)
}

func decodeJSON(status int, body []byte, out any) error {
	if status/100 != 2 {
		return newFetchError(status, body)
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("api: decoding response: %w", err)
	}
	return nil
}
