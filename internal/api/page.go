package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// Page es una porción acotada de una colección más su metadata.
// Invariante del backend: PageIndex < TotalPages cuando TotalPages > 0.
// Un índice fuera de rango produce Content vacío, nunca un error.
type Page[T any] struct {
	Content    []T
	TotalPages int
	PageIndex  int
}

// DisplayPage es el número de página 1-based para mostrar al usuario.
// En el wire la paginación es 0-based; la traducción vive acá.
func (p Page[T]) DisplayPage() int { return p.PageIndex + 1 }

// Empty reporta si la página no trae elementos.
func (p Page[T]) Empty() bool { return len(p.Content) == 0 }

// pageEnvelope es el shape de respuesta de todo endpoint de listado:
// {"content": [...], "totalPages": N}. Otros shapes (array pelado) son
// una ambigüedad del contrato del backend y no se replican acá.
type pageEnvelope[T any] struct {
	Content    []T `json:"content"`
	TotalPages int `json:"totalPages"`
}

// FetchPage trae una página de endpoint con los filtros dados. Los
// filtros con valor en blanco se omiten del query (igual que la UI
// original, que nunca manda search=""). Un status no-2xx produce
// *FetchError; la política de degradar a página vacía es del caller.
func FetchPage[T any](ctx context.Context, c *Client, endpoint string, pageIndex, pageSize int, filters map[string]string) (Page[T], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(pageIndex))
	q.Set("size", strconv.Itoa(pageSize))
	for k, v := range filters {
		if strings.TrimSpace(v) != "" {
			q.Set(k, v)
		}
	}

	var env pageEnvelope[T]
	if err := c.getJSON(ctx, endpoint, q, &env); err != nil {
		return Page[T]{PageIndex: pageIndex}, err
	}
	return Page[T]{
		Content:    env.Content,
		TotalPages: env.TotalPages,
		PageIndex:  pageIndex,
	}, nil
}
