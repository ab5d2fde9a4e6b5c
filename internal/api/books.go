package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// BookFilters son los filtros del catálogo. Search y UserID son
// mutuamente excluyentes en la práctica (la UI manda uno u otro).
type BookFilters struct {
	Search string
	UserID int64
}

func (f BookFilters) asMap() map[string]string {
	m := map[string]string{"search": f.Search}
	if f.UserID > 0 {
		m["userId"] = strconv.FormatInt(f.UserID, 10)
	}
	return m
}

// ListBooks trae una página del catálogo público (solo disponibles).
func (c *Client) ListBooks(ctx context.Context, pageIndex, pageSize int, filters BookFilters) (Page[BookDTO], error) {
	return FetchPage[BookDTO](ctx, c, "/api/books", pageIndex, pageSize, filters.asMap())
}

// GetBook trae una publicación por ID.
func (c *Client) GetBook(ctx context.Context, id int64) (*BookDTO, error) {
	var out BookDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/api/books/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BookUpload son los campos del formulario de publicación. Price viaja
// como string con punto decimal, igual que el form original.
type BookUpload struct {
	Title         string
	Description   string
	BookCondition string
	AuthorName    string
	Price         string
	ImageName     string
	Image         io.Reader // requerido al crear, opcional al editar
}

type bookMutationResponse struct {
	Message string  `json:"message"`
	Book    BookDTO `json:"book"`
}

// CreateBook publica un libro. Retorna el libro creado y el mensaje
// localizado del backend.
func (c *Client) CreateBook(ctx context.Context, up BookUpload) (*BookDTO, string, error) {
	return c.sendBook(ctx, http.MethodPost, "/api/books", up)
}

// UpdateBook edita la publicación id (solo dueño o admin).
func (c *Client) UpdateBook(ctx context.Context, id int64, up BookUpload) (*BookDTO, string, error) {
	return c.sendBook(ctx, http.MethodPut, fmt.Sprintf("/api/books/%d", id), up)
}

func (c *Client) sendBook(ctx context.Context, method, path string, up BookUpload) (*BookDTO, string, error) {
	fields := map[string]string{
		"title":         up.Title,
		"description":   up.Description,
		"bookCondition": up.BookCondition,
		"authorName":    up.AuthorName,
		"price":         up.Price,
	}
	body, contentType, err := buildMultipart(fields, "file", up.ImageName, up.Image)
	if err != nil {
		return nil, "", err
	}
	status, respBody, err := c.do(ctx, method, path, nil, body, contentType)
	if err != nil {
		return nil, "", err
	}
	var out bookMutationResponse
	if err := decodeJSON(status, respBody, &out); err != nil {
		return nil, "", err
	}
	return &out.Book, out.Message, nil
}

// DeleteBook elimina la publicación id (solo dueño o admin). Retorna el
// mensaje localizado del backend.
func (c *Client) DeleteBook(ctx context.Context, id int64) (string, error) {
	var out messageResponse
	if err := c.deleteJSON(ctx, fmt.Sprintf("/api/books/%d", id), &out); err != nil {
		return "", err
	}
	return out.Message, nil
}
