package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// Me retorna el usuario de la sesión activa (incluye email y saldo).
func (c *Client) Me(ctx context.Context) (*UserDTO, error) {
	var out UserDTO
	if err := c.getJSON(ctx, "/api/user/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserByID retorna el perfil público de un usuario.
func (c *Client) UserByID(ctx context.Context, id int64) (*UserDTO, error) {
	var out UserDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/api/user/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserByEmail resuelve un email al registro canónico del usuario.
func (c *Client) UserByEmail(ctx context.Context, email string) (*UserDTO, error) {
	q := url.Values{}
	q.Set("email", email)
	var out UserDTO
	if err := c.getJSON(ctx, "/api/user/by-email", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProfileUpdate son los campos editables del perfil. Los punteros nil se
// omiten del form. Balance y Rating solo los acepta el backend para
// admins; para el resto se ignoran silenciosamente.
type ProfileUpdate struct {
	FirstName   *string
	LastName    *string
	Description *string
	Balance     *float64
	Rating      *int
	ImageName   string
	Image       io.Reader
}

// UpdateProfile actualiza el perfil id vía multipart (texto + imagen
// opcional) y retorna el perfil resultante.
func (c *Client) UpdateProfile(ctx context.Context, id int64, upd ProfileUpdate) (*UserDTO, error) {
	fields := map[string]string{}
	if upd.FirstName != nil {
		fields["firstName"] = *upd.FirstName
	}
	if upd.LastName != nil {
		fields["lastName"] = *upd.LastName
	}
	if upd.Description != nil {
		fields["description"] = *upd.Description
	}
	if upd.Balance != nil {
		fields["balance"] = strconv.FormatFloat(*upd.Balance, 'f', 2, 64)
	}
	if upd.Rating != nil {
		fields["rating"] = strconv.Itoa(*upd.Rating)
	}

	body, contentType, err := buildMultipart(fields, "file", upd.ImageName, upd.Image)
	if err != nil {
		return nil, err
	}
	status, respBody, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/user/%d", id), nil, body, contentType)
	if err != nil {
		return nil, err
	}
	var out UserDTO
	if err := decodeJSON(status, respBody, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
