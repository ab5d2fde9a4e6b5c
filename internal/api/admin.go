package api

import "context"

// AdminUsers lista todos los usuarios (incluye búsqueda por nombre,
// apellido o email). Requiere rol admin: 403 para el resto.
func (c *Client) AdminUsers(ctx context.Context, pageIndex, pageSize int, search string) (Page[UserDTO], error) {
	return FetchPage[UserDTO](ctx, c, "/api/admin/users", pageIndex, pageSize, map[string]string{"search": search})
}

// AdminBooks lista el catálogo para moderación (búsqueda por título).
// Requiere rol admin.
func (c *Client) AdminBooks(ctx context.Context, pageIndex, pageSize int, search string) (Page[BookDTO], error) {
	return FetchPage[BookDTO](ctx, c, "/api/admin/books", pageIndex, pageSize, map[string]string{"search": search})
}
