package mockapi

import (
	"net/http"
	"strings"

	"github.com/dropDatabas3/bookly/internal/api"
)

// handleAdminUsers lista todos los usuarios con búsqueda por nombre,
// apellido o email.
func (s *Server) handleAdminUsers(w http.ResponseWriter, r *http.Request) {
	search := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("search")))
	var items []api.UserDTO
	for _, u := range s.store.Users() {
		if search != "" &&
			!strings.Contains(strings.ToLower(u.FirstName), search) &&
			!strings.Contains(strings.ToLower(u.LastName), search) &&
			!strings.Contains(strings.ToLower(u.Email), search) {
			continue
		}
		items = append(items, userDTO(u, true))
	}
	page, size := pageParams(r)
	writeJSON(w, http.StatusOK, envelope(items, page, size))
}

// handleAdminBooks lista el catálogo completo para moderación,
// incluyendo libros ya vendidos.
func (s *Server) handleAdminBooks(w http.ResponseWriter, r *http.Request) {
	search := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("search")))
	var items []api.BookDTO
	for _, b := range s.store.Books() {
		if search != "" && !strings.Contains(strings.ToLower(b.Title), search) {
			continue
		}
		items = append(items, s.bookDTO(b))
	}
	page, size := pageParams(r)
	writeJSON(w, http.StatusOK, envelope(items, page, size))
}
