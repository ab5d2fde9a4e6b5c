package mockapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/bookly/internal/api"
	"github.com/dropDatabas3/bookly/internal/observability/logger"
	"github.com/dropDatabas3/bookly/internal/validation"
)

var bookFieldOrder = []string{"title", "description", "bookCondition", "authorName", "price", "file"}

// handleListBooks sirve el catálogo público: solo libros disponibles,
// con búsqueda por título y filtro por dueño.
func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search := strings.ToLower(strings.TrimSpace(q.Get("search")))
	var userID int64
	if v := q.Get("userId"); v != "" {
		userID, _ = strconv.ParseInt(v, 10, 64)
	}

	var items []api.BookDTO
	for _, b := range s.store.Books() {
		if !b.Available {
			continue
		}
		if userID > 0 && b.OwnerID != userID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(b.Title), search) {
			continue
		}
		items = append(items, s.bookDTO(b))
	}
	page, size := pageParams(r)
	writeJSON(w, http.StatusOK, envelope(items, page, size))
}

func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "error.network")
		return
	}
	b, ok := s.store.BookByID(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "book.not.found")
		return
	}
	writeJSON(w, http.StatusOK, s.bookDTO(b))
}

func (s *Server) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	u, _ := userFrom(r)
	form, hasImage, imageName, ok := s.readBookForm(w, r)
	if !ok {
		return
	}
	form.HasImage = hasImage
	if errs := validation.ValidateBook(form, true); !errs.OK() {
		writeError(w, r, http.StatusBadRequest, firstError(errs, bookFieldOrder))
		return
	}
	price, _ := validation.ParseAmount(form.Price)

	b := s.store.CreateBook(Book{
		Title:         form.Title,
		Description:   form.Description,
		BookCondition: form.BookCondition,
		AuthorName:    form.AuthorName,
		Price:         price,
		PictureURL:    "/uploads/books/" + imageName,
		OwnerID:       u.ID,
		Available:     true,
	})
	logger.Named("mockapi").Info("book created", logger.BookID(b.ID), logger.UserID(u.ID))
	writeJSON(w, http.StatusCreated, bookMutation(s, r, b, "book.create.success"))
}

func (s *Server) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	u, _ := userFrom(r)
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "error.network")
		return
	}
	b, ok := s.store.BookByID(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "book.not.found")
		return
	}
	if b.OwnerID != u.ID && !u.IsAdmin() {
		writeError(w, r, http.StatusForbidden, "auth.forbidden")
		return
	}

	form, hasImage, imageName, ok := s.readBookForm(w, r)
	if !ok {
		return
	}
	form.HasImage = hasImage
	// al editar la imagen es opcional: se conserva la actual
	if errs := validation.ValidateBook(form, false); !errs.OK() {
		writeError(w, r, http.StatusBadRequest, firstError(errs, bookFieldOrder))
		return
	}
	price, _ := validation.ParseAmount(form.Price)

	b.Title = form.Title
	b.Description = form.Description
	b.BookCondition = form.BookCondition
	b.AuthorName = form.AuthorName
	b.Price = price
	if hasImage {
		b.PictureURL = "/uploads/books/" + imageName
	}
	s.store.SaveBook(b)
	writeJSON(w, http.StatusOK, bookMutation(s, r, b, "book.update.success"))
}

func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	u, _ := userFrom(r)
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "error.network")
		return
	}
	b, ok := s.store.BookByID(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "book.not.found")
		return
	}
	if b.OwnerID != u.ID && !u.IsAdmin() {
		writeError(w, r, http.StatusForbidden, "auth.forbidden")
		return
	}
	s.store.DeleteBook(id)
	logger.Named("mockapi").Info("book deleted", logger.BookID(id), logger.UserID(u.ID))
	writeMessage(w, r, http.StatusOK, "book.delete.success")
}

func (s *Server) readBookForm(w http.ResponseWriter, r *http.Request) (form validation.BookForm, hasImage bool, imageName string, ok bool) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		writeError(w, r, http.StatusBadRequest, "error.network")
		return form, false, "", false
	}
	form = validation.BookForm{
		Title:         r.FormValue("title"),
		Description:   r.FormValue("description"),
		BookCondition: r.FormValue("bookCondition"),
		AuthorName:    r.FormValue("authorName"),
		Price:         r.FormValue("price"),
	}
	if _, hdr, err := r.FormFile("file"); err == nil && hdr != nil {
		hasImage = true
		imageName = hdr.Filename
	}
	return form, hasImage, imageName, true
}

func bookMutation(s *Server, r *http.Request, b Book, msgKey string) map[string]any {
	return map[string]any{
		"message": localized(r, msgKey),
		"book":    s.bookDTO(b),
	}
}
