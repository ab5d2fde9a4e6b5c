package mockapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/bookly/internal/validation"
)

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	u, _ := userFrom(r)
	writeJSON(w, http.StatusOK, userDTO(u, true))
}

func (s *Server) handleUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	u, ok := s.store.UserByEmail(email)
	if !ok {
		writeError(w, r, http.StatusNotFound, "user.not.found")
		return
	}
	writeJSON(w, http.StatusOK, userDTO(u, true))
}

func (s *Server) handleUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "error.network")
		return
	}
	u, ok := s.store.UserByID(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "user.not.found")
		return
	}
	// perfil público: sin email
	writeJSON(w, http.StatusOK, userDTO(u, false))
}

// handleUpdateUser acepta el multipart del editor de perfil. Campos de
// texto opcionales; balance y rating solo los toma de un admin, para el
// resto se ignoran en silencio (mismo contrato que el backend real).
func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	actor, _ := userFrom(r)
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "error.network")
		return
	}
	if actor.ID != id && !actor.IsAdmin() {
		writeError(w, r, http.StatusForbidden, "auth.forbidden")
		return
	}
	target, ok := s.store.UserByID(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "user.not.found")
		return
	}
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		writeError(w, r, http.StatusBadRequest, "error.network")
		return
	}

	if v := r.FormValue("firstName"); v != "" {
		target.FirstName = v
	}
	if v := r.FormValue("lastName"); v != "" {
		target.LastName = v
	}
	if _, ok := r.MultipartForm.Value["description"]; ok {
		target.Description = r.FormValue("description")
	}
	if actor.IsAdmin() {
		if v := r.FormValue("balance"); v != "" {
			if b, err := validation.ParseAmount(v); err == nil && b >= 0 {
				target.Balance = b
			}
		}
		if v := r.FormValue("rating"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				target.Rating = n
			}
		}
	}
	if _, hdr, err := r.FormFile("file"); err == nil && hdr != nil {
		// el mock no persiste bytes; la URL alcanza para la UI
		target.ProfilePictureURL = "/uploads/users/" + strconv.FormatInt(id, 10) + "/" + hdr.Filename
	}

	s.store.SaveUser(target)
	writeJSON(w, http.StatusOK, userDTO(target, true))
}
