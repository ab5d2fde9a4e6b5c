package mockapi

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/dropDatabas3/bookly/internal/observability/logger"
	"github.com/dropDatabas3/bookly/internal/validation"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// orden fijo para elegir el primer error de un form (los maps de Go no
// tienen orden estable)
var registerFieldOrder = []string{"firstName", "lastName", "email", "password", "confirmPassword"}

func firstError(errs validation.Errors, order []string) string {
	for _, f := range order {
		if key, ok := errs[f]; ok {
			return key
		}
	}
	for _, key := range errs {
		return key
	}
	return "error.network"
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if !readJSON(w, r, &in) {
		return
	}
	u, ok := s.store.UserByEmail(in.Email)
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "auth.login.failed")
		return
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(in.Password)); err != nil {
		writeError(w, r, http.StatusUnauthorized, "auth.login.failed")
		return
	}
	token, err := s.tokens.Sign(u)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "error.network")
		return
	}
	logger.Named("mockapi").Info("login", logger.UserID(u.ID), logger.Email(u.Email))
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if !readJSON(w, r, &in) {
		return
	}
	// mismas reglas que el form del cliente; el backend no confía en
	// que el caller haya validado
	errs := validation.ValidateRegistration(in.FirstName, in.LastName, in.Email, in.Password, in.Password)
	if !errs.OK() {
		writeError(w, r, http.StatusBadRequest, firstError(errs, registerFieldOrder))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "error.network")
		return
	}
	u, created := s.store.CreateUser(User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		Roles:        []string{"ROLE_USER"},
	})
	// el backend original responde 400 con mensaje para email duplicado
	if !created {
		writeError(w, r, http.StatusBadRequest, "auth.email.exists")
		return
	}
	logger.Named("mockapi").Info("register", logger.UserID(u.ID), logger.Email(u.Email))
	writeMessage(w, r, http.StatusCreated, "auth.registration.success")
}
