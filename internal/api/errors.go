package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// FetchError representa una respuesta no-2xx del backend. Conserva el
// status y el mensaje localizado que vino en el body (si hubo).
type FetchError struct {
	Status  int
	Code    string
	Message string
}

func (e *FetchError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// apiMessage es el body de error típico del backend:
// {"message": "..."} o {"error": "...", "error_description": "..."}
type apiMessage struct {
	Message          string `json:"message"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func newFetchError(status int, body []byte) *FetchError {
	fe := &FetchError{Status: status}
	var m apiMessage
	if len(body) > 0 && json.Unmarshal(body, &m) == nil {
		fe.Code = m.Error
		fe.Message = m.Message
		if fe.Message == "" {
			fe.Message = m.ErrorDescription
		}
	}
	return fe
}

// AsFetchError extrae un *FetchError de la cadena de errores.
func AsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	ok := errors.As(err, &fe)
	return fe, ok
}

// IsStatus verifica si err es un FetchError con ese status.
func IsStatus(err error, status int) bool {
	fe, ok := AsFetchError(err)
	return ok && fe.Status == status
}

// IsNotFound verifica 404.
func IsNotFound(err error) bool { return IsStatus(err, http.StatusNotFound) }

// IsUnauthorized verifica 401.
func IsUnauthorized(err error) bool { return IsStatus(err, http.StatusUnauthorized) }

// IsForbidden verifica 403.
func IsForbidden(err error) bool { return IsStatus(err, http.StatusForbidden) }
