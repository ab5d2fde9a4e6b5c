package mockapi

import (
	"encoding/json"
	"net/http"

	"github.com/dropDatabas3/bookly/internal/i18n"
	"github.com/dropDatabas3/bookly/internal/observability/logger"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.L().Warn("encode response", zap.Error(err))
	}
}

func localized(r *http.Request, key string, args ...any) string {
	return i18n.T(langFrom(r), key, args...)
}

// writeError responde {"message": <texto localizado>}, el shape que el
// frontend original espera en errores. key es una key de i18n.
func writeError(w http.ResponseWriter, r *http.Request, status int, key string, args ...any) {
	writeJSON(w, status, map[string]string{"message": localized(r, key, args...)})
}

// writeMessage responde {"message": ...} con status 2xx.
func writeMessage(w http.ResponseWriter, r *http.Request, status int, key string, args ...any) {
	writeError(w, r, status, key, args...)
}

func readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, "error.network")
		return false
	}
	return true
}
