package mockapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dropDatabas3/bookly/internal/i18n"
	"github.com/dropDatabas3/bookly/internal/observability/logger"
)

type ctxKey int

const (
	ctxLang ctxKey = iota
	ctxUser
)

func langFrom(r *http.Request) string {
	if v, ok := r.Context().Value(ctxLang).(string); ok {
		return v
	}
	return i18n.LangPL
}

func userFrom(r *http.Request) (User, bool) {
	u, ok := r.Context().Value(ctxUser).(User)
	return u, ok
}

// withRequestID garantiza un X-Request-ID en request y response.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", rid)
		next.ServeHTTP(w, r)
	})
}

// withLanguage negocia el idioma del request y lo deja en el contexto.
func withLanguage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := i18n.Match(r.Header.Get("Accept-Language"))
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxLang, lang)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// withAccessLog loguea método, endpoint, status y duración.
func withAccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Named("mockapi").Info("request",
			logger.RequestID(w.Header().Get("X-Request-ID")),
			logger.Method(r.Method),
			logger.Endpoint(r.URL.Path),
			logger.Status(rec.status),
			logger.Duration(time.Since(start)),
		)
	})
}

// requireAuth valida el bearer token y carga el usuario en contexto.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			writeError(w, r, http.StatusUnauthorized, "auth.unauthorized")
			return
		}
		email, err := s.tokens.Parse(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			writeError(w, r, http.StatusUnauthorized, "auth.unauthorized")
			return
		}
		u, ok := s.store.UserByEmail(email)
		if !ok {
			writeError(w, r, http.StatusUnauthorized, "auth.unauthorized")
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), ctxUser, u)))
	}
}

// requireAdmin exige además el rol de moderación.
func (s *Server) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return s.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		u, _ := userFrom(r)
		if !u.IsAdmin() {
			writeError(w, r, http.StatusForbidden, "auth.forbidden")
			return
		}
		next(w, r)
	})
}
