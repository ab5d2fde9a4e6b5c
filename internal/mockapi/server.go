package mockapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server es el backend mock: superficie REST del marketplace sobre un
// Store en memoria.
type Server struct {
	store  *Store
	tokens *TokenIssuer
}

// New arma un Server con el store e issuer dados.
func New(store *Store, tokens *TokenIssuer) *Server {
	return &Server{store: store, tokens: tokens}
}

// Router arma el router chi con toda la superficie del marketplace.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(withRequestID, withLanguage, withAccessLog)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/register", s.handleRegister)

		r.Get("/user/me", s.requireAuth(s.handleMe))
		r.Get("/user/by-email", s.requireAuth(s.handleUserByEmail))
		r.Get("/user/{id}", s.handleUserByID)
		r.Put("/user/{id}", s.requireAuth(s.handleUpdateUser))

		r.Get("/books", s.handleListBooks)
		r.Get("/books/{id}", s.handleGetBook)
		r.Post("/books", s.requireAuth(s.handleCreateBook))
		r.Put("/books/{id}", s.requireAuth(s.handleUpdateBook))
		r.Delete("/books/{id}", s.requireAuth(s.handleDeleteBook))

		r.Post("/transactions", s.requireAuth(s.handleCreateTransaction))
		r.Get("/transactions/bought", s.requireAuth(s.handleBought))
		r.Get("/transactions/sold", s.requireAuth(s.handleSold))

		r.Get("/withdrawals", s.requireAuth(s.handleListWithdrawals))
		r.Post("/withdrawals", s.requireAuth(s.handleCreateWithdrawal))

		r.Get("/admin/users", s.requireAdmin(s.handleAdminUsers))
		r.Get("/admin/books", s.requireAdmin(s.handleAdminBooks))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "error.network")
	})
	return r
}
