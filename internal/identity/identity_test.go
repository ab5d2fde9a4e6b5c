package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	jwtv5 "github.com/golang-jwt/jwt/v5"

	"github.com/dropDatabas3/bookly/internal/api"
	"github.com/dropDatabas3/bookly/internal/session"
)

func testToken(t *testing.T, email string, roles []string) string {
	t.Helper()
	tok, err := jwtv5.NewWithClaims(jwtv5.SigningMethodHS512, jwtv5.MapClaims{
		"sub":   email,
		"roles": roles,
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}
	return tok
}

func backend(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/user/by-email" {
			t.Errorf("path inesperado %s", r.URL.Path)
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCurrentSinToken(t *testing.T) {
	srv := backend(t, http.StatusOK, `{}`)
	r := NewResolver(api.New(srv.URL, "pl", nil))

	ident, hasCred, err := r.Current(context.Background(), session.NewMemory())
	if ident != nil || hasCred || err != nil {
		t.Errorf("Current = %v, %v, %v; quería anónimo limpio", ident, hasCred, err)
	}
}

func TestCurrentTokenMalformado(t *testing.T) {
	srv := backend(t, http.StatusOK, `{}`)
	r := NewResolver(api.New(srv.URL, "pl", nil))

	store := session.NewMemory()
	_ = store.Set(context.Background(), "garbage-not-a-jwt")

	ident, hasCred, err := r.Current(context.Background(), store)
	if ident != nil || hasCred || err != nil {
		t.Errorf("token malformado = %v, %v, %v; quería anónimo limpio", ident, hasCred, err)
	}
}

func TestCurrentResuelto(t *testing.T) {
	srv := backend(t, http.StatusOK,
		`{"id":7,"firstName":"Anna","lastName":"Kowalska","email":"anna@example.pl","balance":120.5,"rating":4}`)
	store := session.NewMemory()
	_ = store.Set(context.Background(), testToken(t, "anna@example.pl", []string{"ROLE_USER", "ROLE_ADMIN"}))

	r := NewResolver(api.New(srv.URL, "pl", store))
	ident, hasCred, err := r.Current(context.Background(), store)
	if err != nil || !hasCred {
		t.Fatalf("Current: %v, hasCred=%v", err, hasCred)
	}
	if ident.ID != 7 || ident.Email != "anna@example.pl" || ident.Balance != 120.5 {
		t.Errorf("ident = %+v", ident)
	}
	// los roles vienen de las claims, no del perfil
	if !ident.IsAdmin() {
		t.Error("IsAdmin = false")
	}
	if !ident.Owns(7) || ident.Owns(8) {
		t.Error("Owns incorrecto")
	}
}

func TestCurrentResolucionFallida(t *testing.T) {
	srv := backend(t, http.StatusInternalServerError, `{"message":"boom"}`)
	store := session.NewMemory()
	_ = store.Set(context.Background(), testToken(t, "anna@example.pl", nil))

	r := NewResolver(api.New(srv.URL, "pl", store))
	ident, hasCred, err := r.Current(context.Background(), store)
	// hay credencial pero no identidad: el caller decide cómo degradar
	if ident != nil || !hasCred || err == nil {
		t.Errorf("Current = %v, %v, %v", ident, hasCred, err)
	}
}

func TestIsAdminNil(t *testing.T) {
	var ident *Identity
	if ident.IsAdmin() || ident.Owns(1) {
		t.Error("nil identity no debería conceder nada")
	}
}
