package session

import (
	"testing"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

func signHS512(t *testing.T, claims jwtv5.MapClaims) string {
	t.Helper()
	tok, err := jwtv5.NewWithClaims(jwtv5.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return tok
}

func TestDecodeClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := signHS512(t, jwtv5.MapClaims{
		"sub":   "anna@example.pl",
		"roles": []string{"ROLE_USER", "ROLE_ADMIN"},
		"exp":   exp.Unix(),
	})

	c, err := DecodeClaims(tok)
	if err != nil {
		t.Fatalf("DecodeClaims: %v", err)
	}
	if c.Subject != "anna@example.pl" {
		t.Errorf("Subject = %q", c.Subject)
	}
	if !c.HasRole("ROLE_ADMIN") || !c.HasRole("ROLE_USER") {
		t.Errorf("roles = %v", c.Roles)
	}
	if c.HasRole("ROLE_MODERATOR") {
		t.Error("HasRole inventó un rol")
	}
	if !c.ExpiresAt.Equal(exp) {
		t.Errorf("ExpiresAt = %v, quería %v", c.ExpiresAt, exp)
	}
}

func TestDecodeClaimsSinRolesNiExp(t *testing.T) {
	tok := signHS512(t, jwtv5.MapClaims{"sub": "piotr@example.pl"})
	c, err := DecodeClaims(tok)
	if err != nil {
		t.Fatalf("DecodeClaims: %v", err)
	}
	if len(c.Roles) != 0 {
		t.Errorf("Roles = %v", c.Roles)
	}
	if !c.ExpiresAt.IsZero() {
		t.Errorf("ExpiresAt = %v, quería zero", c.ExpiresAt)
	}
}

func TestDecodeClaimsMalformado(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"no-es-un-jwt",
		"a.b",       // dos segmentos
		"a.b.c.d.e", // demasiados segmentos
		"!!!.###.$$$",
	}
	for _, in := range cases {
		if _, err := DecodeClaims(in); err != ErrDecode {
			t.Errorf("DecodeClaims(%q) err = %v, quería ErrDecode", in, err)
		}
	}

	// firmado pero sin sub: también malformado para nosotros
	tok := signHS512(t, jwtv5.MapClaims{"roles": []string{"ROLE_USER"}})
	if _, err := DecodeClaims(tok); err != ErrDecode {
		t.Errorf("sin sub: err = %v, quería ErrDecode", err)
	}
}

// La decodificación no verifica firma: un token firmado con otra clave
// igual se decodifica. La validación real es del backend.
func TestDecodeClaimsNoVerificaFirma(t *testing.T) {
	tok, err := jwtv5.NewWithClaims(jwtv5.SigningMethodHS512, jwtv5.MapClaims{
		"sub": "anna@example.pl",
	}).SignedString([]byte("otra-clave-cualquiera"))
	if err != nil {
		t.Fatal(err)
	}
	c, err := DecodeClaims(tok)
	if err != nil {
		t.Fatalf("DecodeClaims: %v", err)
	}
	if c.Subject != "anna@example.pl" {
		t.Errorf("Subject = %q", c.Subject)
	}
}
