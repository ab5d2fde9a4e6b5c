package mockapi

import (
	"testing"
	"time"
)

func TestTokenSignParse(t *testing.T) {
	iss := NewTokenIssuer("secret", time.Hour)
	tok, err := iss.Sign(User{Email: "anna@example.pl", Roles: []string{"ROLE_USER"}})
	if err != nil {
		t.Fatal(err)
	}
	email, err := iss.Parse(tok)
	if err != nil || email != "anna@example.pl" {
		t.Fatalf("Parse = %q, %v", email, err)
	}
}

func TestTokenOtraClave(t *testing.T) {
	a := NewTokenIssuer("clave-a", time.Hour)
	b := NewTokenIssuer("clave-b", time.Hour)
	tok, err := a.Sign(User{Email: "anna@example.pl"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.Parse(tok); err != ErrToken {
		t.Errorf("firma ajena: err = %v, quería ErrToken", err)
	}
}

func TestTokenVencido(t *testing.T) {
	iss := NewTokenIssuer("secret", -2*time.Minute) // vence en el pasado, fuera del leeway
	tok, err := iss.Sign(User{Email: "anna@example.pl"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := iss.Parse(tok); err != ErrToken {
		t.Errorf("vencido: err = %v, quería ErrToken", err)
	}
}

func TestTokenBasura(t *testing.T) {
	iss := NewTokenIssuer("secret", time.Hour)
	for _, in := range []string{"", "x", "a.b.c"} {
		if _, err := iss.Parse(in); err != ErrToken {
			t.Errorf("Parse(%q) = %v", in, err)
		}
	}
}
