package authz

import (
	"testing"

	"github.com/dropDatabas3/bookly/internal/identity"
)

func user(id int64, roles ...string) *identity.Identity {
	return &identity.Identity{ID: id, Email: "u@example.pl", Roles: roles}
}

func TestEvaluateSinCredencial(t *testing.T) {
	// sin credencial todo requisito redirige a login
	reqs := []Requirement{
		RequireAuthenticated(),
		RequireAdmin(),
		RequireOwnerOrAdmin(42),
	}
	for _, req := range reqs {
		d := Evaluate(req, nil, false)
		if d.State != DeniedRedirect || d.RedirectTo != RouteLogin {
			t.Errorf("Evaluate(%+v) = %+v, quería redirect a login", req, d)
		}
	}
}

func TestEvaluatePendiente(t *testing.T) {
	d := Evaluate(RequireAuthenticated(), nil, true)
	if d.State != Pending {
		t.Errorf("con credencial sin identidad = %+v, quería Pending", d)
	}
	d = Evaluate(RequireAdmin(), nil, true)
	if d.State != Pending {
		t.Errorf("admin pendiente = %+v", d)
	}
}

func TestEvaluateAutenticado(t *testing.T) {
	d := Evaluate(RequireAuthenticated(), user(7, "ROLE_USER"), true)
	if d.State != Granted {
		t.Errorf("usuario común = %+v, quería Granted", d)
	}
}

func TestEvaluateAdmin(t *testing.T) {
	if d := Evaluate(RequireAdmin(), user(7, "ROLE_USER"), true); d.State != DeniedRedirect || d.RedirectTo != RouteHome {
		t.Errorf("no-admin = %+v, quería redirect a home", d)
	}
	if d := Evaluate(RequireAdmin(), user(1, "ROLE_USER", "ROLE_ADMIN"), true); d.State != Granted {
		t.Errorf("admin = %+v, quería Granted", d)
	}
}

func TestEvaluateOwnerOrAdmin(t *testing.T) {
	// el dueño accede aunque no sea admin
	if d := Evaluate(RequireOwnerOrAdmin(7), user(7, "ROLE_USER"), true); d.State != Granted {
		t.Errorf("dueño = %+v, quería Granted", d)
	}
	// otro usuario no
	if d := Evaluate(RequireOwnerOrAdmin(42), user(7, "ROLE_USER"), true); d.State != DeniedRedirect || d.RedirectTo != RouteHome {
		t.Errorf("no dueño = %+v, quería redirect a home", d)
	}
	// un admin accede a lo de cualquiera
	if d := Evaluate(RequireOwnerOrAdmin(42), user(1, "ROLE_ADMIN"), true); d.State != Granted {
		t.Errorf("admin sobre recurso ajeno = %+v, quería Granted", d)
	}
}
