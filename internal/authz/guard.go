// Package authz decide el acceso a vistas protegidas antes de
// renderizarlas. La decisión es tri-estado: concedida, denegada con
// redirect, o pendiente mientras la identidad todavía se resuelve.
package authz

import "github.com/dropDatabas3/bookly/internal/identity"

// Rutas de redirección para decisiones denegadas.
const (
	RouteLogin = "/login"
	RouteHome  = "/"
)

// RoleAdmin re-exporta el nombre del rol de moderación.
const RoleAdmin = identity.RoleAdmin

// State clasifica el resultado de evaluar un requisito.
type State int

const (
	// Granted habilita renderizar la vista protegida.
	Granted State = iota
	// DeniedRedirect niega el acceso y lleva RedirectTo.
	DeniedRedirect
	// Pending indica que hay credencial pero la identidad todavía no
	// se resolvió; no se renderiza ni se redirige aún.
	Pending
)

// Decision es el veredicto del guard para una vista.
type Decision struct {
	State      State
	RedirectTo string
}

func granted() Decision            { return Decision{State: Granted} }
func denied(route string) Decision { return Decision{State: DeniedRedirect, RedirectTo: route} }
func pending() Decision            { return Decision{State: Pending} }

// Requirement describe qué exige una vista protegida.
type Requirement struct {
	// AdminOnly exige el rol de moderación.
	AdminOnly bool
	// OwnerID, si es > 0, concede también al dueño del recurso.
	OwnerID int64
}

// RequireAuthenticated exige solamente una sesión resuelta.
func RequireAuthenticated() Requirement {
	return Requirement{}
}

// RequireAdmin exige el rol de moderación.
func RequireAdmin() Requirement {
	return Requirement{AdminOnly: true}
}

// RequireOwnerOrAdmin concede al dueño del recurso o a un admin.
func RequireOwnerOrAdmin(ownerID int64) Requirement {
	return Requirement{AdminOnly: true, OwnerID: ownerID}
}

// Evaluate aplica el requisito a la identidad actual.
//
// Sin credencial el veredicto es siempre redirect a login, sin importar
// el requisito. Con credencial pero identidad sin resolver (ident nil)
// el veredicto es Pending: el caller decide si espera o degrada. Las
// denegaciones por rol redirigen a home, no a login — el usuario ya
// está autenticado.
func Evaluate(req Requirement, ident *identity.Identity, hasCredential bool) Decision {
	if !hasCredential {
		return denied(RouteLogin)
	}
	if ident == nil {
		return pending()
	}
	if req.AdminOnly {
		if ident.IsAdmin() {
			return granted()
		}
		if req.OwnerID > 0 && ident.Owns(req.OwnerID) {
			return granted()
		}
		return denied(RouteHome)
	}
	return granted()
}
