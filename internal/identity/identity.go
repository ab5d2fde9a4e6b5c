// Package identity resuelve la credencial de sesión al registro
// canónico del usuario. La resolución es por vista: una llamada, sin
// retry, sin cache (el backend es la fuente de verdad).
package identity

import (
	"context"

	"github.com/dropDatabas3/bookly/internal/api"
	"github.com/dropDatabas3/bookly/internal/session"
)

// RoleAdmin es el nombre de rol que habilita moderación.
const RoleAdmin = "ROLE_ADMIN"

// Identity es el usuario resuelto: el registro del backend más los
// roles que vienen en las claims de la credencial.
type Identity struct {
	ID                int64
	Email             string
	FirstName         string
	LastName          string
	Roles             []string
	Balance           float64
	Rating            int
	Description       string
	ProfilePictureURL string
}

// IsAdmin verifica el rol de moderación.
func (i *Identity) IsAdmin() bool {
	if i == nil {
		return false
	}
	for _, r := range i.Roles {
		if r == RoleAdmin {
			return true
		}
	}
	return false
}

// Owns verifica si la identidad es dueña del recurso con ese owner id.
func (i *Identity) Owns(ownerID int64) bool {
	return i != nil && i.ID == ownerID
}

// Resolver resuelve emails decodificados a identidades vía backend.
type Resolver struct {
	api *api.Client
}

// NewResolver crea un Resolver sobre el cliente dado.
func NewResolver(c *api.Client) *Resolver {
	return &Resolver{api: c}
}

// ResolveByEmail emite exactamente un request y no reintenta. Los
// callers degradan cualquier error a "anónimo" en vez de propagarlo
// como fatal (igual que las vistas originales, que dejan la identidad
// en null si el fetch de perfil falla).
func (r *Resolver) ResolveByEmail(ctx context.Context, email string, roles []string) (*Identity, error) {
	u, err := r.api.UserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return fromUser(u, email, roles), nil
}

// Current resuelve la identidad de la sesión activa leyendo el token
// del Store. Retorna (identidad, hayCredencial, error):
//   - sin token o token malformado: (nil, false, nil) — anónimo
//   - con token pero resolución fallida: (nil, true, err)
//   - resuelta: (ident, true, nil)
func (r *Resolver) Current(ctx context.Context, tokens session.Store) (*Identity, bool, error) {
	token, err := tokens.Get(ctx)
	if err != nil {
		return nil, false, nil
	}
	claims, err := session.DecodeClaims(token)
	if err != nil {
		// credencial malformada == no autenticado
		return nil, false, nil
	}
	ident, err := r.ResolveByEmail(ctx, claims.Subject, claims.Roles)
	if err != nil {
		return nil, true, err
	}
	return ident, true, nil
}

func fromUser(u *api.UserDTO, email string, roles []string) *Identity {
	if u.Email != "" {
		email = u.Email
	}
	return &Identity{
		ID:                u.ID,
		Email:             email,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Roles:             roles,
		Balance:           u.Balance,
		Rating:            u.Rating,
		Description:       u.Description,
		ProfilePictureURL: u.ProfilePictureURL,
	}
}
