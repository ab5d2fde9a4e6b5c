package session

import (
	"errors"
	"strings"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

// ErrDecode indica una credencial malformada o no parseable.
// Los callers deben tratarla exactamente igual que "no autenticado".
var ErrDecode = errors.New("session: malformed credential")

// Claims son los datos de identidad embebidos en la credencial.
type Claims struct {
	// Subject es el email del usuario (claim "sub").
	Subject string
	// Roles son los nombres de rol (claim "roles", ej. "ROLE_ADMIN").
	Roles []string
	// ExpiresAt es cero si el token no trae "exp".
	ExpiresAt time.Time
}

// HasRole verifica pertenencia exacta (los roles del backend vienen
// siempre en mayúsculas, tipo ROLE_USER / ROLE_ADMIN).
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// DecodeClaims extrae las claims del token SIN verificar la firma y sin
// tocar la red: el cliente no posee la clave de firma, el backend
// re-valida cada llamada protegida. Cualquier input malformado produce
// ErrDecode, nunca un panic.
func DecodeClaims(token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrDecode
	}

	claims := jwtv5.MapClaims{}
	if _, _, err := jwtv5.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, ErrDecode
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrDecode
	}

	out := &Claims{Subject: sub}

	switch v := claims["roles"].(type) {
	case []any:
		for _, it := range v {
			if s, ok := it.(string); ok && s != "" {
				out.Roles = append(out.Roles, s)
			}
		}
	case []string:
		out.Roles = v
	}

	if expf, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(expf), 0)
	}

	return out, nil
}
