// Package session maneja la credencial de sesión del cliente: dónde se
// persiste (Store) y cómo se extraen sus claims sin tocar la red
// (DecodeClaims).
//
// Soporta:
//   - file (default: sobrevive reinicios del proceso)
//   - memory (tests)
//   - redis (entornos de desarrollo compartidos)
package session

import (
	"context"
	"errors"
)

// ErrNoToken indica que no hay credencial guardada.
var ErrNoToken = errors.New("session: no token stored")

// IsNoToken verifica si el error es ErrNoToken.
func IsNoToken(err error) bool {
	return errors.Is(err, ErrNoToken)
}

// Store persiste la credencial opaca. Se reemplaza entera en cada Set,
// nunca se muta in place.
type Store interface {
	// Set guarda el token, reemplazando cualquier valor anterior.
	Set(ctx context.Context, token string) error

	// Get retorna el token. ErrNoToken si no hay ninguno.
	Get(ctx context.Context) (string, error)

	// Clear elimina el token (logout). Idempotente.
	Clear(ctx context.Context) error
}

// Config configuración para crear un Store.
type Config struct {
	Driver   string // "file" | "memory" | "redis"
	Path     string // driver file
	Addr     string // driver redis
	Password string
	DB       int
	Prefix   string
}

// New crea un Store según la configuración.
func New(cfg Config) (Store, error) {
	switch cfg.Driver {
	case "redis":
		return newRedisStore(cfg)
	case "memory":
		return NewMemory(), nil
	case "file", "":
		return NewFile(cfg.Path), nil
	default:
		return NewFile(cfg.Path), nil
	}
}
