package session

import (
	"context"
	"os"
	"strings"

	"github.com/dropDatabas3/bookly/internal/util/atomicwrite"
)

// fileStore persiste el token en un archivo con permisos 0600.
// La escritura es atómica: nunca queda un token a medio escribir.
type fileStore struct {
	path string
}

// NewFile crea un Store respaldado por el archivo en path.
func NewFile(path string) Store {
	return &fileStore{path: path}
}

func (s *fileStore) Set(ctx context.Context, token string) error {
	return atomicwrite.WriteFile(s.path, []byte(token+"\n"), 0o600)
}

func (s *fileStore) Get(ctx context.Context) (string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoToken
		}
		return "", err
	}
	token := strings.TrimSpace(string(b))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

func (s *fileStore) Clear(ctx context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
