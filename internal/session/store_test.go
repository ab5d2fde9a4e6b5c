package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "token")
	s := NewFile(path)

	if _, err := s.Get(ctx); !IsNoToken(err) {
		t.Fatalf("Get sin token: err = %v, quería ErrNoToken", err)
	}

	if err := s.Set(ctx, "token-uno"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.Get(ctx)
	if err != nil || got != "token-uno" {
		t.Fatalf("Get = %q, %v", got, err)
	}

	// Set reemplaza el valor entero
	if err := s.Set(ctx, "token-dos"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, _ := s.Get(ctx); got != "token-dos" {
		t.Fatalf("Get después de reemplazo = %q", got)
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := s.Get(ctx); !IsNoToken(err) {
		t.Fatalf("Get después de Clear: err = %v", err)
	}
	// Clear es idempotente
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear repetido: %v", err)
	}
}

func TestFileStorePermisos(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s := NewFile(path)
	if err := s.Set(context.Background(), "secreto"); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("permisos = %o, quería 600", perm)
	}
}

func TestFileStoreArchivoVacio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(path, []byte("  \n"), 0o600); err != nil {
		t.Fatal(err)
	}
	s := NewFile(path)
	if _, err := s.Get(context.Background()); !IsNoToken(err) {
		t.Fatalf("archivo en blanco: err = %v, quería ErrNoToken", err)
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	if _, err := s.Get(ctx); !IsNoToken(err) {
		t.Fatalf("Get sin token: err = %v", err)
	}
	if err := s.Set(ctx, "abc"); err != nil {
		t.Fatal(err)
	}
	if got, _ := s.Get(ctx); got != "abc" {
		t.Fatalf("Get = %q", got)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(ctx); !IsNoToken(err) {
		t.Fatalf("después de Clear: err = %v", err)
	}
}

func TestNewEligeDriver(t *testing.T) {
	s, err := New(Config{Driver: "memory"})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*memStore); !ok {
		t.Errorf("New(memory) = %T", s)
	}

	s, err = New(Config{Driver: "", Path: filepath.Join(t.TempDir(), "tok")})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*fileStore); !ok {
		t.Errorf("New(default) = %T", s)
	}
}
