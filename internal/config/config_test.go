package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if c.App.Env != "dev" || c.Log.Level != "info" {
		t.Errorf("defaults app/log: %+v", c)
	}
	if c.API.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %q", c.API.BaseURL)
	}
	if c.UI.Language != "pl" || c.UI.PageSize != 10 {
		t.Errorf("defaults ui: %+v", c.UI)
	}
	if c.Session.Driver != "file" || c.Session.Path == "" {
		t.Errorf("defaults session: %+v", c.Session)
	}
	if c.APITimeout() != 30*time.Second {
		t.Errorf("APITimeout = %v", c.APITimeout())
	}
	if c.TokenTTL() != 24*time.Hour {
		t.Errorf("TokenTTL = %v", c.TokenTTL())
	}
}

func TestLoadArchivoInexistenteNoEsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "no-existe.yaml")); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookly.yaml")
	data := []byte(`
app:
  env: prod
api:
  base_url: https://api.bookly.pl
  timeout: 5s
ui:
  language: en
  page_size: 25
session:
  driver: memory
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.App.Env != "prod" || c.API.BaseURL != "https://api.bookly.pl" {
		t.Errorf("yaml: %+v", c)
	}
	if c.APITimeout() != 5*time.Second {
		t.Errorf("APITimeout = %v", c.APITimeout())
	}
	if c.UI.Language != "en" || c.UI.PageSize != 25 || c.Session.Driver != "memory" {
		t.Errorf("yaml ui/session: %+v", c)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BOOKLY_API_URL", "http://mock:9999")
	t.Setenv("BOOKLY_LANG", "en")
	t.Setenv("BOOKLY_PAGE_SIZE", "5")

	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if c.API.BaseURL != "http://mock:9999" {
		t.Errorf("BaseURL = %q", c.API.BaseURL)
	}
	if c.UI.Language != "en" || c.UI.PageSize != 5 {
		t.Errorf("env ui: %+v", c.UI)
	}
}

func TestTimeoutInvalidoCaeAlDefault(t *testing.T) {
	c := &Config{}
	c.API.Timeout = "no-es-duracion"
	if c.APITimeout() != 30*time.Second {
		t.Errorf("APITimeout = %v", c.APITimeout())
	}
}
