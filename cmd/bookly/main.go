// bookly es la CLI del marketplace de libros usados: sesión, catálogo,
// checkout, historial y moderación contra el backend REST.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dropDatabas3/bookly/internal/api"
	"github.com/dropDatabas3/bookly/internal/authz"
	"github.com/dropDatabas3/bookly/internal/config"
	"github.com/dropDatabas3/bookly/internal/i18n"
	"github.com/dropDatabas3/bookly/internal/identity"
	"github.com/dropDatabas3/bookly/internal/observability/logger"
	"github.com/dropDatabas3/bookly/internal/session"
)

// app junta las dependencias que comparten todos los comandos.
type app struct {
	cfg    *config.Config
	tokens session.Store
	api    *api.Client
	idents *identity.Resolver
	lang   string
}

func newApp(cfgPath string) (*app, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	logger.Init(logger.Config{
		Env:         cfg.App.Env,
		Level:       cfg.Log.Level,
		ServiceName: "bookly",
	})

	store, err := session.New(session.Config{
		Driver:   cfg.Session.Driver,
		Path:     cfg.Session.Path,
		Addr:     cfg.Session.Redis.Addr,
		Password: cfg.Session.Redis.Password,
		DB:       cfg.Session.Redis.DB,
		Prefix:   cfg.Session.Redis.Prefix,
	})
	if err != nil {
		return nil, err
	}

	lang := i18n.Normalize(cfg.UI.Language)
	client := api.New(cfg.API.BaseURL, lang, store)
	client.HTTP.Timeout = cfg.APITimeout()
	_ = api.RegisterMetrics(nil)

	return &app{
		cfg:    cfg,
		tokens: store,
		api:    client,
		idents: identity.NewResolver(client),
		lang:   lang,
	}, nil
}

// t localiza una key del catálogo en el idioma configurado.
func (a *app) t(key string, args ...any) string {
	return i18n.T(a.lang, key, args...)
}

// guard evalúa el requisito de acceso antes de correr un comando
// protegido. Si la identidad no se puede resolver degrada a anónimo,
// igual que la UI cuando el fetch de perfil falla.
func (a *app) guard(ctx context.Context, req authz.Requirement) (*identity.Identity, error) {
	ident, hasCred, err := a.idents.Current(ctx, a.tokens)
	if err != nil {
		ident, hasCred = nil, false
	}
	d := authz.Evaluate(req, ident, hasCred)
	switch d.State {
	case authz.Granted:
		return ident, nil
	case authz.DeniedRedirect:
		if d.RedirectTo == authz.RouteLogin {
			return nil, errors.New(a.t("error.loginRequired"))
		}
		return nil, errors.New(a.t("error.forbidden"))
	default:
		// Pending no aplica en CLI síncrona: ya degradamos arriba
		return nil, errors.New(a.t("error.network"))
	}
}

// apiMessage traduce un FetchError a su mensaje para el usuario.
func (a *app) apiMessage(err error) string {
	if fe, ok := api.AsFetchError(err); ok && fe.Message != "" {
		return fe.Message
	}
	return a.t("error.network")
}

func main() {
	_ = godotenv.Load()

	var cfgPath string
	var a *app

	root := &cobra.Command{
		Use:           "bookly",
		Short:         "CLI del marketplace de libros usados",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = newApp(cfgPath)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", envOr("BOOKLY_CONFIG", ""), "Ruta del YAML de configuración (env BOOKLY_CONFIG)")

	root.AddCommand(
		newLoginCmd(&a),
		newRegisterCmd(&a),
		newLogoutCmd(&a),
		newWhoamiCmd(&a),
		newBooksCmd(&a),
		newOrderCmd(&a),
		newHistoryCmd(&a),
		newWithdrawCmd(&a),
		newProfileCmd(&a),
		newAdminCmd(&a),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
