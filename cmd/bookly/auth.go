package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dropDatabas3/bookly/internal/authz"
	"github.com/dropDatabas3/bookly/internal/observability/logger"
	"github.com/dropDatabas3/bookly/internal/validation"
)

// formError arma un error con los mensajes localizados de un form
// inválido, un campo por línea.
func formError(a *app, errs validation.Errors, order []string) error {
	msg := ""
	for _, f := range order {
		if key, ok := errs[f]; ok {
			if msg != "" {
				msg += "\n"
			}
			msg += f + ": " + a.t(key)
		}
	}
	return errors.New(msg)
}

func newLoginCmd(a **app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Iniciar sesión y persistir la credencial",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := *a
			if errs := validation.ValidateLogin(email, password); !errs.OK() {
				return formError(app, errs, []string{"email", "password"})
			}
			token, err := app.api.Login(cmd.Context(), email, password)
			if err != nil {
				return errors.New(app.apiMessage(err))
			}
			// reemplaza cualquier sesión anterior
			if err := app.tokens.Set(cmd.Context(), token); err != nil {
				return err
			}
			logger.Named("cli").Info("session started", logger.Email(email))
			fmt.Println("ok")
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Email de la cuenta")
	cmd.Flags().StringVar(&password, "password", "", "Contraseña")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(a **app) *cobra.Command {
	var first, last, email, password, confirm string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Crear una cuenta nueva",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := *a
			errs := validation.ValidateRegistration(first, last, email, password, confirm)
			if !errs.OK() {
				return formError(app, errs, []string{"firstName", "lastName", "email", "password", "confirmPassword"})
			}
			msg, err := app.api.Register(cmd.Context(), first, last, email, password)
			if err != nil {
				return errors.New(app.apiMessage(err))
			}
			if msg == "" {
				msg = app.t("auth.registration.success")
			}
			fmt.Println(msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&first, "first-name", "", "Nombre")
	cmd.Flags().StringVar(&last, "last-name", "", "Apellido")
	cmd.Flags().StringVar(&email, "email", "", "Email")
	cmd.Flags().StringVar(&password, "password", "", "Contraseña (mínimo 6 caracteres)")
	cmd.Flags().StringVar(&confirm, "confirm-password", "", "Confirmación de contraseña")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("confirm-password")
	return cmd
}

func newLogoutCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cerrar la sesión local",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := *a
			if err := app.tokens.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("ok")
			return nil
		},
	}
}

func newWhoamiCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Mostrar la identidad de la sesión activa",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := *a
			ident, err := app.guard(cmd.Context(), authz.RequireAuthenticated())
			if err != nil {
				return err
			}
			fmt.Printf("%s %s <%s>\n", ident.FirstName, ident.LastName, ident.Email)
			fmt.Printf("id=%d balance=%.2f rating=%d\n", ident.ID, ident.Balance, ident.Rating)
			if ident.IsAdmin() {
				fmt.Println("roles: admin")
			}
			return nil
		},
	}
}
