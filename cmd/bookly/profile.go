package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dropDatabas3/bookly/internal/api"
	"github.com/dropDatabas3/bookly/internal/authz"
)

func newProfileCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Perfil de usuario",
	}
	cmd.AddCommand(newProfileShowCmd(a), newProfileEditCmd(a))
	return cmd
}

func newProfileShowCmd(a **app) *cobra.Command {
	var userID int64
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Ver un perfil (el propio por defecto)",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := *a
			if userID > 0 {
				// perfil público de otro usuario
				u, err := app.api.UserByID(cmd.Context(), userID)
				if err != nil {
					return errors.New(app.apiMessage(err))
				}
				printProfile(u)
				return nil
			}
			if _, err := app.guard(cmd.Context(), authz.RequireAuthenticated()); err != nil {
				return err
			}
			u, err := app.api.Me(cmd.Context())
			if err != nil {
				return errors.New(app.apiMessage(err))
			}
			printProfile(u)
			return nil
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "Ver el perfil público de otro usuario (id)")
	return cmd
}

func printProfile(u *api.UserDTO) {
	fmt.Printf("%s %s", u.FirstName, u.LastName)
	if u.Email != "" {
		fmt.Printf(" <%s>", u.Email)
	}
	fmt.Println()
	fmt.Printf("id=%d rating=%d", u.ID, u.Rating)
	if u.Email != "" {
		// el saldo solo viene en el perfil propio
		fmt.Printf(" balance=%.2f zł", u.Balance)
	}
	fmt.Println()
	if u.Description != "" {
		fmt.Println(u.Description)
	}
}

func newProfileEditCmd(a **app) *cobra.Command {
	var first, last, description, image string
	var balance float64
	var rating int
	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Editar el perfil propio (admins pueden editar otros)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := *a
			ident, err := app.guard(cmd.Context(), authz.RequireAuthenticated())
			if err != nil {
				return err
			}
			targetID := ident.ID
			if len(args) == 1 {
				targetID, err = parseID(args[0])
				if err != nil {
					return err
				}
			}
			if targetID != ident.ID {
				if _, err := app.guard(cmd.Context(), authz.RequireAdmin()); err != nil {
					return err
				}
			}

			var upd api.ProfileUpdate
			if cmd.Flags().Changed("first-name") {
				upd.FirstName = &first
			}
			if cmd.Flags().Changed("last-name") {
				upd.LastName = &last
			}
			if cmd.Flags().Changed("description") {
				upd.Description = &description
			}
			// balance y rating viajan solo si el backend los va a aceptar
			if ident.IsAdmin() {
				if cmd.Flags().Changed("balance") {
					upd.Balance = &balance
				}
				if cmd.Flags().Changed("rating") {
					upd.Rating = &rating
				}
			}
			if image != "" {
				fh, err := os.Open(image)
				if err != nil {
					return err
				}
				defer fh.Close()
				upd.ImageName = filepath.Base(image)
				upd.Image = fh
			}

			u, err := app.api.UpdateProfile(cmd.Context(), targetID, upd)
			if err != nil {
				return errors.New(app.apiMessage(err))
			}
			printProfile(u)
			return nil
		},
	}
	cmd.Flags().StringVar(&first, "first-name", "", "Nombre")
	cmd.Flags().StringVar(&last, "last-name", "", "Apellido")
	cmd.Flags().StringVar(&description, "description", "", "Descripción del perfil")
	cmd.Flags().StringVar(&image, "image", "", "Ruta de la foto de perfil")
	cmd.Flags().Float64Var(&balance, "balance", 0, "Saldo (solo admin)")
	cmd.Flags().IntVar(&rating, "rating", 0, "Calificación (solo admin)")
	return cmd
}
