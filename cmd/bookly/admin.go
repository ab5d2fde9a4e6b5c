package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dropDatabas3/bookly/internal/authz"
	"github.com/dropDatabas3/bookly/internal/view"
)

func newAdminCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Moderación (requiere rol admin)",
	}
	cmd.AddCommand(newAdminUsersCmd(a), newAdminBooksCmd(a))
	return cmd
}

func newAdminUsersCmd(a **app) *cobra.Command {
	var page int
	var search string
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Listar usuarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := *a
			if _, err := app.guard(cmd.Context(), authz.RequireAdmin()); err != nil {
				return err
			}
			pager := view.Pager{Index: page - 1}.Clamp()
			p, err := app.api.AdminUsers(cmd.Context(), pager.Index, app.cfg.UI.PageSize, search)
			if err != nil {
				return errors.New(app.apiMessage(err))
			}
			if p.Empty() {
				fmt.Println("(sin resultados)")
				return nil
			}
			for _, u := range p.Content {
				fmt.Printf("#%d %s %s <%s> balance=%.2f rating=%d\n",
					u.ID, u.FirstName, u.LastName, u.Email, u.Balance, u.Rating)
			}
			fmt.Printf("página %d de %d\n", p.DisplayPage(), p.TotalPages)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "Página (desde 1)")
	cmd.Flags().StringVar(&search, "search", "", "Buscar por nombre, apellido o email")
	return cmd
}

func newAdminBooksCmd(a **app) *cobra.Command {
	var page int
	var search string
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Listar el catálogo completo (incluye vendidos)",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := *a
			if _, err := app.guard(cmd.Context(), authz.RequireAdmin()); err != nil {
				return err
			}
			pager := view.Pager{Index: page - 1}.Clamp()
			p, err := app.api.AdminBooks(cmd.Context(), pager.Index, app.cfg.UI.PageSize, search)
			if err != nil {
				return errors.New(app.apiMessage(err))
			}
			printBooksPage(p)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "Página (desde 1)")
	cmd.Flags().StringVar(&search, "search", "", "Buscar por título")
	return cmd
}
