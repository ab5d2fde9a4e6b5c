package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dropDatabas3/bookly/internal/api"
	"github.com/dropDatabas3/bookly/internal/authz"
	"github.com/dropDatabas3/bookly/internal/view"
)

func newHistoryCmd(a **app) *cobra.Command {
	var page int
	var userID int64
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Historial de compras y ventas",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := *a
			// ver el historial de otro usuario es solo para admins
			req := authz.RequireAuthenticated()
			if userID > 0 {
				req = authz.RequireOwnerOrAdmin(userID)
			}
			if _, err := app.guard(cmd.Context(), req); err != nil {
				return err
			}

			pager := view.Pager{Index: page - 1}.Clamp()
			size := app.cfg.UI.PageSize

			// compras y ventas en paralelo; el error de una no tira la otra,
			// cada lista degrada a vacía por su cuenta
			var bought, sold api.Page[api.TransactionDTO]
			var boughtErr, soldErr error
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				bought, boughtErr = app.api.ListBought(ctx, pager.Index, size, userID)
				return nil
			})
			g.Go(func() error {
				sold, soldErr = app.api.ListSold(ctx, pager.Index, size, userID)
				return nil
			})
			_ = g.Wait()

			if boughtErr != nil && soldErr != nil {
				return errors.New(app.apiMessage(boughtErr))
			}

			fmt.Println("== compras ==")
			printHistoryPage(bought, boughtErr, app)
			fmt.Println("== ventas ==")
			printHistoryPage(sold, soldErr, app)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "Página (desde 1)")
	cmd.Flags().Int64Var(&userID, "user", 0, "Historial de otro usuario (solo admin)")
	return cmd
}

func printHistoryPage(p api.Page[api.TransactionDTO], err error, app *app) {
	if err != nil {
		fmt.Println(app.apiMessage(err))
		return
	}
	if p.Empty() {
		fmt.Println("(sin resultados)")
		return
	}
	for _, t := range p.Content {
		fmt.Printf("#%d %q · %.2f zł · %s\n",
			t.ID, t.Book.Title, t.Price, t.Timestamp.Format("2006-01-02 15:04"))
	}
	fmt.Printf("página %d de %d\n", p.DisplayPage(), p.TotalPages)
}
