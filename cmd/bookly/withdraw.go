package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dropDatabas3/bookly/internal/authz"
	"github.com/dropDatabas3/bookly/internal/util"
	"github.com/dropDatabas3/bookly/internal/validation"
	"github.com/dropDatabas3/bookly/internal/view"
)

func newWithdrawCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Retiros de saldo",
	}
	cmd.AddCommand(newWithdrawNewCmd(a), newWithdrawListCmd(a))
	return cmd
}

func newWithdrawNewCmd(a **app) *cobra.Command {
	var account, amount string
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Solicitar un retiro",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := *a
			ident, err := app.guard(cmd.Context(), authz.RequireAuthenticated())
			if err != nil {
				return err
			}
			// se valida contra el saldo actual, igual que el form original
			if errs := validation.ValidateWithdrawal(account, amount, ident.Balance); !errs.OK() {
				return formError(app, errs, []string{"accountNumber", "amount"})
			}
			value, _ := validation.ParseAmount(amount)

			wd, err := app.api.CreateWithdrawal(cmd.Context(), validation.ShapeAccount(account), value)
			if err != nil {
				return errors.New(app.apiMessage(err))
			}
			fmt.Printf("retiro #%d · %.2f zł\n", wd.ID, wd.Amount)
			return nil
		},
	}
	cmd.Flags().StringVar(&account, "account", "", "Número de cuenta (26 dígitos)")
	cmd.Flags().StringVar(&amount, "amount", "", "Monto (coma o punto decimal)")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newWithdrawListCmd(a **app) *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Historial de retiros",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := *a
			if _, err := app.guard(cmd.Context(), authz.RequireAuthenticated()); err != nil {
				return err
			}
			pager := view.Pager{Index: page - 1}.Clamp()
			p, err := app.api.ListWithdrawals(cmd.Context(), pager.Index, app.cfg.UI.PageSize)
			if err != nil {
				return errors.New(app.apiMessage(err))
			}
			if p.Empty() {
				fmt.Println("(sin resultados)")
				return nil
			}
			for _, wd := range p.Content {
				fmt.Printf("#%d %.2f zł → %s · %s\n",
					wd.ID, wd.Amount, util.MaskDigits(wd.AccountNumber, 4),
					wd.Timestamp.Format("2006-01-02 15:04"))
			}
			fmt.Printf("página %d de %d\n", p.DisplayPage(), p.TotalPages)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "Página (desde 1)")
	return cmd
}
