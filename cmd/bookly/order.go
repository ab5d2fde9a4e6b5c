package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dropDatabas3/bookly/internal/api"
	"github.com/dropDatabas3/bookly/internal/authz"
	"github.com/dropDatabas3/bookly/internal/validation"
)

var orderFieldOrder = []string{
	"firstName", "lastName", "email", "phone", "city", "postalCode",
	"street", "streetNumber", "cardNumber", "expirationDate", "cvc",
}

func newOrderCmd(a **app) *cobra.Command {
	var f validation.OrderForm
	var bookID int64
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Comprar un libro (checkout)",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := *a
			if _, err := app.guard(cmd.Context(), authz.RequireAuthenticated()); err != nil {
				return err
			}
			if bookID <= 0 {
				return errors.New("--book es requerido")
			}
			if errs := validation.ValidateOrder(f); !errs.OK() {
				return formError(app, errs, orderFieldOrder)
			}

			b, err := app.api.GetBook(cmd.Context(), bookID)
			if err != nil {
				return errors.New(app.apiMessage(err))
			}
			if !b.Available {
				return errors.New(app.t("book.unavailable"))
			}
			fmt.Printf("%q — %.2f zł + %.2f zł envío = %.2f zł\n",
				b.Title, b.Price, api.ShippingFee, b.TotalWithShipping())

			tx, err := app.api.PlaceOrder(cmd.Context(), api.OrderRequest{
				BookID: bookID,
				Shipment: api.ShipmentDTO{
					FirstName:       f.FirstName,
					LastName:        f.LastName,
					Email:           f.Email,
					Phone:           f.Phone,
					City:            f.City,
					PostalCode:      validation.ShapePostal(f.PostalCode),
					Street:          f.Street,
					StreetNumber:    f.StreetNumber,
					ApartmentNumber: f.ApartmentNumber,
				},
				Payment: api.PaymentDTO{
					CardNumber:     validation.DigitsOnly(f.CardNumber),
					ExpirationDate: validation.ShapeExpiration(f.ExpirationDate),
					CVC:            f.CVC,
				},
			})
			if err != nil {
				return errors.New(app.apiMessage(err))
			}
			fmt.Printf("compra #%d confirmada · total %.2f zł\n", tx.ID, tx.Price)
			return nil
		},
	}
	cmd.Flags().Int64Var(&bookID, "book", 0, "ID del libro a comprar")
	cmd.Flags().StringVar(&f.FirstName, "first-name", "", "Nombre del destinatario")
	cmd.Flags().StringVar(&f.LastName, "last-name", "", "Apellido del destinatario")
	cmd.Flags().StringVar(&f.Email, "email", "", "Email de contacto")
	cmd.Flags().StringVar(&f.Phone, "phone", "", "Teléfono (9-15 dígitos)")
	cmd.Flags().StringVar(&f.City, "city", "", "Ciudad")
	cmd.Flags().StringVar(&f.PostalCode, "postal-code", "", "Código postal (XX-XXX)")
	cmd.Flags().StringVar(&f.Street, "street", "", "Calle")
	cmd.Flags().StringVar(&f.StreetNumber, "street-number", "", "Número")
	cmd.Flags().StringVar(&f.ApartmentNumber, "apartment", "", "Departamento (opcional)")
	cmd.Flags().StringVar(&f.CardNumber, "card", "", "Número de tarjeta (16 dígitos)")
	cmd.Flags().StringVar(&f.ExpirationDate, "expiration", "", "Vencimiento MM/YY")
	cmd.Flags().StringVar(&f.CVC, "cvc", "", "CVC (3-4 dígitos)")
	return cmd
}
