package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dropDatabas3/bookly/internal/api"
	"github.com/dropDatabas3/bookly/internal/authz"
	"github.com/dropDatabas3/bookly/internal/validation"
	"github.com/dropDatabas3/bookly/internal/view"
)

func newBooksCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Catálogo de libros",
	}
	cmd.AddCommand(
		newBooksListCmd(a),
		newBooksShowCmd(a),
		newBooksAddCmd(a),
		newBooksEditCmd(a),
		newBooksDeleteCmd(a),
	)
	return cmd
}

func newBooksListCmd(a **app) *cobra.Command {
	var page int
	var search string
	var userID int64
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Listar el catálogo (paginado)",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := *a
			// la página se pide uno-based y viaja cero-based
			pager := view.Pager{Index: page - 1}.Clamp()
			v := view.NewPageView[api.BookDTO]()
			result, err := v.Load(cmd.Context(), func(ctx context.Context, pageIndex, pageSize int) (api.Page[api.BookDTO], error) {
				return app.api.ListBooks(ctx, pageIndex, pageSize, api.BookFilters{Search: search, UserID: userID})
			}, pager.Index, app.cfg.UI.PageSize)
			if err != nil {
				// la lista degrada a vacía, el error va a stderr
				fmt.Fprintln(os.Stderr, app.apiMessage(err))
			}
			printBooksPage(result)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "Página (desde 1)")
	cmd.Flags().StringVar(&search, "search", "", "Buscar por título")
	cmd.Flags().Int64Var(&userID, "user", 0, "Filtrar por vendedor (id)")
	return cmd
}

func printBooksPage(p api.Page[api.BookDTO]) {
	if p.Empty() {
		fmt.Println("(sin resultados)")
		return
	}
	for _, b := range p.Content {
		avail := ""
		if !b.Available {
			avail = " [vendido]"
		}
		fmt.Printf("#%d %q — %s · %s · %.2f zł%s\n", b.ID, b.Title, b.AuthorName, b.BookCondition, b.Price, avail)
	}
	fmt.Printf("página %d de %d\n", p.DisplayPage(), p.TotalPages)
}

func newBooksShowCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Detalle de una publicación",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := *a
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			b, err := app.api.GetBook(cmd.Context(), id)
			if err != nil {
				return errors.New(app.apiMessage(err))
			}
			fmt.Printf("#%d %q — %s\n", b.ID, b.Title, b.AuthorName)
			fmt.Printf("estado: %s · precio: %.2f zł (con envío: %.2f zł)\n",
				b.BookCondition, b.Price, b.TotalWithShipping())
			fmt.Printf("vendedor: %s (id=%d)\n", b.UserFirstName, b.UserID)
			if b.Description != "" {
				fmt.Println(b.Description)
			}
			if !b.Available {
				fmt.Println("[vendido]")
			}
			return nil
		},
	}
}

type bookFlags struct {
	title, description, condition, author, price, image string
}

func (f *bookFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Título")
	cmd.Flags().StringVar(&f.description, "description", "", "Descripción")
	cmd.Flags().StringVar(&f.condition, "condition", "", "Estado del libro")
	cmd.Flags().StringVar(&f.author, "author", "", "Autor")
	cmd.Flags().StringVar(&f.price, "price", "", "Precio (coma o punto decimal)")
	cmd.Flags().StringVar(&f.image, "image", "", "Ruta de la imagen de portada")
}

var bookFieldOrder = []string{"title", "description", "bookCondition", "authorName", "price", "file"}

func (f *bookFlags) upload(a *app, requireImage bool) (api.BookUpload, error) {
	form := validation.BookForm{
		Title:         f.title,
		Description:   f.description,
		BookCondition: f.condition,
		AuthorName:    f.author,
		Price:         f.price,
		HasImage:      f.image != "",
	}
	if errs := validation.ValidateBook(form, requireImage); !errs.OK() {
		return api.BookUpload{}, formError(a, errs, bookFieldOrder)
	}

	up := api.BookUpload{
		Title:         f.title,
		Description:   f.description,
		BookCondition: f.condition,
		AuthorName:    f.author,
		Price:         f.price,
	}
	if f.image != "" {
		fh, err := os.Open(f.image)
		if err != nil {
			return api.BookUpload{}, err
		}
		up.ImageName = filepath.Base(f.image)
		up.Image = fh
	}
	return up, nil
}

func newBooksAddCmd(a **app) *cobra.Command {
	var flags bookFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Publicar un libro",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := *a
			if _, err := app.guard(cmd.Context(), authz.RequireAuthenticated()); err != nil {
				return err
			}
			up, err := flags.upload(app, true)
			if err != nil {
				return err
			}
			if c, ok := up.Image.(interface{ Close() error }); ok {
				defer c.Close()
			}
			b, msg, err := app.api.CreateBook(cmd.Context(), up)
			if err != nil {
				return errors.New(app.apiMessage(err))
			}
			if msg == "" {
				msg = app.t("book.create.success")
			}
			fmt.Printf("%s (id=%d)\n", msg, b.ID)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newBooksEditCmd(a **app) *cobra.Command {
	var flags bookFlags
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Editar una publicación propia",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := *a
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			// el dueño se chequea contra la publicación actual
			b, err := app.api.GetBook(cmd.Context(), id)
			if err != nil {
				return errors.New(app.apiMessage(err))
			}
			if _, err := app.guard(cmd.Context(), authz.RequireOwnerOrAdmin(b.UserID)); err != nil {
				return err
			}
			up, err := flags.upload(app, false)
			if err != nil {
				return err
			}
			if c, ok := up.Image.(interface{ Close() error }); ok {
				defer c.Close()
			}
			_, msg, err := app.api.UpdateBook(cmd.Context(), id, up)
			if err != nil {
				return errors.New(app.apiMessage(err))
			}
			if msg == "" {
				msg = app.t("book.update.success")
			}
			fmt.Println(msg)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newBooksDeleteCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Eliminar una publicación propia",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := *a
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			b, err := app.api.GetBook(cmd.Context(), id)
			if err != nil {
				return errors.New(app.apiMessage(err))
			}
			if _, err := app.guard(cmd.Context(), authz.RequireOwnerOrAdmin(b.UserID)); err != nil {
				return err
			}
			msg, err := app.api.DeleteBook(cmd.Context(), id)
			if err != nil {
				return errors.New(app.apiMessage(err))
			}
			if msg == "" {
				msg = app.t("book.delete.success")
			}
			fmt.Println(msg)
			return nil
		},
	}
}

func parseID(s string) (int64, error) {
	var id int64
	if _, err := fmt.Sscanf(s, "%d", &id); err != nil || id <= 0 {
		return 0, fmt.Errorf("id inválido: %q", s)
	}
	return id, nil
}
