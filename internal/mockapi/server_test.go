package mockapi

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/bookly/internal/api"
	"github.com/dropDatabas3/bookly/internal/session"
)

// arma el backend en memoria y un cliente api autenticable contra él
func newTestEnv(t *testing.T) (*httptest.Server, *Store) {
	t.Helper()
	store := NewStore()
	srv := New(store, NewTokenIssuer("test-secret", time.Hour))
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts, store
}

func clientFor(t *testing.T, ts *httptest.Server) (*api.Client, session.Store) {
	t.Helper()
	tokens := session.NewMemory()
	return api.New(ts.URL, "pl", tokens), tokens
}

func register(t *testing.T, c *api.Client, first, last, email, password string) {
	t.Helper()
	_, err := c.Register(context.Background(), first, last, email, password)
	require.NoError(t, err)
}

func login(t *testing.T, c *api.Client, tokens session.Store, email, password string) {
	t.Helper()
	tok, err := c.Login(context.Background(), email, password)
	require.NoError(t, err)
	require.NoError(t, tokens.Set(context.Background(), tok))
}

func addBook(t *testing.T, c *api.Client, title, price string) *api.BookDTO {
	t.Helper()
	b, _, err := c.CreateBook(context.Background(), api.BookUpload{
		Title:         title,
		Description:   "Stan dobry",
		BookCondition: "Dobry",
		AuthorName:    "Autor Testowy",
		Price:         price,
		ImageName:     "cover.jpg",
		Image:         strings.NewReader("fake-image-bytes"),
	})
	require.NoError(t, err)
	return b
}

func TestFlujoCompleto(t *testing.T) {
	ctx := context.Background()
	ts, _ := newTestEnv(t)

	seller, sellerTokens := clientFor(t, ts)
	register(t, seller, "Anna", "Kowalska", "anna@example.pl", "secret1")
	login(t, seller, sellerTokens, "anna@example.pl", "secret1")

	me, err := seller.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "anna@example.pl", me.Email)
	assert.Equal(t, 0.0, me.Balance)

	book := addBook(t, seller, "Lalka", "32,50")
	assert.Equal(t, 32.50, book.Price)
	assert.True(t, book.Available)

	// catálogo público: visible sin sesión
	anon, _ := clientFor(t, ts)
	page, err := anon.ListBooks(ctx, 0, 10, api.BookFilters{Search: "lal"})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Lalka", page.Content[0].Title)

	// checkout como comprador
	buyer, buyerTokens := clientFor(t, ts)
	register(t, buyer, "Piotr", "Nowak", "piotr@example.pl", "secret1")
	login(t, buyer, buyerTokens, "piotr@example.pl", "secret1")

	tx, err := buyer.PlaceOrder(ctx, api.OrderRequest{
		BookID: book.ID,
		Shipment: api.ShipmentDTO{
			FirstName: "Piotr", LastName: "Nowak", Email: "piotr@example.pl",
			Phone: "123456789", City: "Warszawa", PostalCode: "00-950",
			Street: "Prosta", StreetNumber: "5",
		},
		Payment: api.PaymentDTO{CardNumber: "4111111111111111", ExpirationDate: "12/26", CVC: "123"},
	})
	require.NoError(t, err)
	// el comprador paga precio + envío fijo
	assert.Equal(t, 32.50+api.ShippingFee, tx.Price)

	// el libro quedó no disponible y fuera del catálogo público
	sold, err := anon.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.False(t, sold.Available)
	page, err = anon.ListBooks(ctx, 0, 10, api.BookFilters{})
	require.NoError(t, err)
	assert.Empty(t, page.Content)

	// comprar dos veces el mismo libro falla
	_, err = buyer.PlaceOrder(ctx, api.OrderRequest{BookID: book.ID})
	require.Error(t, err)
	assert.True(t, api.IsStatus(err, 409))

	// el vendedor cobró el precio sin el envío
	me, err = seller.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, 32.50, me.Balance)

	// historial: compra del lado del comprador, venta del lado del vendedor
	bought, err := buyer.ListBought(ctx, 0, 10, 0)
	require.NoError(t, err)
	require.Len(t, bought.Content, 1)
	assert.Equal(t, "Lalka", bought.Content[0].Book.Title)

	soldPage, err := seller.ListSold(ctx, 0, 10, 0)
	require.NoError(t, err)
	require.Len(t, soldPage.Content, 1)

	// retiro del saldo del vendedor
	wd, err := seller.CreateWithdrawal(ctx, "12345678901234567890123456", 30)
	require.NoError(t, err)
	assert.Equal(t, 30.0, wd.Amount)
	me, _ = seller.Me(ctx)
	assert.InDelta(t, 2.50, me.Balance, 0.001)

	// retirar más que el saldo falla
	_, err = seller.CreateWithdrawal(ctx, "12345678901234567890123456", 999)
	require.Error(t, err)
	assert.True(t, api.IsStatus(err, 400))
}

func TestRegistroEmailDuplicado(t *testing.T) {
	ctx := context.Background()
	ts, _ := newTestEnv(t)
	c, _ := clientFor(t, ts)

	register(t, c, "Anna", "Kowalska", "anna@example.pl", "secret1")
	_, err := c.Register(ctx, "Otra", "Anna", "ANNA@example.pl", "secret1")
	require.Error(t, err)
	assert.True(t, api.IsStatus(err, 400), "duplicado case-insensitive: %v", err)
	fe, ok := api.AsFetchError(err)
	require.True(t, ok)
	assert.NotEmpty(t, fe.Message)
}

func TestLoginInvalido(t *testing.T) {
	ctx := context.Background()
	ts, _ := newTestEnv(t)
	c, _ := clientFor(t, ts)

	register(t, c, "Anna", "Kowalska", "anna@example.pl", "secret1")
	_, err := c.Login(ctx, "anna@example.pl", "incorrecta")
	require.Error(t, err)
	assert.True(t, api.IsUnauthorized(err))
	_, err = c.Login(ctx, "nadie@example.pl", "secret1")
	assert.True(t, api.IsUnauthorized(err))
}

func TestEndpointsProtegidos(t *testing.T) {
	ctx := context.Background()
	ts, _ := newTestEnv(t)
	anon, _ := clientFor(t, ts)

	_, err := anon.Me(ctx)
	assert.True(t, api.IsUnauthorized(err))
	_, err = anon.ListBought(ctx, 0, 10, 0)
	assert.True(t, api.IsUnauthorized(err))
	_, err = anon.AdminUsers(ctx, 0, 10, "")
	assert.True(t, api.IsUnauthorized(err))
}

func TestAdminSoloConRol(t *testing.T) {
	ctx := context.Background()
	ts, store := newTestEnv(t)

	user, userTokens := clientFor(t, ts)
	register(t, user, "Piotr", "Nowak", "piotr@example.pl", "secret1")
	login(t, user, userTokens, "piotr@example.pl", "secret1")

	// usuario común: 403
	_, err := user.AdminUsers(ctx, 0, 10, "")
	require.Error(t, err)
	assert.True(t, api.IsForbidden(err))

	// historial ajeno: también 403
	_, err = user.ListBought(ctx, 0, 10, 999)
	require.Error(t, err)
	assert.True(t, api.IsForbidden(err))

	// promover a admin directo en el store y reloguear
	u, ok := store.UserByEmail("piotr@example.pl")
	require.True(t, ok)
	u.Roles = append(u.Roles, "ROLE_ADMIN")
	store.SaveUser(u)
	login(t, user, userTokens, "piotr@example.pl", "secret1")

	users, err := user.AdminUsers(ctx, 0, 10, "")
	require.NoError(t, err)
	assert.Len(t, users.Content, 1)
}

func TestPaginacionDelCatalogo(t *testing.T) {
	ctx := context.Background()
	ts, _ := newTestEnv(t)

	seller, tokens := clientFor(t, ts)
	register(t, seller, "Anna", "Kowalska", "anna@example.pl", "secret1")
	login(t, seller, tokens, "anna@example.pl", "secret1")
	for i := 0; i < 7; i++ {
		addBook(t, seller, "Tom "+strings.Repeat("I", i+1), "10,00")
	}

	anon, _ := clientFor(t, ts)
	p0, err := anon.ListBooks(ctx, 0, 3, api.BookFilters{})
	require.NoError(t, err)
	assert.Len(t, p0.Content, 3)
	assert.Equal(t, 3, p0.TotalPages)
	assert.Equal(t, 1, p0.DisplayPage())

	p2, err := anon.ListBooks(ctx, 2, 3, api.BookFilters{})
	require.NoError(t, err)
	assert.Len(t, p2.Content, 1)

	// fuera de rango: página vacía, nunca error
	p9, err := anon.ListBooks(ctx, 9, 3, api.BookFilters{})
	require.NoError(t, err)
	assert.Empty(t, p9.Content)
	assert.Equal(t, 3, p9.TotalPages)
}

func TestMensajesLocalizados(t *testing.T) {
	ctx := context.Background()
	ts, _ := newTestEnv(t)

	pl := api.New(ts.URL, "pl", nil)
	en := api.New(ts.URL, "en", nil)

	_, errPL := pl.GetBook(ctx, 999)
	_, errEN := en.GetBook(ctx, 999)
	fePL, ok := api.AsFetchError(errPL)
	require.True(t, ok)
	feEN, ok := api.AsFetchError(errEN)
	require.True(t, ok)
	assert.NotEqual(t, fePL.Message, feEN.Message, "pl y en deberían diferir")
}

func TestSeed(t *testing.T) {
	store := NewStore()
	Seed(store)

	admin, ok := store.UserByEmail("admin@bookly.pl")
	require.True(t, ok)
	assert.True(t, admin.IsAdmin())
	assert.NotEmpty(t, store.Books())
}
