package mockapi

import (
	"net/http"
	"strconv"

	"github.com/dropDatabas3/bookly/internal/api"
)

const defaultPageSize = 10

// pageParams lee page y size del query string (cero-based, como el
// backend original). Valores inválidos degradan a defaults.
func pageParams(r *http.Request) (page, size int) {
	q := r.URL.Query()
	page, _ = strconv.Atoi(q.Get("page"))
	if page < 0 {
		page = 0
	}
	size, _ = strconv.Atoi(q.Get("size"))
	if size <= 0 || size > 100 {
		size = defaultPageSize
	}
	return page, size
}

// envelope corta la slice en páginas y arma el shape del backend:
// {content, totalPages, number}. content es siempre un array, nunca null.
func envelope[T any](items []T, page, size int) map[string]any {
	total := (len(items) + size - 1) / size
	lo := page * size
	if lo > len(items) {
		lo = len(items)
	}
	hi := lo + size
	if hi > len(items) {
		hi = len(items)
	}
	content := items[lo:hi]
	if content == nil {
		content = []T{}
	}
	return map[string]any{"content": content, "totalPages": total, "number": page}
}

func userDTO(u User, includeEmail bool) api.UserDTO {
	dto := api.UserDTO{
		ID:                u.ID,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		ProfilePictureURL: u.ProfilePictureURL,
		Description:       u.Description,
		Balance:           u.Balance,
		Rating:            u.Rating,
	}
	if includeEmail {
		dto.Email = u.Email
	}
	return dto
}

func (s *Server) bookDTO(b Book) api.BookDTO {
	dto := api.BookDTO{
		ID:            b.ID,
		Title:         b.Title,
		Description:   b.Description,
		BookCondition: b.BookCondition,
		AuthorName:    b.AuthorName,
		Price:         b.Price,
		PictureURL:    b.PictureURL,
		UserID:        b.OwnerID,
		Available:     b.Available,
	}
	if owner, ok := s.store.UserByID(b.OwnerID); ok {
		dto.UserFirstName = owner.FirstName
		dto.UserProfilePictureURL = owner.ProfilePictureURL
	}
	return dto
}

func txDTO(t Transaction) api.TransactionDTO {
	return api.TransactionDTO{
		ID: t.ID,
		Book: api.BookInfoDTO{
			Title:         t.Book.Title,
			BookCondition: t.Book.BookCondition,
			Price:         t.Book.Price,
			PictureURL:    t.Book.PictureURL,
		},
		Shipment: api.ShipmentDTO{
			FirstName:       t.Shipment.FirstName,
			LastName:        t.Shipment.LastName,
			Email:           t.Shipment.Email,
			Phone:           t.Shipment.Phone,
			City:            t.Shipment.City,
			PostalCode:      t.Shipment.PostalCode,
			Street:          t.Shipment.Street,
			StreetNumber:    t.Shipment.StreetNumber,
			ApartmentNumber: t.Shipment.ApartmentNumber,
		},
		Price:     t.Price,
		Timestamp: t.Timestamp,
	}
}

func wdDTO(w Withdrawal) api.WithdrawalDTO {
	return api.WithdrawalDTO{
		ID:            w.ID,
		AccountNumber: w.AccountNumber,
		Amount:        w.Amount,
		Timestamp:     w.Timestamp,
	}
}
