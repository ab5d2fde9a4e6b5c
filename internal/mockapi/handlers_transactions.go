package mockapi

import (
	"net/http"
	"strconv"

	"github.com/dropDatabas3/bookly/internal/api"
	"github.com/dropDatabas3/bookly/internal/observability/logger"
)

type orderRequest struct {
	BookID   int64           `json:"bookId"`
	Shipment api.ShipmentDTO `json:"shipment"`
	Payment  api.PaymentDTO  `json:"payment"`
}

// handleCreateTransaction concreta un checkout: marca el libro como no
// disponible y acredita el precio al vendedor. Chequeo y mutación van
// bajo el lock de operaciones compuestas para que dos compradores no
// compren el mismo libro.
func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	buyer, _ := userFrom(r)
	var in orderRequest
	if !readJSON(w, r, &in) {
		return
	}

	s.store.Lock()
	defer s.store.Unlock()

	b, ok := s.store.BookByID(in.BookID)
	if !ok {
		writeError(w, r, http.StatusNotFound, "book.not.found")
		return
	}
	if !b.Available {
		writeError(w, r, http.StatusConflict, "book.unavailable")
		return
	}
	if b.OwnerID == buyer.ID {
		writeError(w, r, http.StatusConflict, "book.unavailable")
		return
	}

	b.Available = false
	s.store.SaveBook(b)

	if seller, ok := s.store.UserByID(b.OwnerID); ok {
		seller.Balance += b.Price
		s.store.SaveUser(seller)
	}

	t := s.store.CreateTransaction(Transaction{
		BuyerID:  buyer.ID,
		SellerID: b.OwnerID,
		Book:     b,
		Shipment: Shipment{
			FirstName:       in.Shipment.FirstName,
			LastName:        in.Shipment.LastName,
			Email:           in.Shipment.Email,
			Phone:           in.Shipment.Phone,
			City:            in.Shipment.City,
			PostalCode:      in.Shipment.PostalCode,
			Street:          in.Shipment.Street,
			StreetNumber:    in.Shipment.StreetNumber,
			ApartmentNumber: in.Shipment.ApartmentNumber,
		},
		// el comprador paga precio + envío; el vendedor recibe solo el precio
		Price: b.Price + api.ShippingFee,
	})
	logger.Named("mockapi").Info("order placed",
		logger.BookID(b.ID), logger.UserID(buyer.ID))
	writeJSON(w, http.StatusCreated, txDTO(t))
}

func (s *Server) handleBought(w http.ResponseWriter, r *http.Request) {
	s.handleHistory(w, r, func(t Transaction, uid int64) bool { return t.BuyerID == uid })
}

func (s *Server) handleSold(w http.ResponseWriter, r *http.Request) {
	s.handleHistory(w, r, func(t Transaction, uid int64) bool { return t.SellerID == uid })
}

// handleHistory sirve el historial propio; userId pide el de otro
// usuario y eso es solo para admins.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request, match func(Transaction, int64) bool) {
	u, _ := userFrom(r)
	uid := u.ID
	if v := r.URL.Query().Get("userId"); v != "" {
		other, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "error.network")
			return
		}
		if other != u.ID && !u.IsAdmin() {
			writeError(w, r, http.StatusForbidden, "tx.history.forbidden")
			return
		}
		uid = other
	}

	var items []api.TransactionDTO
	for _, t := range s.store.Transactions(func(t Transaction) bool { return match(t, uid) }) {
		items = append(items, txDTO(t))
	}
	page, size := pageParams(r)
	writeJSON(w, http.StatusOK, envelope(items, page, size))
}
