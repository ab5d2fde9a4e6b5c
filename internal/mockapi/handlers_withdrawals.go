package mockapi

import (
	"net/http"
	"strconv"

	"github.com/dropDatabas3/bookly/internal/api"
	"github.com/dropDatabas3/bookly/internal/observability/logger"
	"github.com/dropDatabas3/bookly/internal/validation"
)

type withdrawalRequest struct {
	AccountNumber string  `json:"accountNumber"`
	Amount        float64 `json:"amount"`
}

func (s *Server) handleListWithdrawals(w http.ResponseWriter, r *http.Request) {
	u, _ := userFrom(r)
	var items []api.WithdrawalDTO
	for _, wd := range s.store.Withdrawals(u.ID) {
		items = append(items, wdDTO(wd))
	}
	page, size := pageParams(r)
	writeJSON(w, http.StatusOK, envelope(items, page, size))
}

// handleCreateWithdrawal debita el saldo y registra el retiro. Saldo,
// chequeo y débito bajo el lock de operaciones compuestas.
func (s *Server) handleCreateWithdrawal(w http.ResponseWriter, r *http.Request) {
	u, _ := userFrom(r)
	var in withdrawalRequest
	if !readJSON(w, r, &in) {
		return
	}

	s.store.Lock()
	defer s.store.Unlock()

	// releer el saldo bajo el lock
	u, ok := s.store.UserByID(u.ID)
	if !ok {
		writeError(w, r, http.StatusNotFound, "user.not.found")
		return
	}

	amount := strconv.FormatFloat(in.Amount, 'f', -1, 64)
	if errs := validation.ValidateWithdrawal(in.AccountNumber, amount, u.Balance); !errs.OK() {
		key := errs["amount"]
		if key == "" {
			key = errs["accountNumber"]
		}
		if key == "withdraw.errors.amountExceeds" {
			writeError(w, r, http.StatusBadRequest, "withdraw.insufficient")
			return
		}
		writeError(w, r, http.StatusBadRequest, "withdraw.amount.invalid")
		return
	}

	u.Balance -= in.Amount
	s.store.SaveUser(u)

	wd := s.store.CreateWithdrawal(Withdrawal{
		UserID:        u.ID,
		AccountNumber: validation.DigitsOnly(in.AccountNumber),
		Amount:        in.Amount,
	})
	logger.Named("mockapi").Info("withdrawal", logger.UserID(u.ID))
	writeJSON(w, http.StatusCreated, wdDTO(wd))
}
