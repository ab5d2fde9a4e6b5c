package api

import "context"

type withdrawalRequest struct {
	AccountNumber string  `json:"accountNumber"`
	Amount        float64 `json:"amount"`
}

// ListWithdrawals trae el historial de retiros del usuario autenticado.
func (c *Client) ListWithdrawals(ctx context.Context, pageIndex, pageSize int) (Page[WithdrawalDTO], error) {
	return FetchPage[WithdrawalDTO](ctx, c, "/api/withdrawals", pageIndex, pageSize, nil)
}

// CreateWithdrawal solicita un retiro de saldo. accountNumber debe venir
// ya normalizado a 26 dígitos (validation.ShapeAccount).
func (c *Client) CreateWithdrawal(ctx context.Context, accountNumber string, amount float64) (*WithdrawalDTO, error) {
	var out WithdrawalDTO
	in := withdrawalRequest{AccountNumber: accountNumber, Amount: amount}
	if err := c.postJSON(ctx, "/api/withdrawals", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
