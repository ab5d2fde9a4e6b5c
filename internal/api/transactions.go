package api

import (
	"context"
	"strconv"
)

// OrderRequest es el payload del checkout.
type OrderRequest struct {
	BookID   int64       `json:"bookId"`
	Shipment ShipmentDTO `json:"shipment"`
	Payment  PaymentDTO  `json:"payment"`
}

// PlaceOrder concreta la compra de un libro. El libro pasa a no
// disponible y el vendedor recibe el precio en su saldo.
func (c *Client) PlaceOrder(ctx context.Context, req OrderRequest) (*TransactionDTO, error) {
	var out TransactionDTO
	if err := c.postJSON(ctx, "/api/transactions", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListBought trae el historial de compras. userID > 0 pide el historial
// de otro usuario (solo admins; el backend responde 403 si no).
func (c *Client) ListBought(ctx context.Context, pageIndex, pageSize int, userID int64) (Page[TransactionDTO], error) {
	return FetchPage[TransactionDTO](ctx, c, "/api/transactions/bought", pageIndex, pageSize, historyFilters(userID))
}

// ListSold trae el historial de ventas. Misma regla de userID.
func (c *Client) ListSold(ctx context.Context, pageIndex, pageSize int, userID int64) (Page[TransactionDTO], error) {
	return FetchPage[TransactionDTO](ctx, c, "/api/transactions/sold", pageIndex, pageSize, historyFilters(userID))
}

func historyFilters(userID int64) map[string]string {
	if userID <= 0 {
		return nil
	}
	return map[string]string{"userId": strconv.FormatInt(userID, 10)}
}
