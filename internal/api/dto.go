package api

import "time"

// ShippingFee es el costo fijo de envío que se suma al precio del libro.
const ShippingFee = 10.00

// UserDTO es el perfil público de un usuario. Email solo viene en /user/me.
type UserDTO struct {
	ID                int64   `json:"id"`
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName"`
	Email             string  `json:"email,omitempty"`
	ProfilePictureURL string  `json:"profilePictureUrl,omitempty"`
	Description       string  `json:"description,omitempty"`
	Balance           float64 `json:"balance"`
	Rating            int     `json:"rating"`
}

// BookDTO es una publicación del catálogo.
type BookDTO struct {
	ID                    int64   `json:"id"`
	Title                 string  `json:"title"`
	Description           string  `json:"description"`
	BookCondition         string  `json:"bookCondition"`
	AuthorName            string  `json:"authorName"`
	Price                 float64 `json:"price"`
	PictureURL            string  `json:"pictureUrl,omitempty"`
	UserFirstName         string  `json:"userFirstName"`
	UserID                int64   `json:"userId"`
	UserProfilePictureURL string  `json:"userProfilePictureUrl,omitempty"`
	Available             bool    `json:"available"`
}

// TotalWithShipping es el precio final: precio + envío fijo.
func (b BookDTO) TotalWithShipping() float64 { return b.Price + ShippingFee }

// BookInfoDTO es el resumen de libro embebido en una transacción.
type BookInfoDTO struct {
	Title         string  `json:"title"`
	BookCondition string  `json:"bookCondition"`
	Price         float64 `json:"price"`
	PictureURL    string  `json:"pictureUrl,omitempty"`
}

// ShipmentDTO son los datos de envío de una orden.
type ShipmentDTO struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	City            string `json:"city"`
	PostalCode      string `json:"postalCode"`
	Street          string `json:"street"`
	StreetNumber    string `json:"streetNumber"`
	ApartmentNumber string `json:"apartmentNumber,omitempty"`
}

// PaymentDTO son los datos de pago mockeados: se recolectan y se chequea
// el formato, nunca se validan contra un procesador real.
type PaymentDTO struct {
	CardNumber     string `json:"cardNumber"`
	ExpirationDate string `json:"expirationDate"`
	CVC            string `json:"cvc"`
}

// TransactionDTO es una compra/venta concretada.
type TransactionDTO struct {
	ID        int64       `json:"id"`
	Book      BookInfoDTO `json:"book"`
	Shipment  ShipmentDTO `json:"shipment"`
	Price     float64     `json:"price"`
	Timestamp time.Time   `json:"timestamp"`
}

// WithdrawalDTO es una solicitud de retiro de saldo.
type WithdrawalDTO struct {
	ID            int64     `json:"id"`
	AccountNumber string    `json:"accountNumber"`
	Amount        float64   `json:"amount"`
	Timestamp     time.Time `json:"timestamp"`
}
