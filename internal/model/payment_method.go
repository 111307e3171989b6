package model

// PaymentMethod is a named payment channel ("forma de pago").
// Wire field names stay Spanish for compatibility with existing clients.
type PaymentMethod struct {
	ID          int    `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// PaymentMethodRequest carries the payload for creating or updating a payment method
type PaymentMethodRequest struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}
