package http

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Response is the envelope of every API reply.
type Response struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors"`
}

func ok(data any, message string) Response {
	return Response{Success: true, Data: data, Message: message, Errors: []string{}}
}

func failure(message string, reasons ...string) Response {
	if reasons == nil {
		reasons = []string{}
	}
	return Response{Success: false, Message: message, Errors: reasons}
}

// Raw keeps a JSON string or number as the text the client sent, so that
// "2", 2 and 150.00 all reach validation unchanged.
type Raw string

func (r *Raw) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*r = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = Raw(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("expected a string or a number")
	}
	*r = Raw(n.String())
	return nil
}

type PlaceOrderRequest struct {
	CustomerName       string             `json:"customerName"`
	CustomerEmail      string             `json:"customerEmail"`
	ShippingStreet     string             `json:"shippingStreet"`
	ShippingCity       string             `json:"shippingCity"`
	ShippingPostalCode string             `json:"shippingPostalCode"`
	ShippingCountry    string             `json:"shippingCountry"`
	OrderLines         []OrderLineRequest `json:"orderLines"`
}

type OrderLineRequest struct {
	ProductCode string `json:"productCode"`
	Quantity    Raw    `json:"quantity"`
}

type ProcessPaymentRequest struct {
	OrderID        string `json:"orderId"`
	Amount         Raw    `json:"amount"`
	CardNumber     string `json:"cardNumber"`
	CardHolderName string `json:"cardHolderName"`
	ExpiryDate     string `json:"expiryDate"`
	CVV            string `json:"cvv"`
}

type ConfirmPaymentRequest struct {
	OrderID string `json:"orderId"`
}

type PaymentConfirmation struct {
	OrderID     string `json:"orderId"`
	Status      string `json:"status"`
	ConfirmedAt string `json:"confirmedAt"`
}

type ShipOrderRequest struct {
	OrderID string `json:"orderId"`
	Carrier string `json:"carrier"`
}
