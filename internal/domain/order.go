package domain

// RefundOrderRequest é o corpo da operação de reembolso de um pedido
type RefundOrderRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Reason   string  `json:"reason,omitempty"`
	Notify   bool    `json:"notify"`
}

// ShippingAddressRequest é o corpo da atualização de endereço de entrega
type ShippingAddressRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2,omitempty"`
	City      string `json:"city"`
	Province  string `json:"province,omitempty"`
	Country   string `json:"country"`
	Zip       string `json:"zip"`
	Phone     string `json:"phone,omitempty"`
}

// CheckoutSessionRequest é o corpo da criação de sessão de checkout no Stripe
type CheckoutSessionRequest struct {
	PriceID    string `json:"price_id"`
	Quantity   int64  `json:"quantity"`
	SuccessURL string `json:"success_url"`
	CancelURL  string `json:"cancel_url"`
}

// CheckoutSessionResponse devolve a sessão criada para o frontend redirecionar
type CheckoutSessionResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}
