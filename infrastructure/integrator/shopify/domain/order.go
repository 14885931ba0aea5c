package shopifydomain

// Order é o pedido como retornado pela Admin API do Shopify
type Order struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	CreatedAt         string          `json:"created_at"`
	FinancialStatus   string          `json:"financial_status"`
	FulfillmentStatus string          `json:"fulfillment_status"`
	TotalPrice        string          `json:"total_price"`
	Currency          string          `json:"currency"`
	CancelledAt       string          `json:"cancelled_at,omitempty"`
	LineItems         []LineItem      `json:"line_items"`
	ShippingAddress   ShippingAddress `json:"shipping_address"`
}

type LineItem struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	SKU      string `json:"sku"`
}

type ShippingAddress struct {
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

// Refund é o reembolso criado via Admin API
type Refund struct {
	ID        int64  `json:"id"`
	OrderID   int64  `json:"order_id"`
	Note      string `json:"note,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ErrorResponse representa a estrutura de erro da Admin API do Shopify
type ErrorResponse struct {
	Errors interface{} `json:"errors"`
}
