package models

// CustomerDetails identifies the paying customer to the gateway
type CustomerDetails struct {
	CustomerID    string `json:"customer_id"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
}

// OrderMeta carries gateway callback settings
type OrderMeta struct {
	ReturnURL string `json:"return_url"`
}

// OrderPayload is the order-creation request sent to the payment gateway.
// Orders are transient: nothing is persisted locally after submission.
type OrderPayload struct {
	OrderID         string          `json:"order_id"`
	OrderAmount     float64         `json:"order_amount"`
	OrderCurrency   string          `json:"order_currency"`
	CustomerDetails CustomerDetails `json:"customer_details"`
	OrderMeta       OrderMeta       `json:"order_meta"`
}

// OrderResult is the subset of the gateway's order response this system reads
type OrderResult struct {
	OrderID          string `json:"order_id"`
	PaymentSessionID string `json:"payment_session_id"`
	OrderStatus      string `json:"order_status"`
}
