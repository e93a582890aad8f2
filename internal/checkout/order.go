package checkout

// Display mappings for the numeric enums the order endpoint returns.

func mapStatus(status int) string {
	switch status {
	case 0:
		return "Pending"
	case 1:
		return "Confirmed"
	case 2:
		return "Processing"
	case 3:
		return "Shipped"
	case 4:
		return "Delivered"
	case 5:
		return "Cancelled"
	default:
		return "Pending"
	}
}

func mapPaymentMethod(method int) string {
	switch method {
	case 0:
		return "Cash"
	case 1:
		return "Card"
	case 2:
		return "OnlinePayment"
	default:
		return "Cash"
	}
}

// OrderItem is a line of the locally kept order record.
type OrderItem struct {
	ProductID       string  `json:"productId"`
	ProductName     string  `json:"productName"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"priceAtPurchase"`
	Size            string  `json:"size,omitempty"`
	Color           string  `json:"color,omitempty"`
}

// CustomerInfo is the contact block captured from the form at submit time.
type CustomerInfo struct {
	FullName    string `json:"fullName"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Governorate string `json:"governorate"`
}

// Order is the locally synthesized record appended to order history after a
// successful submission. The historical cart it was built from is cleared
// and never mutated again.
type Order struct {
	ID             string       `json:"id"`
	CustomerID     string       `json:"customerId"`
	Items          []OrderItem  `json:"items"`
	Total          float64      `json:"total"`
	ShippingFee    float64      `json:"shippingFee"`
	DiscountCode   string       `json:"discountCode,omitempty"`
	DiscountAmount float64      `json:"discountAmount"`
	PaymentMethod  string       `json:"paymentMethod"`
	Status         string       `json:"status"`
	CreatedAt      string       `json:"createdAt"`
	Customer       CustomerInfo `json:"customerInfo"`
}
