package api

// Wire types for the remote storefront API. Responses arrive loosely typed;
// anything optional is nullable here and normalized at the call site before
// it reaches the rest of the pipeline.

type CartItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Size        string          `json:"size"`
	Color       string          `json:"color"`
	Price       float64         `json:"price"`
	Images      []CartItemImage `json:"images"`
}

type CartItemImage struct {
	ID        string `json:"id"`
	ImagePath string `json:"imagePath"`
	IsMain    bool   `json:"isMain"`
}

type CartResponse struct {
	ID        string             `json:"id"`
	UserID    string             `json:"userId"`
	CreatedAt string             `json:"createdAt"`
	Items     []CartItemResponse `json:"items"`
	Total     float64            `json:"total"`
}

type AddCartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

type ShippingFee struct {
	ID           string  `json:"id"`
	Governorate  string  `json:"governorate"`
	Fee          float64 `json:"fee"`
	DeliveryTime string  `json:"deliveryTime"`
	Status       int     `json:"status"`
	CreatedAt    string  `json:"createdAt"`
}

type ShippingFeePage struct {
	Items      []ShippingFee `json:"items"`
	TotalItems int           `json:"totalItems"`
	PageNumber int           `json:"pageNumber"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
}

// DiscountCode is the server-resolved descriptor for a code string. Exactly
// one of PercentageValue / FixedValue is populated depending on Type.
type DiscountCode struct {
	ID                string   `json:"id"`
	Code              string   `json:"code"`
	Type              int      `json:"type"`
	PercentageValue   *float64 `json:"percentageValue"`
	FixedValue        *float64 `json:"fixedValue"`
	MinOrderAmount    float64  `json:"minOrderAmount"`
	MaxDiscountAmount *float64 `json:"maxDiscountAmount"`
	UsageLimit        int      `json:"usageLimit"`
	StartDate         string   `json:"startDate"`
	EndDate           string   `json:"endDate"`
	IsActive          bool     `json:"isActive"`
	UsageCount        int      `json:"usageCount"`
	CreatedAt         string   `json:"createdAt"`
}

type OrderItemRequest struct {
	ProductID       string  `json:"productId"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"priceAtPurchase"`
	Size            *string `json:"size"`
	Color           *string `json:"color"`
}

type CreateOrderRequest struct {
	FullName      string             `json:"fullname"`
	PhoneNumber   string             `json:"phonenumber"`
	Address       string             `json:"address"`
	Governorate   string             `json:"governorate"`
	DiscountCode  *string            `json:"discountCode"`
	PaymentMethod int                `json:"paymentMethod"`
	Items         []OrderItemRequest `json:"items"`
}

type CreateOrderResponse struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customerId"`
	Status        int    `json:"status"`
	PaymentMethod int    `json:"paymentMethod"`
	Date          string `json:"date"`
}

type NotifyAdminRequest struct {
	OrderNumber string `json:"orderNumber"`
	Total       string `json:"total"`
}

type LoginRequest struct {
	Email    string `json:"Email"`
	Password string `json:"Password"`
}

type LoginResponse struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	Roles        []string `json:"roles"`
}

type RegisterRequest struct {
	FullName    string `json:"FullName"`
	Email       string `json:"Email"`
	PhoneNumber string `json:"PhoneNumber"`
	Address     string `json:"Address"`
	Governorate string `json:"Governorate"`
	Password    string `json:"Password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"Email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"Email"`
	Token       string `json:"Token"`
	NewPassword string `json:"NewPassword"`
}
