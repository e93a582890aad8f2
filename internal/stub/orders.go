package stub

import (
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront/internal/api"
)

var stubPhonePattern = regexp.MustCompile(`^01[0-9]{9}$`)

func (s *Server) createOrder(c *gin.Context) {
	userID := c.GetString("userId")

	var req api.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.FullName == "" || req.Address == "" || req.Governorate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}
	if !stubPhonePattern.MatchString(req.PhoneNumber) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid phone number"})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one item is required"})
		return
	}
	if req.PaymentMethod != 0 && req.PaymentMethod != 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment method"})
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	for _, item := range req.Items {
		if _, ok := s.data.findProduct(item.ProductID); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no product with this code"})
			return
		}
		if item.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be greater than zero"})
			return
		}
	}

	discountCode := ""
	if req.DiscountCode != nil {
		discountCode = *req.DiscountCode
		if _, ok := s.data.discountCodes[discountCode]; !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown discount code"})
			return
		}
	}

	newOrder := order{
		ID:            uuid.NewString(),
		CustomerID:    userID,
		Status:        0,
		PaymentMethod: req.PaymentMethod,
		Date:          time.Now().UTC().Format(time.RFC3339),
		DiscountCode:  discountCode,
		Items:         req.Items,
	}
	s.data.orders = append(s.data.orders, newOrder)

	// The order consumed the cart; the next fetch starts clean.
	delete(s.data.carts, userID)

	s.log.Info("order created", zap.String("order_id", newOrder.ID), zap.String("user_id", userID))
	c.JSON(http.StatusCreated, api.CreateOrderResponse{
		ID:            newOrder.ID,
		CustomerID:    newOrder.CustomerID,
		Status:        newOrder.Status,
		PaymentMethod: newOrder.PaymentMethod,
		Date:          newOrder.Date,
	})
}
