package stub

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront/internal/api"
)

type addCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

func (s *Server) getCart(c *gin.Context) {
	userID := c.GetString("userId")

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	lines := s.data.carts[userID]
	items := make([]api.CartItemResponse, 0, len(lines))
	var total float64
	for _, line := range lines {
		p, ok := s.data.findProduct(line.ProductID)
		if !ok {
			continue
		}
		items = append(items, api.CartItemResponse{
			ID:          line.ID,
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    line.Quantity,
			Size:        line.Size,
			Color:       line.Color,
			Price:       p.Price,
		})
		total += p.Price * float64(line.Quantity)
	}

	c.JSON(http.StatusOK, api.CartResponse{
		ID:        "cart-" + userID,
		UserID:    userID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Items:     items,
		Total:     total,
	})
}

func (s *Server) addCartItem(c *gin.Context) {
	userID := c.GetString("userId")

	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be at least 1"})
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	if _, ok := s.data.findProduct(req.ProductID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no product with this code"})
		return
	}

	lines := s.data.carts[userID]
	for i := range lines {
		if lines[i].ProductID == req.ProductID && lines[i].Size == req.Size && lines[i].Color == req.Color {
			lines[i].Quantity += req.Quantity
			s.data.carts[userID] = lines
			c.JSON(http.StatusOK, gin.H{"message": "quantity updated"})
			return
		}
	}

	s.data.carts[userID] = append(lines, cartLine{
		ID:        uuid.NewString(),
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Size:      req.Size,
		Color:     req.Color,
	})
	c.JSON(http.StatusCreated, gin.H{"message": "item added"})
}
