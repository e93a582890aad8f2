package stub

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/api"
)

func (s *Server) getDiscountCode(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))

	s.data.mu.Lock()
	descriptor, ok := s.data.discountCodes[code]
	s.data.mu.Unlock()

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "discount code not found"})
		return
	}
	c.JSON(http.StatusOK, descriptor)
}

// AddDiscountCode seeds an extra descriptor, mostly for tests.
func (s *Server) AddDiscountCode(descriptor api.DiscountCode) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	s.data.discountCodes[descriptor.Code] = descriptor
}
