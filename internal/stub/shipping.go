package stub

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/api"
)

func (s *Server) listShippingFees(c *gin.Context) {
	pageNumber, pageSize, err := parsePaginationParams(c.Query("pageNumber"), c.Query("pageSize"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pagination parameters"})
		return
	}

	s.data.mu.Lock()
	fees := append([]api.ShippingFee(nil), s.data.shippingFees...)
	s.data.mu.Unlock()

	totalItems := len(fees)
	totalPages := (totalItems + pageSize - 1) / pageSize

	start := (pageNumber - 1) * pageSize
	if start > totalItems {
		start = totalItems
	}
	end := start + pageSize
	if end > totalItems {
		end = totalItems
	}

	c.JSON(http.StatusOK, api.ShippingFeePage{
		Items:      fees[start:end],
		TotalItems: totalItems,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

func parsePaginationParams(pageStr, sizeStr string) (int, int, error) {
	page := 1
	size := 10

	if pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil || p < 1 {
			return 0, 0, strconv.ErrSyntax
		}
		page = p
	}
	if sizeStr != "" {
		s, err := strconv.Atoi(sizeStr)
		if err != nil || s < 1 {
			return 0, 0, strconv.ErrSyntax
		}
		size = s
	}
	return page, size, nil
}
