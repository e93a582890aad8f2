package stub

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/api"
)

func (s *Server) sendNotification(c *gin.Context) {
	var req api.NotifyAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	if s.data.failNotifications > 0 {
		s.data.failNotifications--
		c.JSON(http.StatusInternalServerError, gin.H{"error": "notification service unavailable"})
		return
	}

	s.data.notifications = append(s.data.notifications, notification{
		OrderNumber: req.OrderNumber,
		Total:       req.Total,
	})
	c.JSON(http.StatusOK, gin.H{"message": "notification queued"})
}
