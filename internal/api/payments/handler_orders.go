package payments

import (
	"net/http"

	"adcards-backend/database"
	"adcards-backend/internal/domain/orders"

	"github.com/gin-gonic/gin"
)

// ListOrders returns the caller's orders, newest first. The success and
// dashboard pages read these after checkout.
func ListOrders(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var list []orders.Order
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	c.JSON(http.StatusOK, list)
}
