package admin

import (
	"net/http"

	"adcards-backend/database"
	"adcards-backend/internal/domain/marketing"
	"adcards-backend/internal/domain/orders"

	"github.com/gin-gonic/gin"
)

type AdminStats struct {
	TotalOrders     int64 `json:"total_orders"`
	CompletedOrders int64 `json:"completed_orders"`
	TotalRevenue    int64 `json:"total_revenue"`
	TotalLeads      int64 `json:"total_leads"`
}

func AdminDashboard(c *gin.Context) {
	var stats AdminStats

	if err := database.DB.Model(&orders.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	database.DB.Model(&orders.Order{}).
		Where("status = ?", orders.StatusCompleted).
		Count(&stats.CompletedOrders)
	database.DB.Model(&orders.Order{}).
		Where("status = ?", orders.StatusCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.TotalRevenue)
	database.DB.Model(&marketing.Lead{}).Count(&stats.TotalLeads)

	c.JSON(http.StatusOK, stats)
}

func ListAllOrders(c *gin.Context) {
	var list []orders.Order
	if err := database.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func ListAllLeads(c *gin.Context) {
	var leads []marketing.Lead
	if err := database.DB.Order("created_at DESC").Find(&leads).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leads"})
		return
	}
	c.JSON(http.StatusOK, leads)
}
