package catalog

import (
	"net/http"

	"adcards-backend/database"
	"adcards-backend/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

// ListTemplates returns active gallery templates, optionally narrowed by
// ?category= and a ?q= name search.
func ListTemplates(c *gin.Context) {
	query := database.DB.Where("is_active = ?", true)

	if category := c.Query("category"); category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}
	if q := c.Query("q"); q != "" {
		query = query.Where("name ILIKE ?", "%"+q+"%")
	}

	var templates []catalog.AdTemplate
	if err := query.Order("created_at DESC").Find(&templates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load templates"})
		return
	}

	c.JSON(http.StatusOK, templates)
}

// ListDownloads returns the caller's download grants.
func ListDownloads(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var downloads []catalog.Download
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&downloads).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load downloads"})
		return
	}

	c.JSON(http.StatusOK, downloads)
}
