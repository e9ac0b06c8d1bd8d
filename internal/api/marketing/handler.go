package marketing

import (
	"errors"
	"net/http"

	"adcards-backend/database"
	"adcards-backend/internal/domain/marketing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type leadInput struct {
	Email        string  `json:"email" binding:"required,email"`
	Status       string  `json:"status"`
	AdID         *int64  `json:"adId"`
	BusinessType *string `json:"businessType"`
}

// leadUpsert is the write UpsertLead performs once the existing row (or its
// absence) is known. The insert-vs-update decision lives in planLeadUpsert
// so it can be exercised without a store.
type leadUpsert struct {
	Update  bool
	Updates map[string]interface{}
	Lead    marketing.Lead
}

func planLeadUpsert(existing *marketing.Lead, in leadInput) leadUpsert {
	status := in.Status
	if status == "" {
		status = "preview_requested"
	}

	if existing != nil {
		updates := map[string]interface{}{"status": status}
		if in.AdID != nil {
			updates["ad_id"] = *in.AdID
		}
		if in.BusinessType != nil {
			updates["business_type"] = *in.BusinessType
		}
		lead := *existing
		lead.Status = status
		return leadUpsert{Update: true, Updates: updates, Lead: lead}
	}

	return leadUpsert{Lead: marketing.Lead{
		Email:        in.Email,
		Status:       status,
		AdID:         in.AdID,
		BusinessType: in.BusinessType,
	}}
}

// UpsertLead records funnel state for an email address. One row per email:
// a repeat submission overwrites status and the optional fields.
func UpsertLead(c *gin.Context) {
	var body leadInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid email"})
		return
	}

	var existing *marketing.Lead
	var found marketing.Lead
	err := database.DB.Where("email = ?", body.Email).First(&found).Error
	switch {
	case err == nil:
		existing = &found
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up lead"})
		return
	}

	plan := planLeadUpsert(existing, body)
	if plan.Update {
		if err := database.DB.Model(&plan.Lead).Updates(plan.Updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update lead"})
			return
		}
	} else {
		if err := database.DB.Create(&plan.Lead).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create lead"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"id": plan.Lead.ID, "status": plan.Lead.Status})
}

// TrackPreview writes one row per preview view, always with converted=false.
func TrackPreview(c *gin.Context) {
	var body struct {
		Email string `json:"email" binding:"required,email"`
		AdID  int64  `json:"adId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid email"})
		return
	}

	preview := marketing.Preview{
		Email:     body.Email,
		AdID:      body.AdID,
		Converted: false,
	}
	if err := database.DB.Create(&preview).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to track preview"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": preview.ID})
}

// TrackPurchaseIntent records a pricing-page purchase click before any
// checkout session exists.
func TrackPurchaseIntent(c *gin.Context) {
	var body struct {
		AdID  int64 `json:"adId"`
		Price int64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	purchase := marketing.Purchase{AdID: body.AdID, Price: body.Price}
	if userID := c.GetUint("user_id"); userID != 0 {
		purchase.UserID = &userID
	}

	if err := database.DB.Create(&purchase).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to track purchase"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": purchase.ID})
}
