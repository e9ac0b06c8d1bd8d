package users

import (
	"net/http"
	"time"

	"adcards-backend/database"
	"adcards-backend/internal/domain/orders"
	"adcards-backend/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func GetCurrentUser(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.
		Preload("Profile").
		Where("email = ?", email).
		First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var recent []orders.Order
	if err := database.DB.
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Limit(5).
		Find(&recent).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	resp := MeResponse{
		User: UserDTO{
			ID:         user.ID,
			Email:      user.Email,
			Role:       user.Role,
			IsVerified: user.IsVerified,
		},
		Profile:      BuildProfileDTO(user.Profile),
		RecentOrders: BuildOrderSummaries(recent),
	}

	c.JSON(http.StatusOK, resp)
}

func VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}

	var verif users.VerificationToken
	if err := database.DB.Where("token = ?", token).First(&verif).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
		return
	}

	if err := database.DB.Model(&users.User{}).
		Where("id = ?", verif.UserID).
		Update("is_verified", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify user"})
		return
	}

	database.DB.Delete(&verif)

	c.JSON(http.StatusOK, gin.H{"message": "Email verified. You can log in now."})
}

func UpdateProfile(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body struct {
		BusinessName    *string `json:"businessName"`
		BusinessType    *string `json:"businessType"`
		Phone           *string `json:"phone"`
		Website         *string `json:"website"`
		Address         *string `json:"address"`
		City            *string `json:"city"`
		State           *string `json:"state"`
		Zip             *string `json:"zip"`
		MarketingBudget *string `json:"marketingBudget"`
		TargetAudience  *string `json:"targetAudience"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	set := func(column string, v *string) {
		if v != nil {
			updates[column] = *v
		}
	}
	set("business_name", body.BusinessName)
	set("business_type", body.BusinessType)
	set("phone", body.Phone)
	set("website", body.Website)
	set("address", body.Address)
	set("city", body.City)
	set("state", body.State)
	set("zip", body.Zip)
	set("marketing_budget", body.MarketingBudget)
	set("target_audience", body.TargetAudience)

	if err := database.DB.Model(&users.Profile{}).
		Where("user_id = ?", userID).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}
