package routes

import (
	adminapi "adcards-backend/internal/api/admin"
	authapi "adcards-backend/internal/api/auth"
	catalogapi "adcards-backend/internal/api/catalog"
	marketingapi "adcards-backend/internal/api/marketing"
	"adcards-backend/internal/api/payments"
	"adcards-backend/internal/api/users"
	"adcards-backend/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/templates", catalogapi.ListTemplates)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/verify", users.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Marketing funnel writes from the storefront
	public.POST("/leads", marketingapi.UpsertLead)
	public.POST("/previews", marketingapi.TrackPreview)
	public.POST("/purchases", middleware.OptionalAuthMiddleware(), marketingapi.TrackPurchaseIntent)

	// Verification is public: the success page calls it right after the
	// redirect from the hosted checkout, before any session is restored.
	public.POST("/verify-payment", payments.VerifyPayment)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", users.GetCurrentUser)
	auth.PUT("/profile", users.UpdateProfile)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.POST("/create-payment", payments.CreatePayment)
	auth.GET("/orders", payments.ListOrders)
	auth.GET("/downloads", catalogapi.ListDownloads)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/orders", adminapi.ListAllOrders)
	admin.GET("/leads", adminapi.ListAllLeads)
}
