package payments

import (
	"fmt"
	"log"
	"net/http"

	"adcards-backend/config"
	"adcards-backend/database"
	"adcards-backend/internal/domain/orders"
	"adcards-backend/internal/domain/packages"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
	"github.com/stripe/stripe-go/v75/customer"
)

// CreatePayment opens a hosted checkout session for one of the fixed ad
// packages. It writes a pending order row first, then asks Stripe for a
// session whose redirect URLs embed the new order id. Without a Stripe key
// it degrades to a placeholder response and writes nothing.
func CreatePayment(c *gin.Context) {
	userID := c.GetUint("user_id")
	email := c.GetString("email")
	if userID == 0 || email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var body struct {
		PackageType  string               `json:"packageType"`
		BusinessData *orders.BusinessData `json:"businessData"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	pkg, ok := packages.ByCode(body.PackageType)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid package type"})
		return
	}

	stripe.Key = config.STRIPE_SECRET_KEY
	if stripe.Key == "" {
		// Keeps the storefront demoable without payment configuration:
		// structurally valid response, no store write.
		log.Println("⚠️ STRIPE_SECRET_KEY not set - using placeholder checkout")
		c.JSON(http.StatusOK, gin.H{
			"url":     "#",
			"message": "Stripe not configured - add STRIPE_SECRET_KEY to test payments",
			"orderId": uuid.NewString(),
		})
		return
	}

	// Reuse an existing Stripe customer for this email if there is one;
	// otherwise Stripe creates one from customer_email at session time.
	var customerID string
	listParams := &stripe.CustomerListParams{Email: stripe.String(email)}
	listParams.Limit = stripe.Int64(1)
	iter := customer.List(listParams)
	if iter.Next() {
		customerID = iter.Customer().ID
	}

	order := orders.Order{
		UserID:      userID,
		Email:       email,
		PackageType: pkg.Code,
		Amount:      pkg.Amount,
		Currency:    "usd",
		Status:      orders.StatusPending,
	}
	if body.BusinessData != nil {
		order.Business = *body.BusinessData
	}

	if err := database.DB.Create(&order).Error; err != nil {
		log.Println("❌ Failed to insert order:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order record"})
		return
	}

	origin := c.GetHeader("Origin")
	if origin == "" {
		origin = config.APP_URL
	}

	businessLabel := "your business"
	if body.BusinessData != nil && body.BusinessData.BusinessName != nil && *body.BusinessData.BusinessName != "" {
		businessLabel = *body.BusinessData.BusinessName
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(origin + "/payment-success?session_id={CHECKOUT_SESSION_ID}&order_id=" + order.ID),
		CancelURL:  stripe.String(origin + "/payment-cancelled?order_id=" + order.ID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(order.Currency),
					UnitAmount: stripe.Int64(pkg.Amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(pkg.DisplayName),
						Description: stripe.String("Professional advertising package for " + businessLabel),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Metadata = map[string]string{
		"order_id":     order.ID,
		"user_id":      fmt.Sprint(userID),
		"package_type": pkg.Code,
	}
	if customerID != "" {
		params.Customer = stripe.String(customerID)
	} else {
		params.CustomerEmail = stripe.String(email)
	}

	s, err := checkoutsession.New(params)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create checkout session", "details": err.Error()})
		return
	}

	// Not atomic with the session create: a failure here leaves a session
	// without a stored reference, which verification then resolves by id.
	if err := database.DB.Model(&orders.Order{}).
		Where("id = ?", order.ID).
		Update("stripe_session_id", s.ID).Error; err != nil {
		log.Println("❌ Failed to store session id on order:", err)
	}

	c.JSON(http.StatusOK, gin.H{"url": s.URL, "orderId": order.ID})
}
