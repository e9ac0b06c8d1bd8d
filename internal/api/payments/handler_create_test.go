package payments

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"adcards-backend/config"
	"adcards-backend/internal/app/http/middleware"
	"adcards-backend/internal/domain/packages"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPaymentRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/create-payment", middleware.AuthMiddleware(), CreatePayment)
	return r
}

func bearerFor(t *testing.T, userID uint, email string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    "user",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(config.JWT_SECRET))
	require.NoError(t, err)
	return "Bearer " + s
}

func postCreatePayment(r *gin.Engine, auth, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-payment", strings.NewReader(body))
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePaymentWithoutCredential(t *testing.T) {
	config.JWT_SECRET = "test-secret"
	r := createPaymentRouter()

	w := postCreatePayment(r, "", `{"packageType":"starter"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreatePaymentRejectsUnknownPackage(t *testing.T) {
	config.JWT_SECRET = "test-secret"
	config.STRIPE_SECRET_KEY = ""
	r := createPaymentRouter()
	auth := bearerFor(t, 7, "buyer@example.com")

	for _, pkg := range []string{"", "gold", "Professional"} {
		w := postCreatePayment(r, auth, `{"packageType":"`+pkg+`"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code, "package %q", pkg)
		assert.Contains(t, w.Body.String(), "Invalid package type")
	}
}

// Without a Stripe key the handler must still succeed structurally: a
// sentinel URL and a generated order id, and no store write (database.DB is
// nil here, so any write would panic the test).
func TestCreatePaymentDegradedMode(t *testing.T) {
	config.JWT_SECRET = "test-secret"
	config.STRIPE_SECRET_KEY = ""
	r := createPaymentRouter()
	auth := bearerFor(t, 7, "buyer@example.com")

	for _, code := range []string{packages.Starter, packages.Professional, packages.Enterprise} {
		w := postCreatePayment(r, auth, `{"packageType":"`+code+`"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			URL     string `json:"url"`
			Message string `json:"message"`
			OrderID string `json:"orderId"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "#", resp.URL)
		assert.Contains(t, resp.Message, "Stripe not configured")

		_, err := uuid.Parse(resp.OrderID)
		assert.NoError(t, err, "placeholder order id should be a valid uuid")
	}
}

func TestCreatePaymentDegradedModeWithBusinessData(t *testing.T) {
	config.JWT_SECRET = "test-secret"
	config.STRIPE_SECRET_KEY = ""
	r := createPaymentRouter()
	auth := bearerFor(t, 7, "buyer@example.com")

	body := `{"packageType":"enterprise","businessData":{"businessName":"Santini Deli","industry":"food","phone":"555-0101","website":"https://santini.example"}}`
	w := postCreatePayment(r, auth, body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"url":"#"`)
}

func TestCreatePaymentRejectsMalformedBody(t *testing.T) {
	config.JWT_SECRET = "test-secret"
	r := createPaymentRouter()
	auth := bearerFor(t, 7, "buyer@example.com")

	w := postCreatePayment(r, auth, `{"packageType":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
