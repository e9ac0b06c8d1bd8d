package orders

import "time"

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// BusinessData is the optional business-profile payload attached to an
// order. Named optional columns instead of a free-form JSON blob.
type BusinessData struct {
	BusinessName *string `json:"businessName,omitempty"`
	Industry     *string `json:"industry,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Website      *string `json:"website,omitempty"`
}

type Order struct {
	ID          string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	Email       string `gorm:"not null" json:"email"`
	PackageType string `gorm:"type:varchar(20);not null" json:"package_type"`
	Amount      int64  `gorm:"not null" json:"amount"`
	Currency    string `gorm:"type:varchar(10);not null;default:'usd'" json:"currency"`
	Status      string `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	Business BusinessData `gorm:"embedded;embeddedPrefix:business_" json:"business_data"`

	StripeSessionID *string `gorm:"column:stripe_session_id;uniqueIndex:idx_orders_stripe_session_id" json:"stripe_session_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Terminal reports whether the order has reached a final status.
func (o *Order) Terminal() bool {
	return o.Status == StatusCompleted || o.Status == StatusCancelled
}

// CanTransition allows pending→completed and pending→cancelled only.
// Terminal statuses are never left, and pending is never re-entered.
func CanTransition(from, to string) bool {
	if from != StatusPending {
		return false
	}
	return to == StatusCompleted || to == StatusCancelled
}
