package marketing

import "time"

// Lead is a marketing-funnel record keyed by email, independent of the
// order lifecycle. Status is free text ("preview_requested",
// "purchase_intent", "signup", ...).
type Lead struct {
	ID           string  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email        string  `gorm:"not null;uniqueIndex:idx_leads_email" json:"email"`
	Status       string  `json:"status"`
	AdID         *int64  `gorm:"column:ad_id" json:"ad_id,omitempty"`
	BusinessType *string `gorm:"column:business_type" json:"business_type,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Preview records a single preview view. Rows are write-once; Converted is
// inserted as false and no handler currently flips it.
type Preview struct {
	ID        string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string    `gorm:"not null;index" json:"email"`
	AdID      int64     `gorm:"column:ad_id" json:"ad_id"`
	Converted bool      `gorm:"not null;default:false" json:"converted"`
	ViewedAt  time.Time `gorm:"autoCreateTime" json:"viewed_at"`
}

// Purchase is a purchase-intent row written from the pricing page, before
// (and independent of) any checkout session.
type Purchase struct {
	ID     string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID *uint  `gorm:"index" json:"user_id,omitempty"`
	AdID   int64  `gorm:"column:ad_id" json:"ad_id"`
	Price  int64  `json:"price"`

	CreatedAt time.Time `json:"created_at"`
}
