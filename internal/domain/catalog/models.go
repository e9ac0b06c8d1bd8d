package catalog

import "time"

// AdTemplate is one pre-made ad-card design shown in the gallery.
type AdTemplate struct {
	ID           int64   `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"not null" json:"name"`
	Category     string  `gorm:"not null;index" json:"category"`
	TemplateData string  `gorm:"type:jsonb;not null;default:'{}'" json:"template_data"`
	AssetURLs    *string `gorm:"column:asset_urls" json:"asset_urls,omitempty"`
	IsActive     bool    `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Download is a per-user grant to fetch a delivered ad package.
type Download struct {
	ID            string     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        uint       `gorm:"not null;index" json:"user_id"`
	OrderID       *string    `gorm:"type:uuid" json:"order_id,omitempty"`
	AdTemplateID  *int64     `json:"ad_template_id,omitempty"`
	DownloadURL   string     `gorm:"not null" json:"download_url"`
	DownloadCount int        `gorm:"not null;default:0" json:"download_count"`
	DownloadedAt  *time.Time `json:"downloaded_at,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
