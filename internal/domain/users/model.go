package users

import "time"

type User struct {
	ID           uint    `gorm:"primaryKey"`
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`
	Role         string
	IsVerified   bool

	Profile *Profile

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile carries the business metadata collected at signup and edited in
// account settings. 1:1 with User.
type Profile struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"not null;uniqueIndex:idx_profiles_user_id"`
	Email  string

	BusinessName    *string `gorm:"column:business_name"`
	BusinessType    *string `gorm:"column:business_type"`
	Phone           *string
	Website         *string
	Address         *string
	City            *string
	State           *string
	Zip             *string
	MarketingBudget *string `gorm:"column:marketing_budget"`
	TargetAudience  *string `gorm:"column:target_audience"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
