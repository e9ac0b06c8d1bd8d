package users

import (
	"time"

	"adcards-backend/internal/domain/orders"
	"adcards-backend/internal/domain/users"
)

type MeResponse struct {
	User         UserDTO        `json:"user"`
	Profile      *ProfileDTO    `json:"profile,omitempty"`
	RecentOrders []OrderSummary `json:"recent_orders"`
}

type UserDTO struct {
	ID         uint   `json:"id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
}

type ProfileDTO struct {
	BusinessName    *string `json:"business_name,omitempty"`
	BusinessType    *string `json:"business_type,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Website         *string `json:"website,omitempty"`
	Address         *string `json:"address,omitempty"`
	City            *string `json:"city,omitempty"`
	State           *string `json:"state,omitempty"`
	Zip             *string `json:"zip,omitempty"`
	MarketingBudget *string `json:"marketing_budget,omitempty"`
	TargetAudience  *string `json:"target_audience,omitempty"`
}

type OrderSummary struct {
	ID          string    `json:"id"`
	PackageType string    `json:"package_type"`
	Amount      int64     `json:"amount"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func BuildProfileDTO(p *users.Profile) *ProfileDTO {
	if p == nil {
		return nil
	}
	return &ProfileDTO{
		BusinessName:    p.BusinessName,
		BusinessType:    p.BusinessType,
		Phone:           p.Phone,
		Website:         p.Website,
		Address:         p.Address,
		City:            p.City,
		State:           p.State,
		Zip:             p.Zip,
		MarketingBudget: p.MarketingBudget,
		TargetAudience:  p.TargetAudience,
	}
}

func BuildOrderSummaries(list []orders.Order) []OrderSummary {
	out := make([]OrderSummary, 0, len(list))
	for _, o := range list {
		out = append(out, OrderSummary{
			ID:          o.ID,
			PackageType: o.PackageType,
			Amount:      o.Amount,
			Currency:    o.Currency,
			Status:      o.Status,
			CreatedAt:   o.CreatedAt,
		})
	}
	return out
}
