package subscription

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Subscription struct {
	Id              ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId          ulid.ULID `gorm:"type:varchar(26);index:idx_subscriptions_user_id;not null" json:"userId"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Cost            float64   `gorm:"type:decimal(15,2);not null" json:"cost"`
	Category        string    `gorm:"type:varchar(100)" json:"category"`
	BillingCycle    Cycle     `gorm:"type:varchar(20);not null" json:"billingCycle"`
	NextPaymentDate time.Time `gorm:"not null;index:idx_subscriptions_next_payment" json:"nextPaymentDate"`
	IsActive        bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt       time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

type Cycle string

const (
	CycleMonthly Cycle = "MONTHLY"
	CycleYearly  Cycle = "YEARLY"
)

func (c Cycle) IsValid() bool {
	switch c {
	case CycleMonthly, CycleYearly:
		return true
	}
	return false
}

// MonthlyCost normaliza o custo para base mensal, usado no resumo.
func (s *Subscription) MonthlyCost() float64 {
	if s.BillingCycle == CycleYearly {
		return s.Cost / 12
	}
	return s.Cost
}
