package recurring

import (
	"time"

	"Fluxo/internal/domain/transaction"

	"github.com/oklog/ulid/v2"
)

type RecurringRule struct {
	Id          ulid.ULID         `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId      ulid.ULID         `gorm:"type:varchar(26);index:idx_recurring_user_id;not null" json:"userId"`
	Description string            `gorm:"type:varchar(255);not null" json:"description"`
	Amount      float64           `gorm:"type:decimal(15,2);not null" json:"amount"`
	Type        transaction.Types `gorm:"type:varchar(10);not null" json:"type"`
	Category    string            `gorm:"type:varchar(100)" json:"category"`
	AccountId   ulid.ULID         `gorm:"type:varchar(26);index:idx_recurring_account_id;not null" json:"accountId"`
	Frequency   FrequencyType     `gorm:"type:varchar(20);not null" json:"frequency"`
	DayOfMonth  int               `gorm:"default:1" json:"dayOfMonth"`
	StartDate   time.Time         `gorm:"not null" json:"startDate"`
	NextRun     time.Time         `gorm:"not null;index:idx_recurring_next_run" json:"nextRun"`
	IsActive    bool              `gorm:"not null;default:true;index:idx_recurring_active" json:"isActive"`
	IsBusiness  bool              `gorm:"not null;default:false" json:"isBusiness"`
	CreatedAt   time.Time         `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (RecurringRule) TableName() string {
	return "recurring_rules"
}

type FrequencyType string

const (
	FrequencyMonthly FrequencyType = "MONTHLY"
	FrequencyYearly  FrequencyType = "YEARLY"
)

func (f FrequencyType) IsValid() bool {
	switch f {
	case FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}
