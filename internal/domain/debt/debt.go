package debt

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Debt struct {
	Id          ulid.ULID  `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId      ulid.ULID  `gorm:"type:varchar(26);index:idx_debts_user_id;not null" json:"userId"`
	Creditor    string     `gorm:"type:varchar(255);not null" json:"creditor"`
	Description string     `gorm:"type:varchar(255)" json:"description"`
	Amount      float64    `gorm:"type:decimal(15,2);not null" json:"amount"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	IsSettled   bool       `gorm:"not null;default:false;index:idx_debts_settled" json:"isSettled"`
	SettledAt   *time.Time `json:"settledAt,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Debt) TableName() string {
	return "debts"
}
