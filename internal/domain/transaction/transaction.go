package transaction

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Transaction struct {
	Id           ulid.ULID  `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId       ulid.ULID  `gorm:"type:varchar(26);index:idx_transactions_user_id;index:idx_transactions_user_date,priority:1;not null" json:"userId"`
	AccountId    ulid.ULID  `gorm:"type:varchar(26);index:idx_transactions_account_id;not null" json:"accountId"`
	Type         Types      `gorm:"type:varchar(10);not null;index:idx_transactions_type" json:"type"`
	Category     string     `gorm:"type:varchar(100);index:idx_transactions_category" json:"category"`
	Amount       float64    `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description  string     `gorm:"type:varchar(255)" json:"description"`
	Tags         string     `gorm:"type:varchar(255)" json:"tags"`
	IsBusiness   bool       `gorm:"not null;default:false" json:"isBusiness"`
	OriginRuleId *ulid.ULID `gorm:"type:varchar(26);uniqueIndex:idx_transactions_origin_occurrence" json:"originRuleId,omitempty"`
	Date         time.Time  `gorm:"not null;index:idx_transactions_user_date,priority:2;uniqueIndex:idx_transactions_origin_occurrence" json:"date"`
	CreatedAt    time.Time  `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Transaction) TableName() string {
	return "transactions"
}

type Types string

const (
	Income  Types = "INCOME"
	Expense Types = "EXPENSE"
)

func (t Types) IsValid() bool {
	switch t {
	case Income, Expense:
		return true
	}
	return false
}

// SignedAmount devolve o valor com sinal. O campo Amount é sempre magnitude;
// a direção vive no Type.
func (t *Transaction) SignedAmount() float64 {
	if t.Type == Expense {
		return -t.Amount
	}
	return t.Amount
}
