package investment

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Investment struct {
	Id           ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId       ulid.ULID `gorm:"type:varchar(26);index:idx_investments_user_id;not null" json:"userId"`
	Symbol       string    `gorm:"type:varchar(20);not null" json:"symbol"`
	Name         string    `gorm:"type:varchar(255)" json:"name"`
	Quantity     float64   `gorm:"type:decimal(15,6);not null" json:"quantity"`
	AveragePrice float64   `gorm:"type:decimal(15,2);not null" json:"averagePrice"`
	CurrentPrice float64   `gorm:"type:decimal(15,2);not null" json:"currentPrice"`
	CreatedAt    time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Investment) TableName() string {
	return "investments"
}

func (i *Investment) MarketValue() float64 {
	return i.Quantity * i.CurrentPrice
}

func (i *Investment) CostBasis() float64 {
	return i.Quantity * i.AveragePrice
}

// ProfitLoss é o resultado não realizado da posição.
func (i *Investment) ProfitLoss() float64 {
	return i.MarketValue() - i.CostBasis()
}
