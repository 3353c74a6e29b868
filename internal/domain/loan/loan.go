package loan

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Loan struct {
	Id              ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId          ulid.ULID `gorm:"type:varchar(26);index:idx_loans_user_id;not null" json:"userId"`
	Counterparty    string    `gorm:"type:varchar(255);not null" json:"counterparty"`
	Description     string    `gorm:"type:varchar(255)" json:"description"`
	Direction       Direction `gorm:"type:varchar(10);not null" json:"direction"`
	Amount          float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	RemainingAmount float64   `gorm:"type:decimal(15,2);not null" json:"remainingAmount"`
	IsSettled       bool      `gorm:"not null;default:false" json:"isSettled"`
	CreatedAt       time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Loan) TableName() string {
	return "loans"
}

// Direction diz de que lado do empréstimo o usuário está.
type Direction string

const (
	DirectionLent     Direction = "LENT"
	DirectionBorrowed Direction = "BORROWED"
)

func (d Direction) IsValid() bool {
	switch d {
	case DirectionLent, DirectionBorrowed:
		return true
	}
	return false
}
