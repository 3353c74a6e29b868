package budget

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Budget struct {
	Id           ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId       ulid.ULID `gorm:"type:varchar(26);index:idx_budgets_user_id;uniqueIndex:idx_budgets_user_category,priority:1;not null" json:"userId"`
	Category     string    `gorm:"type:varchar(100);uniqueIndex:idx_budgets_user_category,priority:2;not null" json:"category"`
	MonthlyLimit float64   `gorm:"type:decimal(15,2);not null" json:"monthlyLimit"`
	CreatedAt    time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Budget) TableName() string {
	return "budgets"
}

type BudgetState string

const (
	StateOK       BudgetState = "OK"
	StateWarning  BudgetState = "WARNING"
	StateExceeded BudgetState = "EXCEEDED"
)

// Status resume um orçamento contra o gasto do mês corrente.
type Status struct {
	Budget    *Budget     `json:"budget"`
	Spent     float64     `json:"spent"`
	Remaining float64     `json:"remaining"`
	State     BudgetState `json:"state"`
}

// warningRatio marca o orçamento como WARNING a partir de 80% do limite.
const warningRatio = 0.8

func (b *Budget) StatusFor(spent float64) *Status {
	state := StateOK
	switch {
	case spent > b.MonthlyLimit:
		state = StateExceeded
	case spent >= b.MonthlyLimit*warningRatio:
		state = StateWarning
	}

	return &Status{
		Budget:    b,
		Spent:     spent,
		Remaining: b.MonthlyLimit - spent,
		State:     state,
	}
}
