package contracts

import (
	"time"

	"Fluxo/internal/domain/debt"
)

type DebtCreateRequest struct {
	Creditor    string     `json:"creditor" binding:"required,max=255"`
	Description string     `json:"description" binding:"omitempty,max=255"`
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	DueDate     *time.Time `json:"due_date" binding:"omitempty"`
}

type DebtUpdateRequest struct {
	Creditor    *string    `json:"creditor" binding:"omitempty,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=255"`
	Amount      *float64   `json:"amount" binding:"omitempty,gt=0"`
	DueDate     *time.Time `json:"due_date" binding:"omitempty"`
}

type DebtSettleRequest struct {
	AccountId string `json:"account_id" binding:"omitempty"`
}

type DebtCreateResponse struct {
	Message string     `json:"message"`
	Debt    *debt.Debt `json:"debt"`
}

type DebtSingleResponse struct {
	Debt *debt.Debt `json:"debt"`
}

type DebtTotalResponse struct {
	TotalOpen float64 `json:"totalOpen"`
}
