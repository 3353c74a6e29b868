package contracts

import (
	"time"

	"Fluxo/internal/domain/transaction"
)

type TransactionCreateRequest struct {
	AccountId   string     `json:"account_id" binding:"required"`
	Type        string     `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Category    string     `json:"category" binding:"omitempty,max=100"`
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	Description string     `json:"description" binding:"omitempty,max=255"`
	Tags        string     `json:"tags" binding:"omitempty,max=255"`
	IsBusiness  bool       `json:"is_business"`
	Date        *time.Time `json:"date" binding:"omitempty"`
}

type TransactionUpdateRequest struct {
	Category    *string    `json:"category" binding:"omitempty,max=100"`
	Amount      *float64   `json:"amount" binding:"omitempty,gt=0"`
	Description *string    `json:"description" binding:"omitempty,max=255"`
	Tags        *string    `json:"tags" binding:"omitempty,max=255"`
	IsBusiness  *bool      `json:"is_business" binding:"omitempty"`
	Date        *time.Time `json:"date" binding:"omitempty"`
}

type TransactionAddTagRequest struct {
	Tag string `json:"tag" binding:"required,max=50"`
}

type TransactionCreateResponse struct {
	Message     string                   `json:"message"`
	Transaction *transaction.Transaction `json:"transaction"`
}

type TransactionSingleResponse struct {
	Transaction *transaction.Transaction `json:"transaction"`
}

type TransactionMonthResponse struct {
	Year         int                        `json:"year"`
	Month        int                        `json:"month"`
	Transactions []*transaction.Transaction `json:"transactions"`
}
