package contracts

import "Fluxo/internal/domain/account"

type AccountCreateRequest struct {
	Name           string  `json:"name" binding:"required,max=100"`
	Type           string  `json:"type" binding:"required,oneof=BANK CASH CREDIT_CARD"`
	InitialBalance float64 `json:"initial_balance" binding:"omitempty"`
	Color          string  `json:"color" binding:"omitempty,max=7"`
	PaymentDay     *int    `json:"payment_day" binding:"omitempty,min=1,max=31"`
}

type AccountUpdateRequest struct {
	Name       *string `json:"name" binding:"omitempty,max=100"`
	Type       *string `json:"type" binding:"omitempty,oneof=BANK CASH CREDIT_CARD"`
	Color      *string `json:"color" binding:"omitempty,max=7"`
	PaymentDay *int    `json:"payment_day" binding:"omitempty,min=1,max=31"`
	IsActive   *bool   `json:"is_active" binding:"omitempty"`
}

type AccountTransferRequest struct {
	FromAccountId string  `json:"from_account_id" binding:"required"`
	ToAccountId   string  `json:"to_account_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
}

type AccountCreateResponse struct {
	Message string           `json:"message"`
	Account *account.Account `json:"account"`
}

type AccountSingleResponse struct {
	Account *account.Account `json:"account"`
}

type AccountBalanceResponse struct {
	Balance float64 `json:"balance"`
}
