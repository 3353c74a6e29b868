package contracts

import "Fluxo/internal/domain/loan"

type LoanCreateRequest struct {
	Counterparty string  `json:"counterparty" binding:"required,max=255"`
	Description  string  `json:"description" binding:"omitempty,max=255"`
	Direction    string  `json:"direction" binding:"required,oneof=LENT BORROWED"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
}

type LoanPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type LoanCreateResponse struct {
	Message string     `json:"message"`
	Loan    *loan.Loan `json:"loan"`
}

type LoanSingleResponse struct {
	Loan *loan.Loan `json:"loan"`
}
