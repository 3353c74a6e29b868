package contracts

import "Fluxo/internal/domain/budget"

type BudgetCreateRequest struct {
	Category     string  `json:"category" binding:"required,max=100"`
	MonthlyLimit float64 `json:"monthly_limit" binding:"required,gt=0"`
}

type BudgetUpdateRequest struct {
	MonthlyLimit *float64 `json:"monthly_limit" binding:"omitempty,gt=0"`
}

type BudgetCreateResponse struct {
	Message string         `json:"message"`
	Budget  *budget.Budget `json:"budget"`
}

type BudgetSingleResponse struct {
	Budget *budget.Budget `json:"budget"`
}

type BudgetStatusesResponse struct {
	Statuses []*budget.Status `json:"statuses"`
}
