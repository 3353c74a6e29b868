package contracts

import (
	"time"

	"Fluxo/internal/domain/recurring"
)

type RecurringCreateRequest struct {
	Description string     `json:"description" binding:"required,max=255"`
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	Type        string     `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Category    string     `json:"category" binding:"omitempty,max=100"`
	AccountId   string     `json:"account_id" binding:"required"`
	Frequency   string     `json:"frequency" binding:"required,oneof=MONTHLY YEARLY"`
	DayOfMonth  int        `json:"day_of_month" binding:"omitempty,min=1,max=31"`
	StartDate   *time.Time `json:"start_date" binding:"omitempty"`
	IsBusiness  bool       `json:"is_business"`
}

type RecurringUpdateRequest struct {
	Description *string  `json:"description" binding:"omitempty,max=255"`
	Amount      *float64 `json:"amount" binding:"omitempty,gt=0"`
	Category    *string  `json:"category" binding:"omitempty,max=100"`
	DayOfMonth  *int     `json:"day_of_month" binding:"omitempty,min=1,max=31"`
	IsBusiness  *bool    `json:"is_business" binding:"omitempty"`
}

type RecurringCreateResponse struct {
	Message string                   `json:"message"`
	Rule    *recurring.RecurringRule `json:"rule"`
}

type RecurringSingleResponse struct {
	Rule *recurring.RecurringRule `json:"rule"`
}

type RecurringProcessResponse struct {
	Message   string                   `json:"message"`
	Generated int                      `json:"generated"`
	Rule      *recurring.RecurringRule `json:"rule"`
}
