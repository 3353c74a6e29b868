package contracts

import (
	"time"

	"Fluxo/internal/domain/invoice"
)

type InvoiceCreateRequest struct {
	Number      string     `json:"number" binding:"omitempty,max=50"`
	ClientName  string     `json:"client_name" binding:"omitempty,max=255"`
	Description string     `json:"description" binding:"omitempty,max=255"`
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	IssueDate   *time.Time `json:"issue_date" binding:"omitempty"`
	DueDate     *time.Time `json:"due_date" binding:"omitempty"`
}

type InvoiceUpdateRequest struct {
	ClientName  *string    `json:"client_name" binding:"omitempty,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=255"`
	Amount      *float64   `json:"amount" binding:"omitempty,gt=0"`
	Status      *string    `json:"status" binding:"omitempty,oneof=DRAFT SENT"`
	DueDate     *time.Time `json:"due_date" binding:"omitempty"`
}

type InvoicePayRequest struct {
	AccountId string `json:"account_id" binding:"required"`
}

type InvoiceCreateResponse struct {
	Message string           `json:"message"`
	Invoice *invoice.Invoice `json:"invoice"`
}

type InvoiceSingleResponse struct {
	Invoice *invoice.Invoice `json:"invoice"`
}
