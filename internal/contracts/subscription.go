package contracts

import (
	"time"

	"Fluxo/internal/domain/subscription"
)

type SubscriptionCreateRequest struct {
	Name            string    `json:"name" binding:"required,max=255"`
	Cost            float64   `json:"cost" binding:"required,gt=0"`
	Category        string    `json:"category" binding:"omitempty,max=100"`
	BillingCycle    string    `json:"billing_cycle" binding:"required,oneof=MONTHLY YEARLY"`
	NextPaymentDate time.Time `json:"next_payment_date" binding:"required"`
}

type SubscriptionUpdateRequest struct {
	Name            *string    `json:"name" binding:"omitempty,max=255"`
	Cost            *float64   `json:"cost" binding:"omitempty,gt=0"`
	Category        *string    `json:"category" binding:"omitempty,max=100"`
	BillingCycle    *string    `json:"billing_cycle" binding:"omitempty,oneof=MONTHLY YEARLY"`
	NextPaymentDate *time.Time `json:"next_payment_date" binding:"omitempty"`
	IsActive        *bool      `json:"is_active" binding:"omitempty"`
}

type SubscriptionCreateResponse struct {
	Message      string                     `json:"message"`
	Subscription *subscription.Subscription `json:"subscription"`
}

type SubscriptionSingleResponse struct {
	Subscription *subscription.Subscription `json:"subscription"`
}

type SubscriptionDueSoonResponse struct {
	Subscriptions []*subscription.Subscription `json:"subscriptions"`
}
