package contracts

import (
	"time"

	"Fluxo/internal/domain/goal"
)

type GoalCreateRequest struct {
	Name         string     `json:"name" binding:"required,max=255"`
	TargetAmount float64    `json:"target_amount" binding:"required,gt=0"`
	Deadline     *time.Time `json:"deadline" binding:"omitempty"`
}

type GoalUpdateRequest struct {
	Name         *string    `json:"name" binding:"omitempty,max=255"`
	TargetAmount *float64   `json:"target_amount" binding:"omitempty,gt=0"`
	Deadline     *time.Time `json:"deadline" binding:"omitempty"`
}

type GoalContributeRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type GoalCreateResponse struct {
	Message string     `json:"message"`
	Goal    *goal.Goal `json:"goal"`
}

type GoalSingleResponse struct {
	Goal     *goal.Goal `json:"goal"`
	Progress float64    `json:"progress"`
}
