package routes

import (
	"net/http"

	"Fluxo/internal/contracts"
	"Fluxo/internal/domain/goal"
	appErrors "Fluxo/internal/errors"
	"Fluxo/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateGoal(c *gin.Context) {
	var body contracts.GoalCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	goalEntity := &goal.Goal{
		UserId:       userID,
		Name:         body.Name,
		TargetAmount: body.TargetAmount,
		Deadline:     body.Deadline,
	}

	ctx := c.Request.Context()
	if err := h.GoalService.CreateGoal(ctx, goalEntity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.GoalCreateResponse{
		Message: "Meta criada com sucesso",
		Goal:    goalEntity,
	})
}

func (h *Handler) ListGoals(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	goals, total, err := h.GoalService.ListGoals(ctx, userID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(goals, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetGoal(c *gin.Context) {
	goalID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	goalEntity, err := h.GoalService.GetGoalByID(ctx, goalID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoalSingleResponse{
		Goal:     goalEntity,
		Progress: goalEntity.Progress(),
	})
}

func (h *Handler) UpdateGoal(c *gin.Context) {
	goalID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.GoalUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	goalEntity, err := h.GoalService.GetGoalByID(ctx, goalID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if body.Name != nil {
		goalEntity.Name = *body.Name
	}
	if body.TargetAmount != nil {
		goalEntity.TargetAmount = *body.TargetAmount
	}
	if body.Deadline != nil {
		goalEntity.Deadline = body.Deadline
	}

	if err := h.GoalService.UpdateGoal(ctx, goalEntity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Meta atualizada com sucesso"})
}

func (h *Handler) DeleteGoal(c *gin.Context) {
	goalID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.GoalService.DeleteGoal(ctx, goalID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Meta removida com sucesso"})
}

func (h *Handler) ContributeToGoal(c *gin.Context) {
	goalID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.GoalContributeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	goalEntity, err := h.GoalService.Contribute(ctx, goalID, userID, body.Amount)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoalSingleResponse{
		Goal:     goalEntity,
		Progress: goalEntity.Progress(),
	})
}
