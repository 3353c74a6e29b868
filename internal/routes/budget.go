package routes

import (
	"net/http"

	"Fluxo/internal/contracts"
	"Fluxo/internal/domain/budget"
	appErrors "Fluxo/internal/errors"
	"Fluxo/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateBudget(c *gin.Context) {
	var body contracts.BudgetCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	budgetEntity := &budget.Budget{
		UserId:       userID,
		Category:     body.Category,
		MonthlyLimit: body.MonthlyLimit,
	}

	ctx := c.Request.Context()
	if err := h.BudgetService.CreateBudget(ctx, budgetEntity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.BudgetCreateResponse{
		Message: "Orçamento criado com sucesso",
		Budget:  budgetEntity,
	})
}

func (h *Handler) GetBudget(c *gin.Context) {
	budgetID, err := pkg.ParseULID(c.Param("id"))
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
	budgetEntity, err := h.BudgetService.GetBudgetByID(ctx, budgetID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BudgetSingleResponse{Budget: budgetEntity})
}

func (h *Handler) UpdateBudget(c *gin.Context) {
	budgetID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.BudgetUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	budgetEntity, err := h.BudgetService.GetBudgetByID(ctx, budgetID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if body.MonthlyLimit != nil {
		budgetEntity.MonthlyLimit = *body.MonthlyLimit
	}

	if err := h.BudgetService.UpdateBudget(ctx, budgetEntity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Orçamento atualizado com sucesso"})
}

func (h *Handler) DeleteBudget(c *gin.Context) {
	budgetID, err := pkg.ParseULID(c.Param("id"))
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
	if err := h.BudgetService.DeleteBudget(ctx, budgetID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Orçamento removido com sucesso"})
}

func (h *Handler) GetBudgetStatuses(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	statuses, err := h.BudgetService.ListStatuses(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BudgetStatusesResponse{Statuses: statuses})
}
