package routes

import (
	"net/http"
	"time"

	"Fluxo/internal/contracts"
	"Fluxo/internal/domain/recurring"
	"Fluxo/internal/domain/transaction"
	appErrors "Fluxo/internal/errors"
	"Fluxo/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateRecurring(c *gin.Context) {
	var body contracts.RecurringCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	accountID, err := pkg.ParseULID(body.AccountId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("account_id", "formato invalido"))
		return
	}

	rule := &recurring.RecurringRule{
		UserId:      userID,
		Description: body.Description,
		Amount:      body.Amount,
		Type:        transaction.Types(body.Type),
		Category:    body.Category,
		AccountId:   accountID,
		Frequency:   recurring.FrequencyType(body.Frequency),
		DayOfMonth:  body.DayOfMonth,
		IsBusiness:  body.IsBusiness,
	}
	if body.StartDate != nil {
		rule.StartDate = *body.StartDate
	}

	ctx := c.Request.Context()
	if err := h.RecurringService.CreateRule(ctx, rule); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.RecurringCreateResponse{
		Message: "Regra recorrente criada com sucesso",
		Rule:    rule,
	})
}

func (h *Handler) ListRecurrings(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	rules, total, err := h.RecurringService.ListRules(ctx, userID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(rules, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetRecurring(c *gin.Context) {
	ruleID, err := pkg.ParseULID(c.Param("id"))
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
	rule, err := h.RecurringService.GetRuleByID(ctx, ruleID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.RecurringSingleResponse{Rule: rule})
}

func (h *Handler) UpdateRecurring(c *gin.Context) {
	ruleID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.RecurringUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	rule, err := h.RecurringService.GetRuleByID(ctx, ruleID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if body.Description != nil {
		rule.Description = *body.Description
	}
	if body.Amount != nil {
		rule.Amount = *body.Amount
	}
	if body.Category != nil {
		rule.Category = *body.Category
	}
	if body.DayOfMonth != nil {
		rule.DayOfMonth = *body.DayOfMonth
	}
	if body.IsBusiness != nil {
		rule.IsBusiness = *body.IsBusiness
	}

	if err := h.RecurringService.UpdateRule(ctx, rule); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Regra recorrente atualizada com sucesso"})
}

func (h *Handler) DeleteRecurring(c *gin.Context) {
	ruleID, err := pkg.ParseULID(c.Param("id"))
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
	if err := h.RecurringService.DeleteRule(ctx, ruleID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Regra recorrente removida com sucesso"})
}

func (h *Handler) PauseRecurring(c *gin.Context) {
	h.setRecurringActive(c, false, "Regra recorrente pausada com sucesso")
}

func (h *Handler) ResumeRecurring(c *gin.Context) {
	h.setRecurringActive(c, true, "Regra recorrente reativada com sucesso")
}

func (h *Handler) setRecurringActive(c *gin.Context, active bool, message string) {
	ruleID, err := pkg.ParseULID(c.Param("id"))
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
	if err := h.RecurringService.SetActive(ctx, ruleID, userID, active); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: message})
}

func (h *Handler) ProcessRecurring(c *gin.Context) {
	ruleID, err := pkg.ParseULID(c.Param("id"))
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
	outcome, err := h.RecurringService.ProcessRule(ctx, ruleID, userID, time.Now())
	if err != nil {
		h.respondError(c, err)
		return
	}
	if outcome.Err != nil {
		h.respondError(c, outcome.Err)
		return
	}

	rule, err := h.RecurringService.GetRuleByID(ctx, ruleID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.RecurringProcessResponse{
		Message:   "Regra recorrente processada com sucesso",
		Generated: outcome.Generated,
		Rule:      rule,
	})
}
