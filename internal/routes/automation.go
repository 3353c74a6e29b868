package routes

import (
	"net/http"

	"Fluxo/internal/contracts"
	"Fluxo/internal/domain/automation"
	appErrors "Fluxo/internal/errors"
	"Fluxo/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateAutomation(c *gin.Context) {
	var body contracts.AutomationCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	trigger, err := automation.ParseTrigger(automation.TriggerType(body.Trigger.Type), body.Trigger.Config)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("trigger", "configuração de gatilho inválida").WithError(err))
		return
	}

	action, err := automation.ParseAction(automation.ActionType(body.Action.Type), body.Action.Config)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("action", "configuração de ação inválida").WithError(err))
		return
	}

	rule := &automation.Rule{
		UserId:      userID,
		Name:        body.Name,
		Description: body.Description,
		Trigger:     trigger,
		Action:      action,
	}

	ctx := c.Request.Context()
	if err := h.AutomationService.CreateRule(ctx, rule); err != nil {
		h.respondError(c, err)
		return
	}

	response, err := contracts.NewAutomationRuleResponse(rule)
	if err != nil {
		h.respondError(c, appErrors.ErrInternalServer.WithError(err))
		return
	}

	c.JSON(http.StatusCreated, contracts.AutomationCreateResponse{
		Message: "Regra de automação criada com sucesso",
		Rule:    response,
	})
}

func (h *Handler) ListAutomations(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	rules, total, err := h.AutomationService.ListRules(ctx, userID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	responses := make([]*contracts.AutomationRuleResponse, 0, len(rules))
	for _, rule := range rules {
		response, err := contracts.NewAutomationRuleResponse(rule)
		if err != nil {
			h.respondError(c, appErrors.ErrInternalServer.WithError(err))
			return
		}
		responses = append(responses, response)
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(responses, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetAutomation(c *gin.Context) {
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
	rule, err := h.AutomationService.GetRuleByID(ctx, ruleID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response, err := contracts.NewAutomationRuleResponse(rule)
	if err != nil {
		h.respondError(c, appErrors.ErrInternalServer.WithError(err))
		return
	}

	c.JSON(http.StatusOK, contracts.AutomationSingleResponse{Rule: response})
}

func (h *Handler) UpdateAutomation(c *gin.Context) {
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

	var body contracts.AutomationUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	rule, err := h.AutomationService.GetRuleByID(ctx, ruleID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if body.Name != nil {
		rule.Name = *body.Name
	}
	if body.Description != nil {
		rule.Description = *body.Description
	}
	if body.Trigger != nil {
		trigger, err := automation.ParseTrigger(automation.TriggerType(body.Trigger.Type), body.Trigger.Config)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("trigger", "configuração de gatilho inválida").WithError(err))
			return
		}
		rule.Trigger = trigger
	}
	if body.Action != nil {
		action, err := automation.ParseAction(automation.ActionType(body.Action.Type), body.Action.Config)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("action", "configuração de ação inválida").WithError(err))
			return
		}
		rule.Action = action
	}

	if err := h.AutomationService.UpdateRule(ctx, rule); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Regra de automação atualizada com sucesso"})
}

func (h *Handler) DeleteAutomation(c *gin.Context) {
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
	if err := h.AutomationService.DeleteRule(ctx, ruleID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Regra de automação removida com sucesso"})
}

func (h *Handler) PauseAutomation(c *gin.Context) {
	h.setAutomationActive(c, false, "Regra de automação pausada com sucesso")
}

func (h *Handler) ResumeAutomation(c *gin.Context) {
	h.setAutomationActive(c, true, "Regra de automação reativada com sucesso")
}

func (h *Handler) setAutomationActive(c *gin.Context, active bool, message string) {
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
	if err := h.AutomationService.SetActive(ctx, ruleID, userID, active); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: message})
}
