package routes

import (
	"net/http"

	"Fluxo/internal/contracts"
	"Fluxo/internal/domain/debt"
	appErrors "Fluxo/internal/errors"
	"Fluxo/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateDebt(c *gin.Context) {
	var body contracts.DebtCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	debtEntity := &debt.Debt{
		UserId:      userID,
		Creditor:    body.Creditor,
		Description: body.Description,
		Amount:      body.Amount,
		DueDate:     body.DueDate,
	}

	ctx := c.Request.Context()
	if err := h.DebtService.CreateDebt(ctx, debtEntity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.DebtCreateResponse{
		Message: "Dívida criada com sucesso",
		Debt:    debtEntity,
	})
}

func (h *Handler) ListDebts(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	debts, total, err := h.DebtService.ListDebts(ctx, userID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(debts, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetDebt(c *gin.Context) {
	debtID, err := pkg.ParseULID(c.Param("id"))
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
	debtEntity, err := h.DebtService.GetDebtByID(ctx, debtID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.DebtSingleResponse{Debt: debtEntity})
}

func (h *Handler) UpdateDebt(c *gin.Context) {
	debtID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.DebtUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	debtEntity, err := h.DebtService.GetDebtByID(ctx, debtID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if body.Creditor != nil {
		debtEntity.Creditor = *body.Creditor
	}
	if body.Description != nil {
		debtEntity.Description = *body.Description
	}
	if body.Amount != nil {
		debtEntity.Amount = *body.Amount
	}
	if body.DueDate != nil {
		debtEntity.DueDate = body.DueDate
	}

	if err := h.DebtService.UpdateDebt(ctx, debtEntity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Dívida atualizada com sucesso"})
}

func (h *Handler) DeleteDebt(c *gin.Context) {
	debtID, err := pkg.ParseULID(c.Param("id"))
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
	if err := h.DebtService.DeleteDebt(ctx, debtID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Dívida removida com sucesso"})
}

func (h *Handler) SettleDebt(c *gin.Context) {
	debtID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.DebtSettleRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			h.respondError(c, appErrors.ParseValidationErrors(err))
			return
		}
	}

	accountID, err := pkg.ParseULIDPtr(&body.AccountId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("account_id", "formato invalido"))
		return
	}

	ctx := c.Request.Context()
	if err := h.DebtService.SettleDebt(ctx, debtID, userID, accountID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Dívida quitada com sucesso"})
}

func (h *Handler) GetOpenDebtsTotal(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	total, err := h.DebtService.TotalOpen(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.DebtTotalResponse{TotalOpen: total})
}
