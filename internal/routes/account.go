package routes

import (
	"net/http"

	"Fluxo/internal/contracts"
	"Fluxo/internal/domain/account"
	appErrors "Fluxo/internal/errors"
	"Fluxo/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateAccount(c *gin.Context) {
	var body contracts.AccountCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := &account.CreateAccountRequest{
		UserId:         userID,
		Name:           body.Name,
		Type:           account.AccountType(body.Type),
		InitialBalance: body.InitialBalance,
		Color:          body.Color,
		PaymentDay:     body.PaymentDay,
	}

	ctx := c.Request.Context()
	accountEntity, err := h.AccountService.CreateAccount(ctx, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.AccountCreateResponse{
		Message: "Conta criada com sucesso",
		Account: accountEntity,
	})
}

func (h *Handler) ListAccounts(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	accounts, total, err := h.AccountService.ListAccounts(ctx, userID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(accounts, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetAccount(c *gin.Context) {
	accountID, err := pkg.ParseULID(c.Param("id"))
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
	accountEntity, err := h.AccountService.GetAccountByID(ctx, accountID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AccountSingleResponse{Account: accountEntity})
}

func (h *Handler) UpdateAccount(c *gin.Context) {
	accountID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.AccountUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &account.UpdateAccountRequest{
		Name:       body.Name,
		Color:      body.Color,
		PaymentDay: body.PaymentDay,
		IsActive:   body.IsActive,
	}
	if body.Type != nil {
		accountType := account.AccountType(*body.Type)
		req.Type = &accountType
	}

	ctx := c.Request.Context()
	if err := h.AccountService.UpdateAccount(ctx, accountID, userID, req); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Conta atualizada com sucesso"})
}

func (h *Handler) DeleteAccount(c *gin.Context) {
	accountID, err := pkg.ParseULID(c.Param("id"))
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
	if err := h.AccountService.DeleteAccount(ctx, accountID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Conta removida com sucesso"})
}

func (h *Handler) GetTotalBalance(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	balance, err := h.AccountService.GetTotalBalance(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AccountBalanceResponse{Balance: balance})
}

func (h *Handler) TransferBetweenAccounts(c *gin.Context) {
	var body contracts.AccountTransferRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	fromID, err := pkg.ParseULID(body.FromAccountId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("from_account_id", "formato invalido"))
		return
	}

	toID, err := pkg.ParseULID(body.ToAccountId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("to_account_id", "formato invalido"))
		return
	}

	ctx := c.Request.Context()
	if err := h.AccountService.Transfer(ctx, fromID, toID, userID, body.Amount); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Transferência realizada com sucesso"})
}
