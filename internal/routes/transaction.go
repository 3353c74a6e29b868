package routes

import (
	"net/http"

	"Fluxo/internal/contracts"
	"Fluxo/internal/domain/transaction"
	appErrors "Fluxo/internal/errors"
	"Fluxo/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateTransaction(c *gin.Context) {
	var body contracts.TransactionCreateRequest
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

	tx := &transaction.Transaction{
		UserId:      userID,
		AccountId:   accountID,
		Type:        transaction.Types(body.Type),
		Category:    body.Category,
		Amount:      body.Amount,
		Description: body.Description,
		Tags:        body.Tags,
		IsBusiness:  body.IsBusiness,
	}
	if body.Date != nil {
		tx.Date = *body.Date
	}

	ctx := c.Request.Context()
	if err := h.TransactionService.CreateTransaction(ctx, tx); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.TransactionCreateResponse{
		Message:     "Transação criada com sucesso",
		Transaction: tx,
	})
}

func (h *Handler) GetTransactions(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)

	accountID, err := pkg.ParseULIDPtr(queryPtr(c, "account_id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("account_id", "formato invalido"))
		return
	}

	ctx := c.Request.Context()
	transactions, total, err := h.TransactionService.GetAllTransactions(ctx, userID, accountID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(transactions, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
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
	tx, err := h.TransactionService.GetTransactionByID(ctx, transactionID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionSingleResponse{Transaction: tx})
}

func (h *Handler) GetMonthTransactions(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	year, err := pkg.ParseInt(c.Param("year"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("year", "formato invalido"))
		return
	}

	month, err := pkg.ParseInt(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		h.respondError(c, appErrors.NewValidationError("month", "deve estar entre 1 e 12"))
		return
	}

	ctx := c.Request.Context()
	transactions, err := h.TransactionService.GetMonthTransactions(ctx, userID, year, month)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionMonthResponse{
		Year:         year,
		Month:        month,
		Transactions: transactions,
	})
}

func (h *Handler) UpdateTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.TransactionUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	tx, err := h.TransactionService.GetTransactionByID(ctx, transactionID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if body.Category != nil {
		tx.Category = *body.Category
	}
	if body.Amount != nil {
		tx.Amount = *body.Amount
	}
	if body.Description != nil {
		tx.Description = *body.Description
	}
	if body.Tags != nil {
		tx.Tags = *body.Tags
	}
	if body.IsBusiness != nil {
		tx.IsBusiness = *body.IsBusiness
	}
	if body.Date != nil {
		tx.Date = *body.Date
	}

	if err := h.TransactionService.UpdateTransaction(ctx, tx); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Transação atualizada com sucesso"})
}

func (h *Handler) DeleteTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
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
	if err := h.TransactionService.DeleteTransaction(ctx, transactionID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Transação removida com sucesso"})
}

func (h *Handler) AddTransactionTag(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.TransactionAddTagRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	if err := h.TransactionService.AddTag(ctx, transactionID, userID, body.Tag); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Etiqueta adicionada com sucesso"})
}

func queryPtr(c *gin.Context, key string) *string {
	if value, ok := c.GetQuery(key); ok && value != "" {
		return &value
	}
	return nil
}
