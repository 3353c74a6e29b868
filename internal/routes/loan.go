package routes

import (
	"net/http"

	"Fluxo/internal/contracts"
	"Fluxo/internal/domain/loan"
	appErrors "Fluxo/internal/errors"
	"Fluxo/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateLoan(c *gin.Context) {
	var body contracts.LoanCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	loanEntity := &loan.Loan{
		UserId:       userID,
		Counterparty: body.Counterparty,
		Description:  body.Description,
		Direction:    loan.Direction(body.Direction),
		Amount:       body.Amount,
	}

	ctx := c.Request.Context()
	if err := h.LoanService.CreateLoan(ctx, loanEntity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.LoanCreateResponse{
		Message: "Empréstimo registrado com sucesso",
		Loan:    loanEntity,
	})
}

func (h *Handler) ListLoans(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	loans, total, err := h.LoanService.ListLoans(ctx, userID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(loans, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetLoan(c *gin.Context) {
	loanID, err := pkg.ParseULID(c.Param("id"))
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
	loanEntity, err := h.LoanService.GetLoanByID(ctx, loanID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.LoanSingleResponse{Loan: loanEntity})
}

func (h *Handler) DeleteLoan(c *gin.Context) {
	loanID, err := pkg.ParseULID(c.Param("id"))
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
	if err := h.LoanService.DeleteLoan(ctx, loanID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Empréstimo removido com sucesso"})
}

func (h *Handler) RegisterLoanPayment(c *gin.Context) {
	loanID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.LoanPaymentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	loanEntity, err := h.LoanService.RegisterPayment(ctx, loanID, userID, body.Amount)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.LoanSingleResponse{Loan: loanEntity})
}
