package routes

import (
	"net/http"

	"Fluxo/internal/contracts"
	"Fluxo/internal/domain/invoice"
	appErrors "Fluxo/internal/errors"
	"Fluxo/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateInvoice(c *gin.Context) {
	var body contracts.InvoiceCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	invoiceEntity := &invoice.Invoice{
		UserId:      userID,
		Number:      body.Number,
		ClientName:  body.ClientName,
		Description: body.Description,
		Amount:      body.Amount,
	}
	if body.IssueDate != nil {
		invoiceEntity.IssueDate = *body.IssueDate
	}
	if body.DueDate != nil {
		invoiceEntity.DueDate = *body.DueDate
	}

	ctx := c.Request.Context()
	if err := h.InvoiceService.CreateInvoice(ctx, invoiceEntity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.InvoiceCreateResponse{
		Message: "Fatura criada com sucesso",
		Invoice: invoiceEntity,
	})
}

func (h *Handler) ListInvoices(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)

	var status *invoice.InvoiceStatus
	if raw, ok := c.GetQuery("status"); ok && raw != "" {
		parsed := invoice.InvoiceStatus(raw)
		if !parsed.IsValid() {
			h.respondError(c, appErrors.NewValidationError("status", "status inválido"))
			return
		}
		status = &parsed
	}

	ctx := c.Request.Context()
	invoices, total, err := h.InvoiceService.ListInvoices(ctx, userID, status, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(invoices, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetInvoice(c *gin.Context) {
	invoiceID, err := pkg.ParseULID(c.Param("id"))
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
	invoiceEntity, err := h.InvoiceService.GetInvoiceByID(ctx, invoiceID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.InvoiceSingleResponse{Invoice: invoiceEntity})
}

func (h *Handler) UpdateInvoice(c *gin.Context) {
	invoiceID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.InvoiceUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	invoiceEntity, err := h.InvoiceService.GetInvoiceByID(ctx, invoiceID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if body.ClientName != nil {
		invoiceEntity.ClientName = *body.ClientName
	}
	if body.Description != nil {
		invoiceEntity.Description = *body.Description
	}
	if body.Amount != nil {
		invoiceEntity.Amount = *body.Amount
	}
	if body.Status != nil {
		invoiceEntity.Status = invoice.InvoiceStatus(*body.Status)
	}
	if body.DueDate != nil {
		invoiceEntity.DueDate = *body.DueDate
	}

	if err := h.InvoiceService.UpdateInvoice(ctx, invoiceEntity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Fatura atualizada com sucesso"})
}

func (h *Handler) DeleteInvoice(c *gin.Context) {
	invoiceID, err := pkg.ParseULID(c.Param("id"))
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
	if err := h.InvoiceService.DeleteInvoice(ctx, invoiceID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Fatura removida com sucesso"})
}

func (h *Handler) PayInvoice(c *gin.Context) {
	invoiceID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.InvoicePayRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	accountID, err := pkg.ParseULID(body.AccountId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("account_id", "formato invalido"))
		return
	}

	ctx := c.Request.Context()
	if err := h.InvoiceService.PayInvoice(ctx, invoiceID, userID, accountID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Fatura recebida com sucesso"})
}
