package routes

import (
	"net/http"

	"Fluxo/internal/contracts"
	"Fluxo/internal/domain/investment"
	appErrors "Fluxo/internal/errors"
	"Fluxo/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateInvestment(c *gin.Context) {
	var body contracts.InvestmentCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	investmentEntity := &investment.Investment{
		UserId:       userID,
		Symbol:       body.Symbol,
		Name:         body.Name,
		Quantity:     body.Quantity,
		AveragePrice: body.AveragePrice,
		CurrentPrice: body.CurrentPrice,
	}

	ctx := c.Request.Context()
	if err := h.InvestmentService.CreateInvestment(ctx, investmentEntity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.InvestmentCreateResponse{
		Message:    "Investimento criado com sucesso",
		Investment: investmentEntity,
	})
}

func (h *Handler) ListInvestments(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	investments, total, err := h.InvestmentService.ListInvestments(ctx, userID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(investments, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetInvestment(c *gin.Context) {
	investmentID, err := pkg.ParseULID(c.Param("id"))
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
	investmentEntity, err := h.InvestmentService.GetInvestmentByID(ctx, investmentID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.InvestmentSingleResponse{
		Investment: investmentEntity,
		Value:      investmentEntity.MarketValue(),
		ProfitLoss: investmentEntity.ProfitLoss(),
	})
}

func (h *Handler) UpdateInvestment(c *gin.Context) {
	investmentID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.InvestmentUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	investmentEntity, err := h.InvestmentService.GetInvestmentByID(ctx, investmentID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if body.Name != nil {
		investmentEntity.Name = *body.Name
	}
	if body.Quantity != nil {
		investmentEntity.Quantity = *body.Quantity
	}
	if body.AveragePrice != nil {
		investmentEntity.AveragePrice = *body.AveragePrice
	}

	if err := h.InvestmentService.UpdateInvestment(ctx, investmentEntity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Investimento atualizado com sucesso"})
}

func (h *Handler) DeleteInvestment(c *gin.Context) {
	investmentID, err := pkg.ParseULID(c.Param("id"))
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
	if err := h.InvestmentService.DeleteInvestment(ctx, investmentID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Investimento removido com sucesso"})
}

func (h *Handler) UpdateInvestmentPrice(c *gin.Context) {
	investmentID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.InvestmentPriceRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	if err := h.InvestmentService.UpdatePrice(ctx, investmentID, userID, body.Price); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Preço atualizado com sucesso"})
}

func (h *Handler) GetPortfolioValue(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	value, err := h.InvestmentService.PortfolioValue(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.InvestmentPortfolioResponse{TotalValue: value})
}
