package contracts

import "Fluxo/internal/domain/investment"

type InvestmentCreateRequest struct {
	Symbol       string  `json:"symbol" binding:"required,max=20"`
	Name         string  `json:"name" binding:"omitempty,max=255"`
	Quantity     float64 `json:"quantity" binding:"required,gt=0"`
	AveragePrice float64 `json:"average_price" binding:"required,gt=0"`
	CurrentPrice float64 `json:"current_price" binding:"omitempty,gte=0"`
}

type InvestmentUpdateRequest struct {
	Name         *string  `json:"name" binding:"omitempty,max=255"`
	Quantity     *float64 `json:"quantity" binding:"omitempty,gt=0"`
	AveragePrice *float64 `json:"average_price" binding:"omitempty,gt=0"`
}

type InvestmentPriceRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

type InvestmentCreateResponse struct {
	Message    string                 `json:"message"`
	Investment *investment.Investment `json:"investment"`
}

type InvestmentSingleResponse struct {
	Investment *investment.Investment `json:"investment"`
	Value      float64                `json:"value"`
	ProfitLoss float64                `json:"profitLoss"`
}

type InvestmentPortfolioResponse struct {
	TotalValue float64 `json:"totalValue"`
}
