package routes

import (
	"Fluxo/internal/domain/account"
	"Fluxo/internal/domain/automation"
	"Fluxo/internal/domain/budget"
	"Fluxo/internal/domain/dashboard"
	"Fluxo/internal/domain/debt"
	"Fluxo/internal/domain/goal"
	"Fluxo/internal/domain/investment"
	"Fluxo/internal/domain/invoice"
	"Fluxo/internal/domain/loan"
	"Fluxo/internal/domain/notification"
	"Fluxo/internal/domain/recurring"
	"Fluxo/internal/domain/subscription"
	"Fluxo/internal/domain/transaction"
	"Fluxo/internal/domain/user"
	appErrors "Fluxo/internal/errors"
	"Fluxo/internal/logger"
	"Fluxo/internal/middleware"
	"Fluxo/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

type Handler struct {
	JwtService          *middleware.JwtService
	UserService         *user.Service
	AccountService      *account.Service
	TransactionService  *transaction.Service
	RecurringService    *recurring.Service
	AutomationService   *automation.Service
	InvoiceService      *invoice.Service
	NotificationService *notification.Service
	SubscriptionService *subscription.Service
	BudgetService       *budget.Service
	GoalService         *goal.Service
	DebtService         *debt.Service
	LoanService         *loan.Service
	InvestmentService   *investment.Service
	DashboardService    *dashboard.Service
}

func (h *Handler) GetUserIDFromContext(c *gin.Context) (ulid.ULID, error) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		return ulid.ULID{}, appErrors.ErrUnauthorized
	}

	userID, err := pkg.ParseULID(userIDStr.(string))
	if err != nil {
		return ulid.ULID{}, appErrors.ErrUnauthorized.WithError(err)
	}

	return userID, nil
}

func (h *Handler) parsePagination(c *gin.Context) *pkg.PaginationParams {
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "10")

	var pageNum, limitNum int
	if p, err := pkg.ParseInt(page); err == nil && p > 0 {
		pageNum = p
	} else {
		pageNum = 1
	}

	if l, err := pkg.ParseInt(limit); err == nil && l > 0 {
		limitNum = l
	} else {
		limitNum = 10
	}

	return &pkg.PaginationParams{
		Page:  pageNum,
		Limit: limitNum,
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
