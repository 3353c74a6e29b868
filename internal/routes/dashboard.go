package routes

import (
	"net/http"
	"time"

	appErrors "Fluxo/internal/errors"
	"Fluxo/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetDashboard(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	now := time.Now()
	year := now.Year()
	month := int(now.Month())

	if raw, ok := c.GetQuery("year"); ok {
		if parsed, err := pkg.ParseInt(raw); err == nil && parsed > 0 {
			year = parsed
		} else {
			h.respondError(c, appErrors.NewValidationError("year", "formato invalido"))
			return
		}
	}

	if raw, ok := c.GetQuery("month"); ok {
		parsed, err := pkg.ParseInt(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			h.respondError(c, appErrors.NewValidationError("month", "deve estar entre 1 e 12"))
			return
		}
		month = parsed
	}

	ctx := c.Request.Context()
	summary, err := h.DashboardService.GetSummary(ctx, userID, year, month)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
