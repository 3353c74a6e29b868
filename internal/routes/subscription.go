package routes

import (
	"net/http"
	"time"

	"Fluxo/internal/contracts"
	"Fluxo/internal/domain/subscription"
	appErrors "Fluxo/internal/errors"
	"Fluxo/internal/pkg"

	"github.com/gin-gonic/gin"
)

const dueSoonWindow = 7 * 24 * time.Hour

func (h *Handler) CreateSubscription(c *gin.Context) {
	var body contracts.SubscriptionCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	subscriptionEntity := &subscription.Subscription{
		UserId:          userID,
		Name:            body.Name,
		Cost:            body.Cost,
		Category:        body.Category,
		BillingCycle:    subscription.Cycle(body.BillingCycle),
		NextPaymentDate: body.NextPaymentDate,
	}

	ctx := c.Request.Context()
	if err := h.SubscriptionService.CreateSubscription(ctx, subscriptionEntity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.SubscriptionCreateResponse{
		Message:      "Assinatura criada com sucesso",
		Subscription: subscriptionEntity,
	})
}

func (h *Handler) ListSubscriptions(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	subscriptions, total, err := h.SubscriptionService.ListSubscriptions(ctx, userID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(subscriptions, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetSubscription(c *gin.Context) {
	subscriptionID, err := pkg.ParseULID(c.Param("id"))
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
	subscriptionEntity, err := h.SubscriptionService.GetSubscriptionByID(ctx, subscriptionID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.SubscriptionSingleResponse{Subscription: subscriptionEntity})
}

func (h *Handler) UpdateSubscription(c *gin.Context) {
	subscriptionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.SubscriptionUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	subscriptionEntity, err := h.SubscriptionService.GetSubscriptionByID(ctx, subscriptionID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if body.Name != nil {
		subscriptionEntity.Name = *body.Name
	}
	if body.Cost != nil {
		subscriptionEntity.Cost = *body.Cost
	}
	if body.Category != nil {
		subscriptionEntity.Category = *body.Category
	}
	if body.BillingCycle != nil {
		subscriptionEntity.BillingCycle = subscription.Cycle(*body.BillingCycle)
	}
	if body.NextPaymentDate != nil {
		subscriptionEntity.NextPaymentDate = *body.NextPaymentDate
	}
	if body.IsActive != nil {
		subscriptionEntity.IsActive = *body.IsActive
	}

	if err := h.SubscriptionService.UpdateSubscription(ctx, subscriptionEntity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Assinatura atualizada com sucesso"})
}

func (h *Handler) DeleteSubscription(c *gin.Context) {
	subscriptionID, err := pkg.ParseULID(c.Param("id"))
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
	if err := h.SubscriptionService.DeleteSubscription(ctx, subscriptionID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Assinatura removida com sucesso"})
}

func (h *Handler) ListSubscriptionsDueSoon(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	subscriptions, err := h.SubscriptionService.ListDueSoon(ctx, userID, dueSoonWindow)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.SubscriptionDueSoonResponse{Subscriptions: subscriptions})
}
