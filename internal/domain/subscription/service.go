package subscription

import (
	"context"
	"errors"
	"strings"
	"time"

	"Fluxo/internal/domain/shared"
	appErrors "Fluxo/internal/errors"
	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type Service struct {
	Repository Repository
	shared.BaseService
}

func NewService(repo Repository, userChecker *shared.UserCheckerService) *Service {
	return &Service{
		Repository: repo,
		BaseService: shared.BaseService{
			UserChecker: userChecker,
		},
	}
}

func (s *Service) CreateSubscription(ctx context.Context, subscription *Subscription) error {
	if err := s.EnsureUserExists(ctx, subscription.UserId); err != nil {
		return err
	}

	if err := s.validate(subscription); err != nil {
		return err
	}

	now := time.Now()
	if pkg.IsEmptyULID(subscription.Id) {
		subscription.Id = pkg.GenerateULIDObject()
	}
	subscription.Name = strings.TrimSpace(subscription.Name)
	if subscription.NextPaymentDate.IsZero() {
		subscription.NextPaymentDate = now
	}
	subscription.IsActive = true
	subscription.CreatedAt = now
	subscription.UpdatedAt = now

	if err := s.Repository.Create(ctx, subscription); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) UpdateSubscription(ctx context.Context, subscription *Subscription) error {
	stored, err := s.GetSubscriptionByID(ctx, subscription.Id, subscription.UserId)
	if err != nil {
		return err
	}

	if err := s.validate(subscription); err != nil {
		return err
	}

	stored.Name = strings.TrimSpace(subscription.Name)
	stored.Cost = subscription.Cost
	stored.Category = subscription.Category
	stored.BillingCycle = subscription.BillingCycle
	if !subscription.NextPaymentDate.IsZero() {
		stored.NextPaymentDate = subscription.NextPaymentDate
	}
	stored.IsActive = subscription.IsActive
	stored.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, stored); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) DeleteSubscription(ctx context.Context, subscriptionID, userID ulid.ULID) error {
	if _, err := s.GetSubscriptionByID(ctx, subscriptionID, userID); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, subscriptionID, userID)
}

func (s *Service) GetSubscriptionByID(ctx context.Context, subscriptionID, userID ulid.ULID) (*Subscription, error) {
	subscription, err := s.Repository.GetByID(ctx, subscriptionID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrSubscriptionNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return subscription, nil
}

func (s *Service) ListSubscriptions(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Subscription, int64, error) {
	subscriptions, total, err := s.Repository.GetByUserID(ctx, userID, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return subscriptions, total, nil
}

// ListDueSoon devolve as assinaturas ativas que vencem dentro da janela,
// detecção por data e não por casamento de descrição.
func (s *Service) ListDueSoon(ctx context.Context, userID ulid.ULID, window time.Duration) ([]*Subscription, error) {
	due, err := s.Repository.GetDueBefore(ctx, userID, time.Now().Add(window))
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return due, nil
}

func (s *Service) validate(subscription *Subscription) error {
	if strings.TrimSpace(subscription.Name) == "" {
		return appErrors.NewValidationError("name", "é obrigatório")
	}
	if subscription.Cost <= 0 {
		return appErrors.NewValidationError("cost", "deve ser maior que zero")
	}
	if !subscription.BillingCycle.IsValid() {
		return appErrors.NewValidationError("billingCycle", "ciclo inválido")
	}
	return nil
}
