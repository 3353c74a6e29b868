package infrastructure

import (
	"context"
	"time"

	"Fluxo/internal/domain/subscription"
	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	DB *gorm.DB
}

var _ subscription.Repository = (*SubscriptionRepository)(nil)

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{DB: db}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	return r.DB.WithContext(ctx).Create(sub).Error
}

func (r *SubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	return r.DB.WithContext(ctx).Save(sub).Error
}

func (r *SubscriptionRepository) Delete(ctx context.Context, subscriptionID, userID ulid.ULID) error {
	return r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", subscriptionID.String(), userID.String()).
		Delete(&subscription.Subscription{}).Error
}

func (r *SubscriptionRepository) GetByID(ctx context.Context, subscriptionID, userID ulid.ULID) (*subscription.Subscription, error) {
	var sub subscription.Subscription
	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", subscriptionID.String(), userID.String()).
		First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) GetByUserID(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*subscription.Subscription, int64, error) {
	query := r.DB.WithContext(ctx).Model(&subscription.Subscription{}).Where("user_id = ?", userID.String())
	return pkg.Paginate[subscription.Subscription](query, pagination, "next_payment_date ASC")
}

func (r *SubscriptionRepository) GetDueBefore(ctx context.Context, userID ulid.ULID, until time.Time) ([]*subscription.Subscription, error) {
	var subs []*subscription.Subscription
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND is_active = ? AND next_payment_date <= ?", userID.String(), true, until).
		Order("next_payment_date ASC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}
