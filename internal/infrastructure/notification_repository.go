package infrastructure

import (
	"context"

	"Fluxo/internal/domain/notification"
	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	DB *gorm.DB
}

var _ notification.Repository = (*NotificationRepository)(nil)

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	return r.DB.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) Delete(ctx context.Context, notificationID, userID ulid.ULID) error {
	return r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", notificationID.String(), userID.String()).
		Delete(&notification.Notification{}).Error
}

func (r *NotificationRepository) GetByID(ctx context.Context, notificationID, userID ulid.ULID) (*notification.Notification, error) {
	var n notification.Notification
	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", notificationID.String(), userID.String()).
		First(&n).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepository) GetByUserID(ctx context.Context, userID ulid.ULID, unreadOnly bool, pagination *pkg.PaginationParams) ([]*notification.Notification, int64, error) {
	query := r.DB.WithContext(ctx).Model(&notification.Notification{}).Where("user_id = ?", userID.String())
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}
	return pkg.Paginate[notification.Notification](query, pagination, "created_at DESC")
}

func (r *NotificationRepository) MarkRead(ctx context.Context, notificationID, userID ulid.ULID) error {
	return r.DB.WithContext(ctx).Model(&notification.Notification{}).
		Where("id = ? AND user_id = ?", notificationID.String(), userID.String()).
		Update("is_read", true).Error
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID ulid.ULID) error {
	return r.DB.WithContext(ctx).Model(&notification.Notification{}).
		Where("user_id = ? AND is_read = ?", userID.String(), false).
		Update("is_read", true).Error
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID ulid.ULID) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&notification.Notification{}).
		Where("user_id = ? AND is_read = ?", userID.String(), false).
		Count(&count).Error
	return count, err
}
