package notification

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

// Notify persiste uma notificação para o usuário. Também é o colaborador de
// notificações do motor de automações.
func (s *Service) Notify(ctx context.Context, userID ulid.ULID, title, body string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return appErrors.NewValidationError("title", "é obrigatório")
	}

	notification := &Notification{
		Id:        pkg.GenerateULIDObject(),
		UserId:    userID,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now(),
	}

	if err := s.Repository.Create(ctx, notification); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) ListNotifications(ctx context.Context, userID ulid.ULID, unreadOnly bool, pagination *pkg.PaginationParams) ([]*Notification, int64, error) {
	notifications, total, err := s.Repository.GetByUserID(ctx, userID, unreadOnly, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return notifications, total, nil
}

func (s *Service) MarkRead(ctx context.Context, notificationID, userID ulid.ULID) error {
	if _, err := s.Repository.GetByID(ctx, notificationID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.NewNotFoundError("Notificação")
		}
		return appErrors.NewDatabaseError(err)
	}
	return s.Repository.MarkRead(ctx, notificationID, userID)
}

func (s *Service) MarkAllRead(ctx context.Context, userID ulid.ULID) error {
	if err := s.Repository.MarkAllRead(ctx, userID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) CountUnread(ctx context.Context, userID ulid.ULID) (int64, error) {
	count, err := s.Repository.CountUnread(ctx, userID)
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return count, nil
}

func (s *Service) DeleteNotification(ctx context.Context, notificationID, userID ulid.ULID) error {
	return s.Repository.Delete(ctx, notificationID, userID)
}
