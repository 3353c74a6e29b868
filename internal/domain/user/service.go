package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"Fluxo/internal/domain/shared"
	appErrors "Fluxo/internal/errors"
	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) Register(ctx context.Context, name, email, password string) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, appErrors.NewValidationError("name", "é obrigatório")
	}
	if email == "" {
		return nil, appErrors.NewValidationError("email", "é obrigatório")
	}
	if len(password) < 8 {
		return nil, appErrors.NewValidationError("password", "deve ter no mínimo 8 caracteres")
	}

	if existing, err := s.Repository.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, appErrors.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	now := time.Now()
	user := &User{
		Id:        pkg.GenerateULIDObject(),
		Name:      name,
		Email:     email,
		Password:  string(hashed),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repository.Create(ctx, user); err != nil {
		if shared.IsUniqueConstraintError(err) {
			return nil, appErrors.ErrEmailAlreadyExists
		}
		return nil, appErrors.NewDatabaseError(err)
	}

	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Repository.GetByEmail(ctx, email)
	if err != nil {
		return nil, appErrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, appErrors.ErrInvalidCredentials
	}

	return user, nil
}

func (s *Service) GetByID(ctx context.Context, userID ulid.ULID) (*User, error) {
	user, err := s.Repository.GetById(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return user, nil
}

func (s *Service) UpdateName(ctx context.Context, userID ulid.ULID, name string) error {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return appErrors.NewValidationError("name", "não pode ser vazio")
	}

	user.Name = name
	user.UpdatedAt = time.Now()

	return s.Repository.Update(ctx, user)
}

func (s *Service) UpdatePassword(ctx context.Context, userID ulid.ULID, currentPassword, newPassword string) error {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return appErrors.ErrInvalidCredentials
	}

	if len(newPassword) < 8 {
		return appErrors.NewValidationError("password", "deve ter no mínimo 8 caracteres")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return appErrors.ErrInternalServer.WithError(err)
	}

	user.Password = string(hashed)
	user.UpdatedAt = time.Now()

	return s.Repository.Update(ctx, user)
}

func (s *Service) Delete(ctx context.Context, userID ulid.ULID) error {
	if _, err := s.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, userID)
}

// ServiceAdapter expõe o Service como shared.UserGetter.
type ServiceAdapter struct {
	service *Service
}

func NewServiceAdapter(service *Service) *ServiceAdapter {
	return &ServiceAdapter{service: service}
}

func (a *ServiceAdapter) Exists(ctx context.Context, userID ulid.ULID) error {
	_, err := a.service.GetByID(ctx, userID)
	return err
}
