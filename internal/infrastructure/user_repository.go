package infrastructure

import (
	"context"

	"Fluxo/internal/domain/user"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

var _ user.Repository = (*UserRepository)(nil)

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	return r.DB.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	return r.DB.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) Delete(ctx context.Context, userID ulid.ULID) error {
	return r.DB.WithContext(ctx).Where("id = ?", userID.String()).Delete(&user.User{}).Error
}

func (r *UserRepository) GetById(ctx context.Context, userID ulid.ULID) (*user.User, error) {
	var u user.User
	err := r.DB.WithContext(ctx).Where("id = ?", userID.String()).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}
