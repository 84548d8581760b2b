package mysql

import (
	"context"

	"gorm.io/gorm"

	userDomain "microlend-backend/internal/domain/user"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("phone_number = ?", phone).First(&out)
	return &out, res.Error
}

func (r *UserRepository) Save(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}
