package usermock

import (
	"context"

	"gorm.io/gorm"

	domain "microlend-backend/internal/domain/user"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies user.Repository.
type Repo struct {
	CreateFn      func(ctx context.Context, u *domain.User) error
	GetByIDFn     func(ctx context.Context, id uint64) (*domain.User, error)
	GetByUserIDFn func(ctx context.Context, userID string) (*domain.User, error)
	GetByPhoneFn  func(ctx context.Context, phone string) (*domain.User, error)
	SaveFn        func(ctx context.Context, u *domain.User) error
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	if m.GetByPhoneFn != nil {
		return m.GetByPhoneFn(ctx, phone)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) Save(ctx context.Context, u *domain.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}
