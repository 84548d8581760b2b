package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint64) (*User, error)
	GetByUserID(ctx context.Context, userID string) (*User, error)
	GetByPhone(ctx context.Context, phone string) (*User, error)
	Save(ctx context.Context, u *User) error
}
