package mysql

import (
	"context"

	"gorm.io/gorm"

	loanDomain "microlend-backend/internal/domain/loan"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *loanDomain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) Save(ctx context.Context, a *loanDomain.Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uint64) (*loanDomain.Application, error) {
	var out loanDomain.Application
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) GetByApplicationID(ctx context.Context, applicationID string) (*loanDomain.Application, error) {
	var out loanDomain.Application
	res := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out)
	return &out, res.Error
}

// GetByApplicationIDForUpdate takes a row lock; only meaningful inside a
// transaction.
func (r *ApplicationRepository) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*loanDomain.Application, error) {
	var out loanDomain.Application
	res := lockForUpdate(r.db.WithContext(ctx)).
		Where("application_id = ?", applicationID).
		First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) GetPendingByUserID(ctx context.Context, userID uint64) (*loanDomain.Application, error) {
	var out loanDomain.Application
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, loanDomain.StatusPending).
		Order("application_date DESC, id DESC").
		First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) GetLatestByUserID(ctx context.Context, userID uint64) (*loanDomain.Application, error) {
	var out loanDomain.Application
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("application_date DESC, id DESC").
		First(&out)
	return &out, res.Error
}
