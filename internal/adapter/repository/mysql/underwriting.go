package mysql

import (
	"context"

	"gorm.io/gorm"

	uwDomain "microlend-backend/internal/domain/underwriting"
)

type UnderwritingRepository struct{ db *gorm.DB }

func NewUnderwritingRepository(db *gorm.DB) *UnderwritingRepository {
	return &UnderwritingRepository{db: db}
}

func (r *UnderwritingRepository) Create(ctx context.Context, u *uwDomain.Underwriting) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UnderwritingRepository) GetByApplicationID(ctx context.Context, applicationID uint64) (*uwDomain.Underwriting, error) {
	var out uwDomain.Underwriting
	res := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out)
	return &out, res.Error
}

func (r *UnderwritingRepository) Save(ctx context.Context, u *uwDomain.Underwriting) error {
	return r.db.WithContext(ctx).Save(u).Error
}

// DeleteByApplicationID exists only for the application-cascade path.
func (r *UnderwritingRepository) DeleteByApplicationID(ctx context.Context, applicationID uint64) error {
	return r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Delete(&uwDomain.Underwriting{}).Error
}
