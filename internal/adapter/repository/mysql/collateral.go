package mysql

import (
	"context"

	"gorm.io/gorm"

	colDomain "microlend-backend/internal/domain/collateral"
)

type CollateralRepository struct{ db *gorm.DB }

func NewCollateralRepository(db *gorm.DB) *CollateralRepository {
	return &CollateralRepository{db: db}
}

func (r *CollateralRepository) Create(ctx context.Context, c *colDomain.Collateral) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CollateralRepository) GetByCollateralID(ctx context.Context, collateralID string) (*colDomain.Collateral, error) {
	var out colDomain.Collateral
	res := r.db.WithContext(ctx).Where("collateral_id = ?", collateralID).First(&out)
	return &out, res.Error
}

func (r *CollateralRepository) GetByCollateralIDForUpdate(ctx context.Context, collateralID string) (*colDomain.Collateral, error) {
	var out colDomain.Collateral
	res := lockForUpdate(r.db.WithContext(ctx)).
		Where("collateral_id = ?", collateralID).
		First(&out)
	return &out, res.Error
}

func (r *CollateralRepository) GetByApplicationID(ctx context.Context, applicationID uint64) (*colDomain.Collateral, error) {
	var out colDomain.Collateral
	res := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out)
	return &out, res.Error
}

func (r *CollateralRepository) Save(ctx context.Context, c *colDomain.Collateral) error {
	return r.db.WithContext(ctx).Save(c).Error
}
