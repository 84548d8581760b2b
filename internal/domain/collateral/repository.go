package collateral

import "context"

type Repository interface {
	Create(ctx context.Context, c *Collateral) error
	GetByCollateralID(ctx context.Context, collateralID string) (*Collateral, error)
	GetByCollateralIDForUpdate(ctx context.Context, collateralID string) (*Collateral, error)
	GetByApplicationID(ctx context.Context, applicationID uint64) (*Collateral, error)
	Save(ctx context.Context, c *Collateral) error
}
