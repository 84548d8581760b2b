package loan

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByID(ctx context.Context, id uint64) (*Application, error)
	GetByApplicationID(ctx context.Context, applicationID string) (*Application, error)
	// GetByApplicationIDForUpdate locks the row for the duration of the
	// surrounding transaction; callers must be inside one.
	GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*Application, error)
	GetPendingByUserID(ctx context.Context, userID uint64) (*Application, error)
	GetLatestByUserID(ctx context.Context, userID uint64) (*Application, error)
	Save(ctx context.Context, a *Application) error
}

type TypeRepository interface {
	Create(ctx context.Context, t *LoanType) error
	GetByID(ctx context.Context, id uint64) (*LoanType, error)
	GetByTypeID(ctx context.Context, typeID string) (*LoanType, error)
	List(ctx context.Context) ([]LoanType, error)
	// EffectiveRate resolves the annual rate for a loan type at a point in
	// time: a rate window containing `at` wins, else the base rate.
	EffectiveRate(ctx context.Context, loanTypeID uint64, at time.Time) (float64, error)
	CreateRateWindow(ctx context.Context, r *InterestRate) error
}
