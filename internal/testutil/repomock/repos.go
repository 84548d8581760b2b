// Package repomock provides function-backed mocks for the repositories
// bundled in uow.Repos. Fill in the function fields a test needs;
// unfilled lookups report gorm.ErrRecordNotFound so "not found" is the
// default world state.
package repomock

import (
	"context"
	"time"

	"gorm.io/gorm"

	"microlend-backend/internal/domain/collateral"
	"microlend-backend/internal/domain/history"
	"microlend-backend/internal/domain/loan"
	"microlend-backend/internal/domain/repayment"
	"microlend-backend/internal/domain/underwriting"
)

var (
	_ loan.Repository            = (*AppRepo)(nil)
	_ loan.TypeRepository        = (*TypeRepo)(nil)
	_ underwriting.Repository    = (*UnderwritingRepo)(nil)
	_ repayment.Repository       = (*RepaymentRepo)(nil)
	_ repayment.MethodRepository = (*MethodRepo)(nil)
	_ collateral.Repository      = (*CollateralRepo)(nil)
	_ history.Recorder           = (*HistoryRecorder)(nil)
)

type AppRepo struct {
	CreateFn                      func(ctx context.Context, a *loan.Application) error
	GetByIDFn                     func(ctx context.Context, id uint64) (*loan.Application, error)
	GetByApplicationIDFn          func(ctx context.Context, applicationID string) (*loan.Application, error)
	GetByApplicationIDForUpdateFn func(ctx context.Context, applicationID string) (*loan.Application, error)
	GetPendingByUserIDFn          func(ctx context.Context, userID uint64) (*loan.Application, error)
	GetLatestByUserIDFn           func(ctx context.Context, userID uint64) (*loan.Application, error)
	SaveFn                        func(ctx context.Context, a *loan.Application) error
}

func (m *AppRepo) Create(ctx context.Context, a *loan.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *AppRepo) GetByID(ctx context.Context, id uint64) (*loan.Application, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *AppRepo) GetByApplicationID(ctx context.Context, applicationID string) (*loan.Application, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *AppRepo) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*loan.Application, error) {
	if m.GetByApplicationIDForUpdateFn != nil {
		return m.GetByApplicationIDForUpdateFn(ctx, applicationID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *AppRepo) GetPendingByUserID(ctx context.Context, userID uint64) (*loan.Application, error) {
	if m.GetPendingByUserIDFn != nil {
		return m.GetPendingByUserIDFn(ctx, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *AppRepo) GetLatestByUserID(ctx context.Context, userID uint64) (*loan.Application, error) {
	if m.GetLatestByUserIDFn != nil {
		return m.GetLatestByUserIDFn(ctx, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *AppRepo) Save(ctx context.Context, a *loan.Application) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

type TypeRepo struct {
	CreateFn           func(ctx context.Context, t *loan.LoanType) error
	GetByIDFn          func(ctx context.Context, id uint64) (*loan.LoanType, error)
	GetByTypeIDFn      func(ctx context.Context, typeID string) (*loan.LoanType, error)
	ListFn             func(ctx context.Context) ([]loan.LoanType, error)
	EffectiveRateFn    func(ctx context.Context, loanTypeID uint64, at time.Time) (float64, error)
	CreateRateWindowFn func(ctx context.Context, r *loan.InterestRate) error
}

func (m *TypeRepo) Create(ctx context.Context, t *loan.LoanType) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *TypeRepo) GetByID(ctx context.Context, id uint64) (*loan.LoanType, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *TypeRepo) GetByTypeID(ctx context.Context, typeID string) (*loan.LoanType, error) {
	if m.GetByTypeIDFn != nil {
		return m.GetByTypeIDFn(ctx, typeID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *TypeRepo) List(ctx context.Context) ([]loan.LoanType, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *TypeRepo) EffectiveRate(ctx context.Context, loanTypeID uint64, at time.Time) (float64, error) {
	if m.EffectiveRateFn != nil {
		return m.EffectiveRateFn(ctx, loanTypeID, at)
	}
	return 0, nil
}

func (m *TypeRepo) CreateRateWindow(ctx context.Context, r *loan.InterestRate) error {
	if m.CreateRateWindowFn != nil {
		return m.CreateRateWindowFn(ctx, r)
	}
	return nil
}

type UnderwritingRepo struct {
	CreateFn                func(ctx context.Context, u *underwriting.Underwriting) error
	GetByApplicationIDFn    func(ctx context.Context, applicationID uint64) (*underwriting.Underwriting, error)
	SaveFn                  func(ctx context.Context, u *underwriting.Underwriting) error
	DeleteByApplicationIDFn func(ctx context.Context, applicationID uint64) error
}

func (m *UnderwritingRepo) Create(ctx context.Context, u *underwriting.Underwriting) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *UnderwritingRepo) GetByApplicationID(ctx context.Context, applicationID uint64) (*underwriting.Underwriting, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *UnderwritingRepo) Save(ctx context.Context, u *underwriting.Underwriting) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}

func (m *UnderwritingRepo) DeleteByApplicationID(ctx context.Context, applicationID uint64) error {
	if m.DeleteByApplicationIDFn != nil {
		return m.DeleteByApplicationIDFn(ctx, applicationID)
	}
	return nil
}

type RepaymentRepo struct {
	CreateFn                   func(ctx context.Context, r *repayment.Repayment) error
	GetLatestByApplicationIDFn func(ctx context.Context, applicationID uint64) (*repayment.Repayment, error)
	ListByApplicationIDFn      func(ctx context.Context, applicationID uint64) ([]repayment.Repayment, error)
	SumPaidByApplicationIDFn   func(ctx context.Context, applicationID uint64) (float64, error)
}

func (m *RepaymentRepo) Create(ctx context.Context, r *repayment.Repayment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *RepaymentRepo) GetLatestByApplicationID(ctx context.Context, applicationID uint64) (*repayment.Repayment, error) {
	if m.GetLatestByApplicationIDFn != nil {
		return m.GetLatestByApplicationIDFn(ctx, applicationID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *RepaymentRepo) ListByApplicationID(ctx context.Context, applicationID uint64) ([]repayment.Repayment, error) {
	if m.ListByApplicationIDFn != nil {
		return m.ListByApplicationIDFn(ctx, applicationID)
	}
	return nil, nil
}

func (m *RepaymentRepo) SumPaidByApplicationID(ctx context.Context, applicationID uint64) (float64, error) {
	if m.SumPaidByApplicationIDFn != nil {
		return m.SumPaidByApplicationIDFn(ctx, applicationID)
	}
	return 0, nil
}

type MethodRepo struct {
	CreateFn        func(ctx context.Context, mth *repayment.Method) error
	GetByMethodIDFn func(ctx context.Context, methodID string) (*repayment.Method, error)
	ListFn          func(ctx context.Context) ([]repayment.Method, error)
}

func (m *MethodRepo) Create(ctx context.Context, mth *repayment.Method) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, mth)
	}
	return nil
}

func (m *MethodRepo) GetByMethodID(ctx context.Context, methodID string) (*repayment.Method, error) {
	if m.GetByMethodIDFn != nil {
		return m.GetByMethodIDFn(ctx, methodID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MethodRepo) List(ctx context.Context) ([]repayment.Method, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

type CollateralRepo struct {
	CreateFn                     func(ctx context.Context, c *collateral.Collateral) error
	GetByCollateralIDFn          func(ctx context.Context, collateralID string) (*collateral.Collateral, error)
	GetByCollateralIDForUpdateFn func(ctx context.Context, collateralID string) (*collateral.Collateral, error)
	GetByApplicationIDFn         func(ctx context.Context, applicationID uint64) (*collateral.Collateral, error)
	SaveFn                       func(ctx context.Context, c *collateral.Collateral) error
}

func (m *CollateralRepo) Create(ctx context.Context, c *collateral.Collateral) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *CollateralRepo) GetByCollateralID(ctx context.Context, collateralID string) (*collateral.Collateral, error) {
	if m.GetByCollateralIDFn != nil {
		return m.GetByCollateralIDFn(ctx, collateralID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *CollateralRepo) GetByCollateralIDForUpdate(ctx context.Context, collateralID string) (*collateral.Collateral, error) {
	if m.GetByCollateralIDForUpdateFn != nil {
		return m.GetByCollateralIDForUpdateFn(ctx, collateralID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *CollateralRepo) GetByApplicationID(ctx context.Context, applicationID uint64) (*collateral.Collateral, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *CollateralRepo) Save(ctx context.Context, c *collateral.Collateral) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

type HistoryRecorder struct {
	RecordFn              func(ctx context.Context, e *history.Entry) error
	ListByUserIDFn        func(ctx context.Context, userID uint64) ([]history.Entry, error)
	ListByApplicationIDFn func(ctx context.Context, applicationID uint64) ([]history.Entry, error)
	HasDeniedByUserIDFn   func(ctx context.Context, userID uint64) (bool, error)
}

func (m *HistoryRecorder) Record(ctx context.Context, e *history.Entry) error {
	if m.RecordFn != nil {
		return m.RecordFn(ctx, e)
	}
	return nil
}

func (m *HistoryRecorder) ListByUserID(ctx context.Context, userID uint64) ([]history.Entry, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (m *HistoryRecorder) ListByApplicationID(ctx context.Context, applicationID uint64) ([]history.Entry, error) {
	if m.ListByApplicationIDFn != nil {
		return m.ListByApplicationIDFn(ctx, applicationID)
	}
	return nil, nil
}

func (m *HistoryRecorder) HasDeniedByUserID(ctx context.Context, userID uint64) (bool, error) {
	if m.HasDeniedByUserIDFn != nil {
		return m.HasDeniedByUserIDFn(ctx, userID)
	}
	return false, nil
}
