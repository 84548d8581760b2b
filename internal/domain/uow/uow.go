package uow

import (
	"context"

	"microlend-backend/internal/domain/collateral"
	"microlend-backend/internal/domain/history"
	"microlend-backend/internal/domain/loan"
	"microlend-backend/internal/domain/repayment"
	"microlend-backend/internal/domain/underwriting"
)

type Repos struct {
	Applications  loan.Repository
	LoanTypes     loan.TypeRepository
	Underwritings underwriting.Repository
	Repayments    repayment.Repository
	Collaterals   collateral.Repository
	Histories     history.Recorder
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the application row first, then pass it in
	WithinApplicationTx(ctx context.Context, applicationID string, fn func(r Repos, a *loan.Application) error) error
}
