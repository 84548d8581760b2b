package uowmock

import (
	"context"
	"errors"

	"microlend-backend/internal/domain/loan"
	"microlend-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return
// errUnimplemented.
type UoW struct {
	WithinTxFn            func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinApplicationTxFn func(ctx context.Context, applicationID string, fn func(r uow.Repos, a *loan.Application) error) error
}

func New() *UoW { return &UoW{} }

// Static wires both methods straight through to the given repos with no
// transaction semantics; WithinApplicationTx resolves the application via
// the repos' locking getter, like the real unit of work does.
func Static(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(r)
		},
		WithinApplicationTxFn: func(ctx context.Context, applicationID string, fn func(r uow.Repos, a *loan.Application) error) error {
			a, err := r.Applications.GetByApplicationIDForUpdate(ctx, applicationID)
			if err != nil {
				return err
			}
			return fn(r, a)
		},
	}
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinApplicationTx(ctx context.Context, applicationID string, fn func(r uow.Repos, a *loan.Application) error) error {
	if m.WithinApplicationTxFn != nil {
		return m.WithinApplicationTxFn(ctx, applicationID, fn)
	}
	return errUnimplemented
}
