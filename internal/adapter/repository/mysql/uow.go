package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"microlend-backend/internal/domain/loan"
	"microlend-backend/internal/domain/uow"
)

// lockForUpdate adds SELECT ... FOR UPDATE where the dialect has it.
// sqlite (used in tests) serializes writers itself and rejects the clause.
func lockForUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Applications:  &ApplicationRepository{db: tx},
		LoanTypes:     &LoanTypeRepository{db: tx},
		Underwritings: &UnderwritingRepository{db: tx},
		Repayments:    &RepaymentRepository{db: tx},
		Collaterals:   &CollateralRepository{db: tx},
		Histories:     &HistoryRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinApplicationTx(ctx context.Context, applicationID string, fn func(r uow.Repos, a *loan.Application) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the application row up-front to prevent races
		a, err := r.Applications.GetByApplicationIDForUpdate(ctx, applicationID)
		if err != nil {
			return err
		}
		return fn(r, a)
	})
}
