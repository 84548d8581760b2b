package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	loanDomain "microlend-backend/internal/domain/loan"
)

type LoanTypeRepository struct{ db *gorm.DB }

func NewLoanTypeRepository(db *gorm.DB) *LoanTypeRepository {
	return &LoanTypeRepository{db: db}
}

func (r *LoanTypeRepository) Create(ctx context.Context, t *loanDomain.LoanType) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *LoanTypeRepository) GetByID(ctx context.Context, id uint64) (*loanDomain.LoanType, error) {
	var out loanDomain.LoanType
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *LoanTypeRepository) GetByTypeID(ctx context.Context, typeID string) (*loanDomain.LoanType, error) {
	var out loanDomain.LoanType
	res := r.db.WithContext(ctx).Where("type_id = ?", typeID).First(&out)
	return &out, res.Error
}

func (r *LoanTypeRepository) List(ctx context.Context) ([]loanDomain.LoanType, error) {
	var out []loanDomain.LoanType
	res := r.db.WithContext(ctx).Order("name ASC").Find(&out)
	return out, res.Error
}

// EffectiveRate prefers the newest rate window covering `at`; without one
// the loan type's base rate applies.
func (r *LoanTypeRepository) EffectiveRate(ctx context.Context, loanTypeID uint64, at time.Time) (float64, error) {
	var w loanDomain.InterestRate
	res := r.db.WithContext(ctx).
		Where("loan_type_id = ? AND valid_from <= ? AND valid_to > ?", loanTypeID, at, at).
		Order("valid_from DESC, id DESC").
		First(&w)
	if res.Error == nil {
		return w.Rate, nil
	}
	if !errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return 0, res.Error
	}

	lt, err := r.GetByID(ctx, loanTypeID)
	if err != nil {
		return 0, err
	}
	return lt.InterestRate, nil
}

func (r *LoanTypeRepository) CreateRateWindow(ctx context.Context, w *loanDomain.InterestRate) error {
	return r.db.WithContext(ctx).Create(w).Error
}
