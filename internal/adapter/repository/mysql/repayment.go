package mysql

import (
	"context"

	"gorm.io/gorm"

	rpDomain "microlend-backend/internal/domain/repayment"
)

type RepaymentRepository struct{ db *gorm.DB }

func NewRepaymentRepository(db *gorm.DB) *RepaymentRepository {
	return &RepaymentRepository{db: db}
}

func (r *RepaymentRepository) Create(ctx context.Context, rp *rpDomain.Repayment) error {
	return r.db.WithContext(ctx).Create(rp).Error
}

func (r *RepaymentRepository) GetLatestByApplicationID(ctx context.Context, applicationID uint64) (*rpDomain.Repayment, error) {
	var out rpDomain.Repayment
	res := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("payment_date DESC, id DESC").
		First(&out)
	return &out, res.Error
}

func (r *RepaymentRepository) ListByApplicationID(ctx context.Context, applicationID uint64) ([]rpDomain.Repayment, error) {
	var out []rpDomain.Repayment
	res := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("payment_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *RepaymentRepository) SumPaidByApplicationID(ctx context.Context, applicationID uint64) (float64, error) {
	var sum float64
	res := r.db.WithContext(ctx).
		Model(&rpDomain.Repayment{}).
		Where("application_id = ?", applicationID).
		Select("COALESCE(SUM(amount_paid), 0)").
		Scan(&sum)
	return sum, res.Error
}

type RepaymentMethodRepository struct{ db *gorm.DB }

func NewRepaymentMethodRepository(db *gorm.DB) *RepaymentMethodRepository {
	return &RepaymentMethodRepository{db: db}
}

func (r *RepaymentMethodRepository) Create(ctx context.Context, m *rpDomain.Method) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *RepaymentMethodRepository) GetByMethodID(ctx context.Context, methodID string) (*rpDomain.Method, error) {
	var out rpDomain.Method
	res := r.db.WithContext(ctx).Where("method_id = ?", methodID).First(&out)
	return &out, res.Error
}

func (r *RepaymentMethodRepository) List(ctx context.Context) ([]rpDomain.Method, error) {
	var out []rpDomain.Method
	res := r.db.WithContext(ctx).Order("name ASC").Find(&out)
	return out, res.Error
}
