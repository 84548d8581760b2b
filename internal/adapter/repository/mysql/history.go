package mysql

import (
	"context"

	"gorm.io/gorm"

	histDomain "microlend-backend/internal/domain/history"
)

// HistoryRepository is append-only by construction: it implements exactly
// the Recorder interface and nothing that could mutate an existing row.
type HistoryRepository struct{ db *gorm.DB }

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Record(ctx context.Context, e *histDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *HistoryRepository) ListByUserID(ctx context.Context, userID uint64) ([]histDomain.Entry, error) {
	var out []histDomain.Entry
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("action_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *HistoryRepository) ListByApplicationID(ctx context.Context, applicationID uint64) ([]histDomain.Entry, error) {
	var out []histDomain.Entry
	res := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("action_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *HistoryRepository) HasDeniedByUserID(ctx context.Context, userID uint64) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&histDomain.Entry{}).
		Where("user_id = ? AND status = ?", userID, histDomain.StatusDenied).
		Count(&n)
	return n > 0, res.Error
}
