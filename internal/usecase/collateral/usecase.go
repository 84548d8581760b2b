package collateral

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "microlend-backend/internal/domain/collateral"
	"microlend-backend/internal/domain/uow"
)

type CollateralDTO struct {
	CollateralID   string    `json:"collateral_id"`
	CollateralType string    `json:"collateral_type"`
	Value          float64   `json:"collateral_value"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Verify moves a pledge from Pending to Verified. That is the only legal
// entry into Verified; anything else is an invalid transition.
func (u *Usecase) Verify(ctx context.Context, collateralID string) (*CollateralDTO, error) {
	return u.transition(ctx, collateralID, domain.StatusPending, domain.StatusVerified)
}

// Release moves a Verified pledge to Released, the terminal status.
func (u *Usecase) Release(ctx context.Context, collateralID string) (*CollateralDTO, error) {
	return u.transition(ctx, collateralID, domain.StatusVerified, domain.StatusReleased)
}

func (u *Usecase) Get(ctx context.Context, collateralID string) (*CollateralDTO, error) {
	var dto *CollateralDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Collaterals.GetByCollateralID(ctx, collateralID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		dto = toDTO(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) transition(ctx context.Context, collateralID string, from, to domain.Status) (*CollateralDTO, error) {
	var dto *CollateralDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		// Lock the row: two concurrent verifies must not both succeed.
		c, err := r.Collaterals.GetByCollateralIDForUpdate(ctx, collateralID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if c.Status != from {
			return domain.ErrInvalidTransition
		}
		c.Status = to
		if err := r.Collaterals.Save(ctx, c); err != nil {
			return err
		}
		dto = toDTO(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func toDTO(c *domain.Collateral) *CollateralDTO {
	return &CollateralDTO{
		CollateralID:   c.CollateralID,
		CollateralType: c.CollateralType,
		Value:          c.Value,
		Description:    c.Description,
		Status:         string(c.Status),
		UpdatedAt:      c.UpdatedAt,
	}
}
