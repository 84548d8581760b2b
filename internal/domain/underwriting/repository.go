package underwriting

import "context"

type Repository interface {
	Create(ctx context.Context, u *Underwriting) error
	GetByApplicationID(ctx context.Context, applicationID uint64) (*Underwriting, error)
	Save(ctx context.Context, u *Underwriting) error
	// DeleteByApplicationID cascades with its application; never exposed on
	// its own through the HTTP surface.
	DeleteByApplicationID(ctx context.Context, applicationID uint64) error
}
