package repayment

import "context"

type Repository interface {
	Create(ctx context.Context, r *Repayment) error
	// GetLatestByApplicationID returns the most recent repayment, i.e. the
	// one carrying the current remaining balance.
	GetLatestByApplicationID(ctx context.Context, applicationID uint64) (*Repayment, error)
	ListByApplicationID(ctx context.Context, applicationID uint64) ([]Repayment, error)
	SumPaidByApplicationID(ctx context.Context, applicationID uint64) (float64, error)
}

type MethodRepository interface {
	Create(ctx context.Context, m *Method) error
	GetByMethodID(ctx context.Context, methodID string) (*Method, error)
	List(ctx context.Context) ([]Method, error)
}
