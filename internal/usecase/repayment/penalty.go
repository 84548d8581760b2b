package repayment

import (
	"time"

	"microlend-backend/internal/domain/loan"
)

// PenaltyPolicy is the overdue-penalty extension point. The legacy system
// shipped an empty placeholder here; policies plug in without touching
// the ledger. Assessed penalties are reported alongside overdue
// installments, never silently folded into the remaining balance.
type PenaltyPolicy interface {
	Assess(ins loan.Installment, asOf time.Time) float64
}

// NoPenalty is the default: overdue installments are flagged but carry no
// charge.
type NoPenalty struct{}

func (NoPenalty) Assess(loan.Installment, time.Time) float64 { return 0 }

// FlatFee charges a fixed fee per overdue installment.
type FlatFee struct{ Fee float64 }

func (f FlatFee) Assess(loan.Installment, time.Time) float64 { return f.Fee }
