package repayment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"microlend-backend/internal/domain/history"
	"microlend-backend/internal/domain/loan"
	domain "microlend-backend/internal/domain/repayment"
	"microlend-backend/internal/domain/uow"
	"microlend-backend/pkg/id"
)

func round2(v float64) float64 { return math.Round(v*100) / 100 }

type Usecase struct {
	methods domain.MethodRepository
	types   loan.TypeRepository
	uow     uow.UnitOfWork
	penalty PenaltyPolicy
}

func NewUsecase(methods domain.MethodRepository, types loan.TypeRepository, tx uow.UnitOfWork, penalty PenaltyPolicy) *Usecase {
	if penalty == nil {
		penalty = NoPenalty{}
	}
	return &Usecase{methods: methods, types: types, uow: tx, penalty: penalty}
}

// ApplyPayment posts one payment against an approved application. The
// application row is locked for the read-compute-write, so the balance
// chain stays consistent under concurrent payments. Fully clearing the
// balance appends the Repaid history entry in the same commit.
func (u *Usecase) ApplyPayment(ctx context.Context, applicationID string, amount float64, methodID string) (*RepaymentDTO, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	m, err := u.methods.GetByMethodID(ctx, methodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMethodNotFound
		}
		return nil, err
	}

	var dto *RepaymentDTO
	err = u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *loan.Application) error {
		if a.Status != loan.StatusApproved || a.AmountApproved == nil {
			return domain.ErrNotApproved
		}

		prev := *a.AmountApproved
		last, err := r.Repayments.GetLatestByApplicationID(ctx, a.ID)
		switch {
		case err == nil:
			prev = last.RemainingBalance
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		balance := round2(prev - amount)
		if balance < 0 {
			return fmt.Errorf("%w: remaining balance is %.2f", domain.ErrOverpayment, prev)
		}

		rp := &domain.Repayment{
			RepaymentID:      id.NewID32(),
			ApplicationID:    a.ID,
			MethodID:         m.ID,
			AmountPaid:       amount,
			PaymentDate:      time.Now().UTC(),
			RemainingBalance: balance,
		}
		if err := r.Repayments.Create(ctx, rp); err != nil {
			return err
		}

		if balance == 0 {
			if err := r.Histories.Record(ctx, &history.Entry{
				UserID:        a.UserID,
				ApplicationID: a.ID,
				Status:        history.StatusRepaid,
			}); err != nil {
				return err
			}
		}

		dto = &RepaymentDTO{
			RepaymentID:      rp.RepaymentID,
			ApplicationID:    a.ApplicationID,
			AmountPaid:       rp.AmountPaid,
			PaymentDate:      rp.PaymentDate,
			Method:           m.Name,
			RemainingBalance: rp.RemainingBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// List returns the ordered payment trail for an application.
func (u *Usecase) List(ctx context.Context, applicationID string) ([]RepaymentDTO, error) {
	var out []RepaymentDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Applications.GetByApplicationID(ctx, applicationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return loan.ErrNotFound
			}
			return err
		}
		rows, err := r.Repayments.ListByApplicationID(ctx, a.ID)
		if err != nil {
			return err
		}
		out = make([]RepaymentDTO, 0, len(rows))
		for _, rp := range rows {
			out = append(out, RepaymentDTO{
				RepaymentID:      rp.RepaymentID,
				ApplicationID:    a.ApplicationID,
				AmountPaid:       rp.AmountPaid,
				PaymentDate:      rp.PaymentDate,
				RemainingBalance: rp.RemainingBalance,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Overdue reports schedule entries due before asOf that cumulative
// payments do not cover, each with the configured penalty assessment.
func (u *Usecase) Overdue(ctx context.Context, applicationID string, asOf time.Time) ([]OverdueInstallmentDTO, error) {
	var out []OverdueInstallmentDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Applications.GetByApplicationID(ctx, applicationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return loan.ErrNotFound
			}
			return err
		}
		if a.Status != loan.StatusApproved || len(a.RepaymentSchedule) == 0 {
			out = []OverdueInstallmentDTO{}
			return nil
		}

		paid, err := r.Repayments.SumPaidByApplicationID(ctx, a.ID)
		if err != nil {
			return err
		}

		out = []OverdueInstallmentDTO{}
		var scheduled float64
		for _, ins := range a.RepaymentSchedule {
			scheduled = round2(scheduled + ins.Amount)
			if !ins.DueDate.Before(asOf) {
				break
			}
			short := round2(scheduled - paid)
			if short <= 0 {
				continue
			}
			if short > ins.Amount {
				short = ins.Amount
			}
			out = append(out, OverdueInstallmentDTO{
				Sequence:  ins.Sequence,
				DueDate:   ins.DueDate,
				Amount:    ins.Amount,
				Shortfall: short,
				Penalty:   round2(u.penalty.Assess(ins, asOf)),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Quote computes the annuity cost of borrowing `amount` under a loan
// type's current terms: fixed monthly payment, total paid and total
// interest over the term. Informational only — the ledger itself tracks
// principal.
func (u *Usecase) Quote(ctx context.Context, loanTypeID string, amount float64) (*QuoteDTO, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	lt, err := u.types.GetByTypeID(ctx, loanTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrTypeNotFound
		}
		return nil, err
	}
	rate, err := u.types.EffectiveRate(ctx, lt.ID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	monthly := MonthlyPayment(amount, rate, lt.TermMonths)
	total := round2(monthly * float64(lt.TermMonths))
	return &QuoteDTO{
		LoanTypeID:     lt.TypeID,
		Amount:         amount,
		InterestRate:   rate,
		TermMonths:     lt.TermMonths,
		MonthlyPayment: monthly,
		TotalPayment:   total,
		TotalInterest:  round2(total - amount),
	}, nil
}

// MonthlyPayment is the standard annuity formula at an annual percentage
// rate over n monthly installments. Zero-rate loans divide evenly.
func MonthlyPayment(amount, annualRate float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	if annualRate == 0 {
		return round2(amount / float64(n))
	}
	r := annualRate / 100 / 12
	return round2(amount * r / (1 - math.Pow(1+r, float64(-n))))
}
