package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"microlend-backend/internal/domain/collateral"
	"microlend-backend/internal/domain/history"
	"microlend-backend/internal/domain/loan"
	"microlend-backend/internal/domain/user"
	"microlend-backend/internal/domain/uow"
	uwdomain "microlend-backend/internal/domain/underwriting"
	uweval "microlend-backend/internal/usecase/underwriting"
	"microlend-backend/pkg/id"
)

var ErrInvalidInput = errors.New("invalid input")

type Usecase struct {
	users user.Repository
	uow   uow.UnitOfWork
	eval  *uweval.Evaluator
}

func NewUsecase(users user.Repository, tx uow.UnitOfWork, eval *uweval.Evaluator) *Usecase {
	return &Usecase{users: users, uow: tx, eval: eval}
}

// Submit creates a Pending application together with its underwriting
// record, the optional collateral pledge and the Applied history entry,
// all in one transaction.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*ApplicationDTO, error) {
	if in.UserID == "" || in.LoanTypeID == "" || in.AmountRequested <= 0 {
		return nil, ErrInvalidInput
	}
	if in.Underwriting.Income < 0 {
		return nil, fmt.Errorf("%w: income must be non-negative", ErrInvalidInput)
	}

	usr, err := u.users.GetByUserID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}

	var dto *ApplicationDTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		lt, err := r.LoanTypes.GetByTypeID(ctx, in.LoanTypeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return loan.ErrTypeNotFound
			}
			return err
		}

		if in.AmountRequested < lt.MinAmount || in.AmountRequested > lt.MaxAmount {
			return fmt.Errorf("%w: %.2f not in [%.2f, %.2f]",
				loan.ErrAmountOutOfRange, in.AmountRequested, lt.MinAmount, lt.MaxAmount)
		}

		// Block if the user already has a pending application.
		pending, err := r.Applications.GetPendingByUserID(ctx, usr.ID)
		switch {
		case err == nil:
			return fmt.Errorf("user %s already has a pending application: %s", usr.UserID, pending.ApplicationID)
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		now := time.Now().UTC()
		rate, err := r.LoanTypes.EffectiveRate(ctx, lt.ID, now)
		if err != nil {
			return err
		}

		a := &loan.Application{
			ApplicationID:   id.NewID32(),
			UserID:          usr.ID,
			LoanTypeID:      lt.ID,
			AmountRequested: in.AmountRequested,
			InterestRate:    rate,
			Status:          loan.StatusPending,
			ApplicationDate: now,
		}
		if err := r.Applications.Create(ctx, a); err != nil {
			return err
		}

		uw := &uwdomain.Underwriting{
			ApplicationID:     a.ID,
			CreditScore:       in.Underwriting.CreditScore,
			DebtToIncomeRatio: in.Underwriting.DebtToIncomeRatio,
			Income:            in.Underwriting.Income,
			PreviousLoans:     in.Underwriting.PreviousLoans,
			UnderwriterNotes:  in.Underwriting.UnderwriterNotes,
		}
		if err := r.Underwritings.Create(ctx, uw); err != nil {
			return err
		}

		if in.Collateral != nil {
			c := &collateral.Collateral{
				CollateralID:   id.NewID32(),
				UserID:         usr.ID,
				ApplicationID:  a.ID,
				CollateralType: in.Collateral.CollateralType,
				Value:          in.Collateral.Value,
				Description:    in.Collateral.Description,
				Status:         collateral.StatusPending,
			}
			if err := r.Collaterals.Create(ctx, c); err != nil {
				return err
			}
			a.CollateralID = &c.ID
			if err := r.Applications.Save(ctx, a); err != nil {
				return err
			}
		}

		if err := r.Histories.Record(ctx, &history.Entry{
			UserID:        usr.ID,
			ApplicationID: a.ID,
			Status:        history.StatusApplied,
		}); err != nil {
			return err
		}

		dto = toDTO(a, usr.UserID, in.LoanTypeID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Approve transitions a Pending application to Approved, stamping the
// approved amount and approval date, generating the installment schedule
// and appending the history entry — one commit for all of it. Shared by
// the evaluator-driven path and manual underwriter overrides.
func (u *Usecase) Approve(ctx context.Context, applicationID string, amount float64) (*ApplicationDTO, error) {
	if amount <= 0 {
		return nil, ErrInvalidInput
	}
	var dto *ApplicationDTO
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *loan.Application) error {
		if err := guardPending(a); err != nil {
			return err
		}
		return u.applyApproval(ctx, r, a, amount, "", &dto)
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Deny transitions a Pending application to Denied and appends the
// history entry atomically.
func (u *Usecase) Deny(ctx context.Context, applicationID string) (*ApplicationDTO, error) {
	var dto *ApplicationDTO
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *loan.Application) error {
		if err := guardPending(a); err != nil {
			return err
		}
		return u.applyDenial(ctx, r, a, "", &dto)
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Decide evaluates a Pending application's underwriting snapshot and
// applies the resulting transition in the same locked transaction.
func (u *Usecase) Decide(ctx context.Context, applicationID string) (*DecisionDTO, error) {
	var out *DecisionDTO
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *loan.Application) error {
		if err := guardPending(a); err != nil {
			return err
		}

		snap, err := u.snapshotFor(ctx, r, a)
		if err != nil {
			return err
		}
		d := u.eval.Evaluate(snap)

		var dto *ApplicationDTO
		if d.Approved {
			if err := u.applyApproval(ctx, r, a, d.Amount, d.Reason.Text(), &dto); err != nil {
				return err
			}
			out = &DecisionDTO{ApplicationID: a.ApplicationID, Approved: true, Amount: a.AmountApproved, Reason: string(d.Reason)}
			return nil
		}
		if err := u.applyDenial(ctx, r, a, d.Reason.Text(), &dto); err != nil {
			return err
		}
		out = &DecisionDTO{ApplicationID: a.ApplicationID, Approved: false, Reason: string(d.Reason)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EvaluateEligibility is the read-only wrapper: it runs the evaluator
// over the user's latest application without touching any state.
func (u *Usecase) EvaluateEligibility(ctx context.Context, userID string) (*EligibilityDTO, error) {
	usr, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}

	var out *EligibilityDTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		snap := uweval.Snapshot{}
		a, err := r.Applications.GetLatestByUserID(ctx, usr.ID)
		switch {
		case err == nil:
			snap, err = u.snapshotFor(ctx, r, a)
			if err != nil {
				return err
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		default:
			// No application yet: evaluate with an empty snapshot, which
			// fails the no-underwriting rule — same answer the legacy
			// system gave.
			denied, err := r.Histories.HasDeniedByUserID(ctx, usr.ID)
			if err != nil {
				return err
			}
			snap.HasPriorDenial = denied
		}

		d := u.eval.Evaluate(snap)
		out = &EligibilityDTO{Eligible: d.Approved, Reason: d.Reason.Text()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, applicationID string) (*ApplicationDTO, error) {
	var dto *ApplicationDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Applications.GetByApplicationID(ctx, applicationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return loan.ErrNotFound
			}
			return err
		}
		lt, err := r.LoanTypes.GetByID(ctx, a.LoanTypeID)
		if err != nil {
			return err
		}
		usr, err := u.users.GetByID(ctx, a.UserID)
		if err != nil {
			return err
		}
		dto = toDTO(a, usr.UserID, lt.TypeID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// History returns a user's audit trail, newest first.
func (u *Usecase) History(ctx context.Context, userID string) ([]HistoryDTO, error) {
	usr, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}

	var out []HistoryDTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		entries, err := r.Histories.ListByUserID(ctx, usr.ID)
		if err != nil {
			return err
		}
		// Resolve numeric application ids to public ones; the trail for
		// one user is short, a tiny cache avoids repeat lookups.
		pub := map[uint64]string{}
		out = make([]HistoryDTO, 0, len(entries))
		for _, e := range entries {
			appID, ok := pub[e.ApplicationID]
			if !ok {
				a, err := r.Applications.GetByID(ctx, e.ApplicationID)
				if err != nil {
					return err
				}
				appID = a.ApplicationID
				pub[e.ApplicationID] = appID
			}
			out = append(out, HistoryDTO{
				ApplicationID: appID,
				Status:        string(e.Status),
				Note:          e.Note,
				ActionDate:    e.ActionDate,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ---- internals ----

func guardPending(a *loan.Application) error {
	if a.Status == loan.StatusPending {
		return nil
	}
	// A lost race lands here too: the lock serializes both callers and the
	// loser observes the terminal status. Retrying is safe per the state
	// machine — the outcome is already durable.
	if a.Status == loan.StatusApproved || a.Status == loan.StatusDenied {
		return loan.ErrAlreadyDecided
	}
	return loan.ErrInvalidTransition
}

func (u *Usecase) snapshotFor(ctx context.Context, r uow.Repos, a *loan.Application) (uweval.Snapshot, error) {
	snap := uweval.Snapshot{AmountRequested: a.AmountRequested}

	uw, err := r.Underwritings.GetByApplicationID(ctx, a.ID)
	switch {
	case err == nil:
		snap.Underwriting = uw
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return snap, err
	}

	denied, err := r.Histories.HasDeniedByUserID(ctx, a.UserID)
	if err != nil {
		return snap, err
	}
	snap.HasPriorDenial = denied
	return snap, nil
}

func (u *Usecase) applyApproval(ctx context.Context, r uow.Repos, a *loan.Application, amount float64, note string, dto **ApplicationDTO) error {
	lt, err := r.LoanTypes.GetByID(ctx, a.LoanTypeID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	a.Status = loan.StatusApproved
	a.AmountApproved = &amount
	a.ApprovalDate = &now
	a.RepaymentSchedule = loan.BuildSchedule(amount, lt.TermMonths, now)
	if err := r.Applications.Save(ctx, a); err != nil {
		return err
	}

	if err := r.Histories.Record(ctx, &history.Entry{
		UserID:        a.UserID,
		ApplicationID: a.ID,
		Status:        history.StatusApproved,
		Note:          note,
	}); err != nil {
		return err
	}

	*dto = toDTO(a, "", lt.TypeID)
	return nil
}

func (u *Usecase) applyDenial(ctx context.Context, r uow.Repos, a *loan.Application, note string, dto **ApplicationDTO) error {
	a.Status = loan.StatusDenied
	if err := r.Applications.Save(ctx, a); err != nil {
		return err
	}

	if err := r.Histories.Record(ctx, &history.Entry{
		UserID:        a.UserID,
		ApplicationID: a.ID,
		Status:        history.StatusDenied,
		Note:          note,
	}); err != nil {
		return err
	}

	*dto = toDTO(a, "", "")
	return nil
}

func toDTO(a *loan.Application, userID, loanTypeID string) *ApplicationDTO {
	return &ApplicationDTO{
		ApplicationID:   a.ApplicationID,
		UserID:          userID,
		LoanTypeID:      loanTypeID,
		AmountRequested: a.AmountRequested,
		AmountApproved:  a.AmountApproved,
		InterestRate:    a.InterestRate,
		Status:          string(a.Status),
		ApplicationDate: a.ApplicationDate,
		ApprovalDate:    a.ApprovalDate,
		Schedule:        a.RepaymentSchedule,
	}
}
