package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	histDomain "microlend-backend/internal/domain/history"
	loanDomain "microlend-backend/internal/domain/loan"
	"microlend-backend/internal/domain/uow"
	uwDomain "microlend-backend/internal/domain/underwriting"
	"microlend-backend/pkg/id"
)

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	appRepo := NewApplicationRepository(db)
	uwRepo := NewUnderwritingRepository(db)

	appID := id.NewID32()
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		a := makeApplication(appID, 7)
		if err := r.Applications.Create(ctx, a); err != nil {
			return err
		}
		if a.ID == 0 {
			t.Fatal("application auto ID not set")
		}
		if err := r.Underwritings.Create(ctx, &uwDomain.Underwriting{ApplicationID: a.ID, Income: 3000}); err != nil {
			return err
		}
		return r.Histories.Record(ctx, &histDomain.Entry{
			UserID:        7,
			ApplicationID: a.ID,
			Status:        histDomain.StatusApplied,
			ActionDate:    time.Now().UTC(),
		})
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	a, err := appRepo.GetByApplicationID(ctx, appID)
	if err != nil {
		t.Fatalf("application not visible after commit: %v", err)
	}
	if _, err := uwRepo.GetByApplicationID(ctx, a.ID); err != nil {
		t.Fatalf("underwriting not visible after commit: %v", err)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	appRepo := NewApplicationRepository(db)

	appID := id.NewID32()
	sentinel := errors.New("boom")

	_ = guow.WithinTx(ctx, func(r uow.Repos) error {
		a := makeApplication(appID, 7)
		if err := r.Applications.Create(ctx, a); err != nil {
			return err
		}
		if err := r.Underwritings.Create(ctx, &uwDomain.Underwriting{ApplicationID: a.ID, Income: 3000}); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	if _, err := appRepo.GetByApplicationID(ctx, appID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected application gone after rollback, got %v", err)
	}
}

func TestGormUoW_WithinApplicationTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	appRepo := NewApplicationRepository(db)

	appID := id.NewID32()
	if err := appRepo.Create(ctx, makeApplication(appID, 7)); err != nil {
		t.Fatalf("seed application: %v", err)
	}

	amount := 2000.00
	err := guow.WithinApplicationTx(ctx, appID, func(r uow.Repos, a *loanDomain.Application) error {
		if a == nil || a.ApplicationID != appID || a.Status != loanDomain.StatusPending {
			t.Fatalf("unexpected application passed to fn: %+v", a)
		}
		now := time.Now().UTC()
		a.Status = loanDomain.StatusApproved
		a.AmountApproved = &amount
		a.ApprovalDate = &now
		a.RepaymentSchedule = loanDomain.BuildSchedule(amount, 4, now)
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		return r.Histories.Record(ctx, &histDomain.Entry{
			UserID:        a.UserID,
			ApplicationID: a.ID,
			Status:        histDomain.StatusApproved,
			ActionDate:    now,
		})
	})
	if err != nil {
		t.Fatalf("WithinApplicationTx commit err: %v", err)
	}

	got, err := appRepo.GetByApplicationID(ctx, appID)
	if err != nil {
		t.Fatalf("GetByApplicationID post-commit: %v", err)
	}
	if got.Status != loanDomain.StatusApproved || got.AmountApproved == nil {
		t.Fatalf("decision not persisted: %+v", got)
	}
}

func TestGormUoW_WithinApplicationTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	appRepo := NewApplicationRepository(db)
	histRepo := NewHistoryRepository(db)

	appID := id.NewID32()
	seed := makeApplication(appID, 7)
	if err := appRepo.Create(ctx, seed); err != nil {
		t.Fatalf("seed application: %v", err)
	}

	sentinel := errors.New("stop")
	_ = guow.WithinApplicationTx(ctx, appID, func(r uow.Repos, a *loanDomain.Application) error {
		a.Status = loanDomain.StatusDenied
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		if err := r.Histories.Record(ctx, &histDomain.Entry{
			UserID: a.UserID, ApplicationID: a.ID, Status: histDomain.StatusDenied, ActionDate: time.Now().UTC(),
		}); err != nil {
			return err
		}
		return sentinel
	})

	got, err := appRepo.GetByApplicationID(ctx, appID)
	if err != nil {
		t.Fatalf("GetByApplicationID: %v", err)
	}
	if got.Status != loanDomain.StatusPending {
		t.Fatalf("status = %s, want Pending after rollback", got.Status)
	}
	entries, err := histRepo.ListByApplicationID(ctx, seed.ID)
	if err != nil {
		t.Fatalf("ListByApplicationID: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("history leaked through rollback: %+v", entries)
	}
}

func TestGormUoW_WithinApplicationTx_UnknownApplication(t *testing.T) {
	db := openTestDB(t)
	guow := NewGormUoW(db)

	err := guow.WithinApplicationTx(context.Background(), "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee",
		func(r uow.Repos, a *loanDomain.Application) error { return nil })
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

// Two sequential decision attempts: the second observes the terminal
// status the first committed and must refuse to act on it.
func TestGormUoW_SecondDecisionSeesTerminalStatus(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	appRepo := NewApplicationRepository(db)

	appID := id.NewID32()
	if err := appRepo.Create(ctx, makeApplication(appID, 7)); err != nil {
		t.Fatalf("seed application: %v", err)
	}

	decide := func(to loanDomain.Status) error {
		return guow.WithinApplicationTx(ctx, appID, func(r uow.Repos, a *loanDomain.Application) error {
			if a.Status != loanDomain.StatusPending {
				return loanDomain.ErrAlreadyDecided
			}
			a.Status = to
			return r.Applications.Save(ctx, a)
		})
	}

	if err := decide(loanDomain.StatusApproved); err != nil {
		t.Fatalf("first decision: %v", err)
	}
	if err := decide(loanDomain.StatusDenied); !errors.Is(err, loanDomain.ErrAlreadyDecided) {
		t.Fatalf("second decision: expected ErrAlreadyDecided, got %v", err)
	}

	got, err := appRepo.GetByApplicationID(ctx, appID)
	if err != nil {
		t.Fatalf("GetByApplicationID: %v", err)
	}
	if got.Status != loanDomain.StatusApproved {
		t.Fatalf("status = %s, first decision must stand", got.Status)
	}
}
