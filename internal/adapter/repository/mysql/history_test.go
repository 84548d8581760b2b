package mysql

import (
	"context"
	"testing"
	"time"

	histDomain "microlend-backend/internal/domain/history"
)

func TestHistoryRecordAndListByUserID_NewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewHistoryRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	entries := []*histDomain.Entry{
		{UserID: 7, ApplicationID: 11, Status: histDomain.StatusApplied, ActionDate: now.Add(-2 * time.Hour)},
		{UserID: 7, ApplicationID: 11, Status: histDomain.StatusApproved, ActionDate: now.Add(-1 * time.Hour)},
		{UserID: 8, ApplicationID: 12, Status: histDomain.StatusApplied, ActionDate: now},
	}
	for _, e := range entries {
		if err := repo.Record(ctx, e); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := repo.ListByUserID(ctx, 7)
	if err != nil {
		t.Fatalf("ListByUserID: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Status != histDomain.StatusApproved || got[1].Status != histDomain.StatusApplied {
		t.Errorf("not newest first: %s then %s", got[0].Status, got[1].Status)
	}
}

func TestHistoryListByApplicationID(t *testing.T) {
	db := openTestDB(t)
	repo := NewHistoryRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	if err := repo.Record(ctx, &histDomain.Entry{UserID: 7, ApplicationID: 11, Status: histDomain.StatusApplied, ActionDate: now.Add(-time.Hour)}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := repo.Record(ctx, &histDomain.Entry{UserID: 7, ApplicationID: 99, Status: histDomain.StatusApplied, ActionDate: now}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	got, err := repo.ListByApplicationID(ctx, 11)
	if err != nil {
		t.Fatalf("ListByApplicationID: %v", err)
	}
	if len(got) != 1 || got[0].ApplicationID != 11 {
		t.Errorf("unexpected entries: %+v", got)
	}
}

func TestHistoryHasDeniedByUserID(t *testing.T) {
	db := openTestDB(t)
	repo := NewHistoryRepository(db)
	ctx := context.Background()

	denied, err := repo.HasDeniedByUserID(ctx, 7)
	if err != nil {
		t.Fatalf("HasDeniedByUserID: %v", err)
	}
	if denied {
		t.Fatal("expected no denial for empty trail")
	}

	if err := repo.Record(ctx, &histDomain.Entry{UserID: 7, ApplicationID: 11, Status: histDomain.StatusApplied, ActionDate: time.Now().UTC()}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if denied, _ = repo.HasDeniedByUserID(ctx, 7); denied {
		t.Fatal("Applied entry must not count as denial")
	}

	if err := repo.Record(ctx, &histDomain.Entry{UserID: 7, ApplicationID: 11, Status: histDomain.StatusDenied, ActionDate: time.Now().UTC()}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if denied, _ = repo.HasDeniedByUserID(ctx, 7); !denied {
		t.Fatal("expected denial to be found")
	}
	// Another user's trail is unaffected
	if denied, _ = repo.HasDeniedByUserID(ctx, 8); denied {
		t.Fatal("denial leaked across users")
	}
}
