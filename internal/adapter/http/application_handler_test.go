package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"microlend-backend/internal/domain/loan"
	domainUw "microlend-backend/internal/domain/underwriting"
	"microlend-backend/internal/domain/uow"
	domainUser "microlend-backend/internal/domain/user"
	"microlend-backend/internal/testutil/repomock"
	"microlend-backend/internal/testutil/uowmock"
	"microlend-backend/internal/testutil/usermock"
	ucApplication "microlend-backend/internal/usecase/application"
	ucUnderwriting "microlend-backend/internal/usecase/underwriting"
)

func newApplicationHandler(users *usermock.Repo, repos uow.Repos) *ApplicationHandler {
	uc := ucApplication.NewUsecase(users, uowmock.Static(repos), ucUnderwriting.NewEvaluator(ucUnderwriting.DefaultPolicy()))
	return NewApplicationHandler(uc)
}

func TestSubmitApplication_Success(t *testing.T) {
	e := newEchoWithValidator()

	users := &usermock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*domainUser.User, error) {
			return &domainUser.User{ID: 7, UserID: userID}, nil
		},
	}
	typeID := strings.Repeat("b", 32)
	repos := uow.Repos{
		Applications: &repomock.AppRepo{},
		LoanTypes: &repomock.TypeRepo{
			GetByTypeIDFn: func(ctx context.Context, id string) (*loan.LoanType, error) {
				return &loan.LoanType{ID: 3, TypeID: id, MinAmount: 100, MaxAmount: 10000, TermMonths: 12, InterestRate: 15}, nil
			},
			EffectiveRateFn: func(ctx context.Context, loanTypeID uint64, at time.Time) (float64, error) {
				return 15, nil
			},
		},
		Underwritings: &repomock.UnderwritingRepo{},
		Histories:     &repomock.HistoryRecorder{},
	}
	h := newApplicationHandler(users, repos)

	score := 700
	body := map[string]any{
		"user_id":          "1234567890",
		"loan_type_id":     typeID,
		"amount_requested": 2500.00,
		"underwriting": map[string]any{
			"credit_score": score,
			"income":       3000.00,
		},
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/applications", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201 (body=%s)", rec.Code, rec.Body.String())
	}

	var dto ucApplication.ApplicationDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if dto.Status != string(loan.StatusPending) {
		t.Fatalf("status = %s, want Pending", dto.Status)
	}
	if len(dto.ApplicationID) != 32 {
		t.Fatalf("application_id = %q, want 32-char id", dto.ApplicationID)
	}
	if dto.InterestRate != 15 {
		t.Fatalf("interest_rate = %v, want effective rate 15", dto.InterestRate)
	}
}

func TestSubmitApplication_ValidationFailure(t *testing.T) {
	e := newEchoWithValidator()
	h := newApplicationHandler(&usermock.Repo{}, uow.Repos{})

	body := map[string]any{
		"user_id":          "not-a-user-id",
		"loan_type_id":     "short",
		"amount_requested": -5,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/applications", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if !containsFieldMsg(er.Details, "UserID", "10-digit") {
		t.Fatalf("expected num10 detail, got %+v", er.Details)
	}
	if !containsFieldMsg(er.Details, "LoanTypeID", "32-char lowercase hex") {
		t.Fatalf("expected hex32 detail, got %+v", er.Details)
	}
}

func TestSubmitApplication_AmountOutOfRange(t *testing.T) {
	e := newEchoWithValidator()

	users := &usermock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*domainUser.User, error) {
			return &domainUser.User{ID: 7, UserID: userID}, nil
		},
	}
	repos := uow.Repos{
		Applications: &repomock.AppRepo{},
		LoanTypes: &repomock.TypeRepo{
			GetByTypeIDFn: func(ctx context.Context, id string) (*loan.LoanType, error) {
				return &loan.LoanType{ID: 3, TypeID: id, MinAmount: 100, MaxAmount: 1000}, nil
			},
		},
	}
	h := newApplicationHandler(users, repos)

	body := map[string]any{
		"user_id":          "1234567890",
		"loan_type_id":     strings.Repeat("b", 32),
		"amount_requested": 5000.00,
		"underwriting":     map[string]any{"income": 3000.00},
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/applications", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body=%s)", rec.Code, rec.Body.String())
	}
}

func TestApproveApplication_Success(t *testing.T) {
	e := newEchoWithValidator()

	appID := strings.Repeat("c", 32)
	var saved *loan.Application
	repos := uow.Repos{
		Applications: &repomock.AppRepo{
			GetByApplicationIDForUpdateFn: func(ctx context.Context, id string) (*loan.Application, error) {
				return &loan.Application{ID: 11, ApplicationID: id, UserID: 7, LoanTypeID: 3, Status: loan.StatusPending}, nil
			},
			SaveFn: func(ctx context.Context, a *loan.Application) error { saved = a; return nil },
		},
		LoanTypes: &repomock.TypeRepo{
			GetByIDFn: func(ctx context.Context, id uint64) (*loan.LoanType, error) {
				return &loan.LoanType{ID: id, TypeID: strings.Repeat("b", 32), TermMonths: 12}, nil
			},
		},
		Histories: &repomock.HistoryRecorder{},
	}
	h := newApplicationHandler(&usermock.Repo{}, repos)

	req := httptest.NewRequest(stdhttp.MethodPost, "/applications/"+appID+"/approve", mustJSON(map[string]any{"amount_approved": 2000.00}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("application_id")
	c.SetParamValues(appID)

	if err := h.Approve(c); err != nil {
		t.Fatalf("Approve error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200 (body=%s)", rec.Code, rec.Body.String())
	}
	if saved == nil || saved.Status != loan.StatusApproved {
		t.Fatalf("application not saved as Approved: %+v", saved)
	}
	if len(saved.RepaymentSchedule) != 12 {
		t.Fatalf("schedule length = %d, want 12", len(saved.RepaymentSchedule))
	}
}

func TestApproveApplication_AlreadyDecidedConflict(t *testing.T) {
	e := newEchoWithValidator()

	appID := strings.Repeat("c", 32)
	repos := uow.Repos{
		Applications: &repomock.AppRepo{
			GetByApplicationIDForUpdateFn: func(ctx context.Context, id string) (*loan.Application, error) {
				return &loan.Application{ID: 11, ApplicationID: id, Status: loan.StatusDenied}, nil
			},
		},
	}
	h := newApplicationHandler(&usermock.Repo{}, repos)

	req := httptest.NewRequest(stdhttp.MethodPost, "/applications/"+appID+"/approve", mustJSON(map[string]any{"amount_approved": 2000.00}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("application_id")
	c.SetParamValues(appID)

	if err := h.Approve(c); err != nil {
		t.Fatalf("Approve error: %v", err)
	}
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestEvaluateApplication_DeniedLowScore(t *testing.T) {
	e := newEchoWithValidator()

	appID := strings.Repeat("d", 32)
	score := 500
	repos := uow.Repos{
		Applications: &repomock.AppRepo{
			GetByApplicationIDForUpdateFn: func(ctx context.Context, id string) (*loan.Application, error) {
				return &loan.Application{ID: 11, ApplicationID: id, UserID: 7, AmountRequested: 2000, Status: loan.StatusPending}, nil
			},
		},
		Underwritings: &repomock.UnderwritingRepo{
			GetByApplicationIDFn: func(ctx context.Context, applicationID uint64) (*domainUw.Underwriting, error) {
				return &domainUw.Underwriting{ApplicationID: applicationID, CreditScore: &score, Income: 3000}, nil
			},
		},
		Histories: &repomock.HistoryRecorder{},
	}
	h := newApplicationHandler(&usermock.Repo{}, repos)

	req := httptest.NewRequest(stdhttp.MethodPost, "/applications/"+appID+"/evaluate", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("application_id")
	c.SetParamValues(appID)

	if err := h.Evaluate(c); err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200 (body=%s)", rec.Code, rec.Body.String())
	}
	var dto ucApplication.DecisionDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if dto.Approved {
		t.Fatal("expected denial for credit score 500")
	}
}

func TestGetApplication_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	h := newApplicationHandler(&usermock.Repo{}, uow.Repos{Applications: &repomock.AppRepo{}})

	appID := strings.Repeat("e", 32)
	req := httptest.NewRequest(stdhttp.MethodGet, "/applications/"+appID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("application_id")
	c.SetParamValues(appID)

	if err := h.Get(c); err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
