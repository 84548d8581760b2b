package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"microlend-backend/internal/usecase/application"
)

type ApplicationHandler struct{ uc *application.Usecase }

func NewApplicationHandler(uc *application.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type underwritingReq struct {
	CreditScore       *int     `json:"credit_score"         validate:"omitempty,gte=300,lte=850"`
	DebtToIncomeRatio *float64 `json:"debt_to_income_ratio" validate:"omitempty,ratio"`
	Income            float64  `json:"income"               validate:"gte=0,dec2"`
	PreviousLoans     int      `json:"previous_loans"       validate:"gte=0"`
	UnderwriterNotes  string   `json:"underwriter_notes"`
}

type collateralReq struct {
	CollateralType string  `json:"collateral_type"  validate:"required"`
	Value          float64 `json:"collateral_value" validate:"gt=0,dec2"`
	Description    string  `json:"description"`
}

type submitApplicationReq struct {
	UserID          string          `json:"user_id"          validate:"required,num10"`
	LoanTypeID      string          `json:"loan_type_id"     validate:"required,hex32"`
	AmountRequested float64         `json:"amount_requested" validate:"required,gt=0,dec2"`
	Underwriting    underwritingReq `json:"underwriting"`
	Collateral      *collateralReq  `json:"collateral,omitempty"`
}

func (h *ApplicationHandler) Submit(c echo.Context) error {
	var req submitApplicationReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	in := application.SubmitInput{
		UserID:          req.UserID,
		LoanTypeID:      req.LoanTypeID,
		AmountRequested: req.AmountRequested,
		Underwriting: application.UnderwritingInput{
			CreditScore:       req.Underwriting.CreditScore,
			DebtToIncomeRatio: req.Underwriting.DebtToIncomeRatio,
			Income:            req.Underwriting.Income,
			PreviousLoans:     req.Underwriting.PreviousLoans,
			UnderwriterNotes:  req.Underwriting.UnderwriterNotes,
		},
	}
	if req.Collateral != nil {
		in.Collateral = &application.CollateralInput{
			CollateralType: req.Collateral.CollateralType,
			Value:          req.Collateral.Value,
			Description:    req.Collateral.Description,
		}
	}

	dto, err := h.uc.Submit(c.Request().Context(), in)
	if err != nil {
		return errResponse(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ApplicationHandler) Get(c echo.Context) error {
	applicationID := c.Param("application_id")
	if applicationID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing application_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), applicationID)
	if err != nil {
		return errResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// Evaluate runs the eligibility rules against the application's
// underwriting snapshot and commits the resulting decision.
func (h *ApplicationHandler) Evaluate(c echo.Context) error {
	applicationID := c.Param("application_id")
	if applicationID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing application_id path param"})
	}
	dto, err := h.uc.Decide(c.Request().Context(), applicationID)
	if err != nil {
		return errResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type approveApplicationReq struct {
	Amount float64 `json:"amount_approved" validate:"required,gt=0,dec2"`
}

// Approve is the manual underwriter override of the evaluator.
func (h *ApplicationHandler) Approve(c echo.Context) error {
	applicationID := c.Param("application_id")
	if applicationID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing application_id path param"})
	}
	var req approveApplicationReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Approve(c.Request().Context(), applicationID, req.Amount)
	if err != nil {
		return errResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) Deny(c echo.Context) error {
	applicationID := c.Param("application_id")
	if applicationID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing application_id path param"})
	}
	dto, err := h.uc.Deny(c.Request().Context(), applicationID)
	if err != nil {
		return errResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// Eligibility is read-only: it reports whether the user's latest
// application would pass the rules today, without changing anything.
func (h *ApplicationHandler) Eligibility(c echo.Context) error {
	userID := c.Param("user_id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing user_id path param"})
	}
	dto, err := h.uc.EvaluateEligibility(c.Request().Context(), userID)
	if err != nil {
		return errResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) History(c echo.Context) error {
	userID := c.Param("user_id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing user_id path param"})
	}
	out, err := h.uc.History(c.Request().Context(), userID)
	if err != nil {
		return errResponse(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
