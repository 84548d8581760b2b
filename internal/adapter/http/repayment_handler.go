package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"microlend-backend/internal/usecase/repayment"
)

type RepaymentHandler struct{ uc *repayment.Usecase }

func NewRepaymentHandler(uc *repayment.Usecase) *RepaymentHandler {
	return &RepaymentHandler{uc: uc}
}

type createRepaymentReq struct {
	Amount   float64 `json:"amount_paid"      validate:"required,gt=0,dec2"`
	MethodID string  `json:"method_id"        validate:"required,hex32"`
}

func (h *RepaymentHandler) Create(c echo.Context) error {
	applicationID := c.Param("application_id")
	if applicationID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing application_id path param"})
	}
	var req createRepaymentReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.ApplyPayment(c.Request().Context(), applicationID, req.Amount, req.MethodID)
	if err != nil {
		return errResponse(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *RepaymentHandler) List(c echo.Context) error {
	applicationID := c.Param("application_id")
	if applicationID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing application_id path param"})
	}
	out, err := h.uc.List(c.Request().Context(), applicationID)
	if err != nil {
		return errResponse(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Overdue lists unpaid schedule entries as of now, or as of the
// optional `as_of` query param (YYYY-MM-DD).
func (h *RepaymentHandler) Overdue(c echo.Context) error {
	applicationID := c.Param("application_id")
	if applicationID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing application_id path param"})
	}
	asOf := time.Now().UTC()
	if raw := c.QueryParam("as_of"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "as_of must be YYYY-MM-DD"})
		}
		asOf = t
	}
	out, err := h.uc.Overdue(c.Request().Context(), applicationID, asOf)
	if err != nil {
		return errResponse(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type quoteReq struct {
	LoanTypeID string  `json:"loan_type_id" validate:"required,hex32"`
	Amount     float64 `json:"amount"       validate:"required,gt=0,dec2"`
}

func (h *RepaymentHandler) Quote(c echo.Context) error {
	var req quoteReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Quote(c.Request().Context(), req.LoanTypeID, req.Amount)
	if err != nil {
		return errResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
