package http

import (
	"errors"
	nethttp "net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"microlend-backend/internal/domain/collateral"
	"microlend-backend/internal/domain/loan"
	"microlend-backend/internal/domain/repayment"
	"microlend-backend/internal/domain/user"
	appuc "microlend-backend/internal/usecase/application"
	useruc "microlend-backend/internal/usecase/user"
)

// bindAndValidate decodes the body and runs struct validation, writing
// the error response itself. Callers stop when ok is false.
func bindAndValidate(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(nethttp.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(nethttp.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}

// errResponse maps domain and usecase errors onto HTTP status codes.
func errResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, user.ErrNotFound),
		errors.Is(err, loan.ErrNotFound),
		errors.Is(err, loan.ErrTypeNotFound),
		errors.Is(err, collateral.ErrNotFound),
		errors.Is(err, repayment.ErrNotFound),
		errors.Is(err, repayment.ErrMethodNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(nethttp.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loan.ErrAlreadyDecided),
		errors.Is(err, loan.ErrInvalidTransition),
		errors.Is(err, collateral.ErrInvalidTransition),
		errors.Is(err, repayment.ErrNotApproved),
		errors.Is(err, repayment.ErrOverpayment):
		return c.JSON(nethttp.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, appuc.ErrInvalidInput),
		errors.Is(err, useruc.ErrInvalidInput),
		errors.Is(err, loan.ErrAmountOutOfRange),
		errors.Is(err, repayment.ErrInvalidAmount):
		return c.JSON(nethttp.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, useruc.ErrInvalidCredentials):
		return c.JSON(nethttp.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(nethttp.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
