package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"microlend-backend/internal/domain/loan"
)

// LoanTypeHandler serves the product catalog. It reads through the
// repository directly — the catalog has no business rules of its own.
type LoanTypeHandler struct{ types loan.TypeRepository }

func NewLoanTypeHandler(types loan.TypeRepository) *LoanTypeHandler {
	return &LoanTypeHandler{types: types}
}

type loanTypeDTO struct {
	TypeID       string  `json:"type_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	InterestRate float64 `json:"interest_rate"`
	MinAmount    float64 `json:"min_amount"`
	MaxAmount    float64 `json:"max_amount"`
	TermMonths   int     `json:"term_months"`
}

func (h *LoanTypeHandler) List(c echo.Context) error {
	types, err := h.types.List(c.Request().Context())
	if err != nil {
		return errResponse(c, err)
	}

	now := time.Now().UTC()
	out := make([]loanTypeDTO, 0, len(types))
	for _, lt := range types {
		rate, err := h.types.EffectiveRate(c.Request().Context(), lt.ID, now)
		if err != nil {
			return errResponse(c, err)
		}
		out = append(out, loanTypeDTO{
			TypeID:       lt.TypeID,
			Name:         lt.Name,
			Description:  lt.Description,
			InterestRate: rate,
			MinAmount:    lt.MinAmount,
			MaxAmount:    lt.MaxAmount,
			TermMonths:   lt.TermMonths,
		})
	}
	return c.JSON(http.StatusOK, out)
}
