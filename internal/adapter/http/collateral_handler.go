package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"microlend-backend/internal/usecase/collateral"
)

type CollateralHandler struct{ uc *collateral.Usecase }

func NewCollateralHandler(uc *collateral.Usecase) *CollateralHandler {
	return &CollateralHandler{uc: uc}
}

func (h *CollateralHandler) Get(c echo.Context) error {
	collateralID := c.Param("collateral_id")
	if collateralID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing collateral_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), collateralID)
	if err != nil {
		return errResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *CollateralHandler) Verify(c echo.Context) error {
	collateralID := c.Param("collateral_id")
	if collateralID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing collateral_id path param"})
	}
	dto, err := h.uc.Verify(c.Request().Context(), collateralID)
	if err != nil {
		return errResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *CollateralHandler) Release(c echo.Context) error {
	collateralID := c.Param("collateral_id")
	if collateralID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing collateral_id path param"})
	}
	dto, err := h.uc.Release(c.Request().Context(), collateralID)
	if err != nil {
		return errResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
