package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"microlend-backend/internal/usecase/user"
)

type UserHandler struct{ uc *user.Usecase }

func NewUserHandler(uc *user.Usecase) *UserHandler { return &UserHandler{uc: uc} }

type registerUserReq struct {
	PhoneNumber string  `json:"phone_number" validate:"required,phone"`
	PIN         string  `json:"pin"          validate:"required,min=4"`
	Password    *string `json:"password,omitempty"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	FullName    string  `json:"full_name"    validate:"required"`
	Country     string  `json:"country"`
	Location    string  `json:"location"`
	Occupation  string  `json:"occupation"`
	DateOfBirth string  `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender      string  `json:"gender"`
	IDType      string  `json:"id_type"`
	IDNumber    string  `json:"id_number"    validate:"required"`
	BranchCode  string  `json:"branch_code"`
	NOKName     string  `json:"nok_name"`
	NOKPhone    string  `json:"nok_phone"    validate:"omitempty,phone"`
	NOKLocation string  `json:"nok_location"`
}

func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	in := user.RegisterInput{
		PhoneNumber: req.PhoneNumber,
		PIN:         req.PIN,
		Password:    req.Password,
		Email:       req.Email,
		FullName:    req.FullName,
		Country:     req.Country,
		Location:    req.Location,
		Occupation:  req.Occupation,
		Gender:      req.Gender,
		IDType:      req.IDType,
		IDNumber:    req.IDNumber,
		BranchCode:  req.BranchCode,
		NOKName:     req.NOKName,
		NOKPhone:    req.NOKPhone,
		NOKLocation: req.NOKLocation,
	}
	if req.DateOfBirth != "" {
		dob, _ := time.Parse("2006-01-02", req.DateOfBirth)
		in.DateOfBirth = &dob
	}

	dto, err := h.uc.Register(c.Request().Context(), in)
	if err != nil {
		return errResponse(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *UserHandler) Get(c echo.Context) error {
	userID := c.Param("user_id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing user_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), userID)
	if err != nil {
		return errResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type loginReq struct {
	PhoneNumber string `json:"phone_number" validate:"required,phone"`
	PIN         string `json:"pin"          validate:"required,min=4"`
}

// Login is phone+PIN verification. No session is issued here; callers
// sit behind the gateway that owns tokens.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.VerifyPIN(c.Request().Context(), req.PhoneNumber, req.PIN)
	if err != nil {
		return errResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
