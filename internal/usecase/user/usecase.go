package user

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	domain "microlend-backend/internal/domain/user"
	"microlend-backend/pkg/id"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")

	rePhone = regexp.MustCompile(`^\+?\d{9,15}$`)
)

type RegisterInput struct {
	PhoneNumber string     `json:"phone_number"`
	PIN         string     `json:"pin"`
	Password    *string    `json:"password,omitempty"`
	Email       *string    `json:"email,omitempty"`
	FullName    string     `json:"full_name"`
	Country     string     `json:"country"`
	Location    string     `json:"location"`
	Occupation  string     `json:"occupation"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Gender      string     `json:"gender"`
	IDType      string     `json:"id_type"`
	IDNumber    string     `json:"id_number"`
	BranchCode  string     `json:"branch_code"`
	NOKName     string     `json:"nok_name"`
	NOKPhone    string     `json:"nok_phone"`
	NOKLocation string     `json:"nok_location"`
}

type UserDTO struct {
	UserID      string    `json:"user_id"`
	PhoneNumber string    `json:"phone_number"`
	Email       *string   `json:"email,omitempty"`
	FullName    string    `json:"full_name"`
	BranchCode  string    `json:"branch_code"`
	CreatedAt   time.Time `json:"created_at"`
}

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

// Register onboards a customer. The PIN is the primary credential and is
// stored bcrypt-hashed, never in the clear; a password is optional.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*UserDTO, error) {
	if !rePhone.MatchString(in.PhoneNumber) {
		return nil, fmt.Errorf("%w: phone number must be between 9 and 15 digits", ErrInvalidInput)
	}
	if len(in.PIN) < 4 {
		return nil, fmt.Errorf("%w: pin must be at least 4 digits", ErrInvalidInput)
	}
	if in.IDNumber == "" {
		return nil, fmt.Errorf("%w: id number is required", ErrInvalidInput)
	}
	if in.IDType != "" && !domain.ValidIDType(in.IDType) {
		return nil, fmt.Errorf("%w: unknown id type %q", ErrInvalidInput, in.IDType)
	}

	// Unique phone is enforced by the schema too; checking first gives a
	// friendlier error than a duplicate-key failure.
	if _, err := u.repo.GetByPhone(ctx, in.PhoneNumber); err == nil {
		return nil, fmt.Errorf("%w: phone number already registered", ErrInvalidInput)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pinHash, err := bcrypt.GenerateFromPassword([]byte(in.PIN), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usr := &domain.User{
		UserID:      id.NewNumericID(),
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
		PINHash:     string(pinHash),
		FullName:    in.FullName,
		Country:     in.Country,
		Location:    in.Location,
		Occupation:  in.Occupation,
		DateOfBirth: in.DateOfBirth,
		Gender:      in.Gender,
		IDType:      in.IDType,
		IDNumber:    in.IDNumber,
		BranchCode:  in.BranchCode,
		NOKName:     in.NOKName,
		NOKPhone:    in.NOKPhone,
		NOKLocation: in.NOKLocation,
		IsActive:    true,
		IsCustomer:  true,
		AllowSMS:    true,
	}
	if in.Password != nil && *in.Password != "" {
		pwHash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		s := string(pwHash)
		usr.PasswordHash = &s
	}

	if err := u.repo.Create(ctx, usr); err != nil {
		return nil, err
	}

	return toDTO(usr), nil
}

// VerifyPIN checks a raw PIN against the stored hash for phone+pin login.
func (u *Usecase) VerifyPIN(ctx context.Context, phone, pin string) (*UserDTO, error) {
	usr, err := u.repo.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(usr.PINHash), []byte(pin)) != nil {
		return nil, ErrInvalidCredentials
	}
	return toDTO(usr), nil
}

func (u *Usecase) Get(ctx context.Context, userID string) (*UserDTO, error) {
	usr, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(usr), nil
}

func toDTO(usr *domain.User) *UserDTO {
	return &UserDTO{
		UserID:      usr.UserID,
		PhoneNumber: usr.PhoneNumber,
		Email:       usr.Email,
		FullName:    usr.FullName,
		BranchCode:  usr.BranchCode,
		CreatedAt:   usr.CreatedAt,
	}
}
