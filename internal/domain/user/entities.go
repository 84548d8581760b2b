package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("user not found")

// Accepted identity document types (KYC).
const (
	IDTypeDriverLicense = "Driver License"
	IDTypePassport      = "Passport"
	IDTypeGhanaCard     = "Ghana Card"
	IDTypeVoterID       = "Voter ID"
	IDTypeNHIS          = "NHIS ID"
)

func ValidIDType(t string) bool {
	switch t {
	case IDTypeDriverLicense, IDTypePassport, IDTypeGhanaCard, IDTypeVoterID, IDTypeNHIS:
		return true
	}
	return false
}

type User struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (10-digit numeric)
	UserID      string  `gorm:"column:user_id;size:10;uniqueIndex:ux_users_user_id" json:"user_id"`
	PhoneNumber string  `gorm:"column:phone_number;size:15;uniqueIndex:ux_users_phone" json:"phone_number"`
	Email       *string `gorm:"column:email;size:255;uniqueIndex:ux_users_email" json:"email,omitempty"`
	// Bcrypt hashes. PIN is the primary credential (phone+pin login);
	// password is optional.
	PINHash      string  `gorm:"column:pin_hash;size:128" json:"-"`
	PasswordHash *string `gorm:"column:password_hash;size:128" json:"-"`

	FullName   string `gorm:"column:full_name;size:150" json:"full_name"`
	Country    string `gorm:"column:country;size:100" json:"country"`
	Location   string `gorm:"column:location;size:255" json:"location"`
	Occupation string `gorm:"column:occupation;size:255" json:"occupation"`

	// KYC
	DateOfBirth *time.Time `gorm:"column:date_of_birth;type:date" json:"date_of_birth,omitempty"`
	Gender      string     `gorm:"column:gender;size:10" json:"gender"`
	IDType      string     `gorm:"column:id_type;size:200" json:"id_type"`
	IDNumber    string     `gorm:"column:id_number;size:50;uniqueIndex:ux_users_id_number" json:"id_number"`

	// Branch is a plain foreign attribute; branch management lives elsewhere.
	BranchCode string `gorm:"column:branch_code;size:100;index" json:"branch_code"`

	// Next of kin
	NOKName     string `gorm:"column:nok_name;size:150" json:"nok_name"`
	NOKPhone    string `gorm:"column:nok_phone;size:150" json:"nok_phone"`
	NOKLocation string `gorm:"column:nok_location;size:150" json:"nok_location"`

	IsActive   bool `gorm:"column:is_active;default:true" json:"is_active"`
	IsWorker   bool `gorm:"column:is_worker;default:false" json:"is_worker"`
	IsCustomer bool `gorm:"column:is_customer;default:true" json:"is_customer"`
	AllowSMS   bool `gorm:"column:allow_sms;default:true" json:"allow_sms"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (User) TableName() string { return "users" }
