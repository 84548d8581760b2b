package repayment

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("repayment not found")
	ErrMethodNotFound = errors.New("repayment method not found")
	ErrNotApproved    = errors.New("application is not approved")
	ErrOverpayment    = errors.New("payment exceeds remaining balance")
	ErrInvalidAmount  = errors.New("payment amount must be positive")
)

// Method is catalog reference data (cash, mobile money, ...).
type Method struct {
	ID          uint64         `gorm:"primaryKey;column:id" json:"-"`
	MethodID    string         `gorm:"column:method_id;type:char(32);uniqueIndex:ux_repayment_methods_method_id" json:"method_id"`
	Name        string         `gorm:"column:name;size:100" json:"name"`
	Description string         `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Method) TableName() string { return "repayment_methods" }

// Repayment is one payment event against an approved application.
// RemainingBalance is the running balance after this payment applied;
// it never increases across an application's ordered repayments.
type Repayment struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	RepaymentID   string `gorm:"column:repayment_id;type:char(32);uniqueIndex:ux_repayments_repayment_id" json:"repayment_id"`
	ApplicationID uint64 `gorm:"column:application_id;not null;index:idx_repayments_application" json:"-"`
	MethodID      uint64 `gorm:"column:method_id;not null" json:"-"`

	AmountPaid       float64   `gorm:"column:amount_paid;type:decimal(10,2)" json:"amount_paid"`
	PaymentDate      time.Time `gorm:"column:payment_date;autoCreateTime" json:"payment_date"`
	RemainingBalance float64   `gorm:"column:remaining_balance;type:decimal(10,2)" json:"remaining_balance"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Repayment) TableName() string { return "loan_repayments" }
