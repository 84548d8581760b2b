package loan

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("loan application not found")
	ErrTypeNotFound      = errors.New("loan type not found")
	ErrInvalidTransition = errors.New("invalid application status transition")
	ErrAlreadyDecided    = errors.New("application already decided")
	ErrAmountOutOfRange  = errors.New("requested amount outside loan type bounds")
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusDenied   Status = "Denied"
)

// Terminal reports whether no further approve/deny transition is defined
// from s. Pending is the only non-terminal status.
func (s Status) Terminal() bool { return s != StatusPending }

// LoanType is immutable catalog data: one row per product.
type LoanType struct {
	ID           uint64         `gorm:"primaryKey;column:id" json:"-"`
	TypeID       string         `gorm:"column:type_id;type:char(32);uniqueIndex:ux_loan_types_type_id" json:"type_id"`
	Name         string         `gorm:"column:name;size:100" json:"name"`
	Description  string         `gorm:"column:description;type:text" json:"description"`
	InterestRate float64        `gorm:"column:interest_rate;type:decimal(5,2)" json:"interest_rate"`
	MinAmount    float64        `gorm:"column:min_amount;type:decimal(10,2)" json:"min_amount"`
	MaxAmount    float64        `gorm:"column:max_amount;type:decimal(10,2)" json:"max_amount"`
	TermMonths   int            `gorm:"column:term_months" json:"term_months"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (LoanType) TableName() string { return "loan_types" }

// InterestRate is a time-bounded rate window overriding the LoanType base
// rate for applications submitted inside [ValidFrom, ValidTo).
type InterestRate struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"-"`
	LoanTypeID uint64    `gorm:"column:loan_type_id;not null;index" json:"-"`
	Rate       float64   `gorm:"column:rate;type:decimal(5,2)" json:"rate"`
	ValidFrom  time.Time `gorm:"column:valid_from" json:"valid_from"`
	ValidTo    time.Time `gorm:"column:valid_to" json:"valid_to"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (InterestRate) TableName() string { return "loan_interest_rates" }

// Installment is one scheduled repayment. The full schedule is stored on
// the application as JSON.
type Installment struct {
	Sequence int       `json:"sequence"`
	DueDate  time.Time `json:"due_date"`
	Amount   float64   `json:"amount"`
}

type Application struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	ApplicationID string `gorm:"column:application_id;type:char(32);uniqueIndex:ux_applications_application_id" json:"application_id"`
	UserID        uint64 `gorm:"column:user_id;not null;index:idx_applications_user" json:"-"`
	LoanTypeID    uint64 `gorm:"column:loan_type_id;not null;index" json:"-"`

	AmountRequested float64  `gorm:"column:amount_requested;type:decimal(10,2)" json:"amount_requested"`
	AmountApproved  *float64 `gorm:"column:amount_approved;type:decimal(10,2)" json:"amount_approved,omitempty"`
	// Effective annual rate resolved at submission time from the
	// interest-rate windows (falls back to the LoanType base rate).
	InterestRate float64 `gorm:"column:interest_rate;type:decimal(5,2)" json:"interest_rate"`

	Status          Status     `gorm:"column:status;type:enum('Pending','Approved','Denied');default:'Pending'" json:"status"`
	ApplicationDate time.Time  `gorm:"column:application_date;autoCreateTime" json:"application_date"`
	ApprovalDate    *time.Time `gorm:"column:approval_date" json:"approval_date,omitempty"`

	RepaymentSchedule []Installment `gorm:"column:repayment_schedule;serializer:json" json:"repayment_schedule,omitempty"`

	// Optional link to pledged collateral (secured loans).
	CollateralID *uint64 `gorm:"column:collateral_id" json:"-"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Application) TableName() string { return "loan_applications" }
