package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM columns) ---

type applicationSQLite struct {
	ID                uint64         `gorm:"primaryKey;column:id"`
	ApplicationID     string         `gorm:"size:32;column:application_id"`
	UserID            uint64         `gorm:"column:user_id"`
	LoanTypeID        uint64         `gorm:"column:loan_type_id"`
	AmountRequested   float64        `gorm:"column:amount_requested"`
	AmountApproved    *float64       `gorm:"column:amount_approved"`
	InterestRate      float64        `gorm:"column:interest_rate"`
	Status            string         `gorm:"type:text;column:status"` // ← no enum
	ApplicationDate   time.Time      `gorm:"column:application_date"`
	ApprovalDate      *time.Time     `gorm:"column:approval_date"`
	RepaymentSchedule string         `gorm:"type:text;column:repayment_schedule"`
	CollateralID      *uint64        `gorm:"column:collateral_id"`
	CreatedAt         time.Time      `gorm:"column:created_at"`
	UpdatedAt         time.Time      `gorm:"column:updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (applicationSQLite) TableName() string { return "loan_applications" }

type loanTypeSQLite struct {
	ID           uint64         `gorm:"primaryKey;column:id"`
	TypeID       string         `gorm:"size:32;column:type_id"`
	Name         string         `gorm:"column:name"`
	Description  string         `gorm:"column:description"`
	InterestRate float64        `gorm:"column:interest_rate"`
	MinAmount    float64        `gorm:"column:min_amount"`
	MaxAmount    float64        `gorm:"column:max_amount"`
	TermMonths   int            `gorm:"column:term_months"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (loanTypeSQLite) TableName() string { return "loan_types" }

type interestRateSQLite struct {
	ID         uint64    `gorm:"primaryKey;column:id"`
	LoanTypeID uint64    `gorm:"column:loan_type_id"`
	Rate       float64   `gorm:"column:rate"`
	ValidFrom  time.Time `gorm:"column:valid_from"`
	ValidTo    time.Time `gorm:"column:valid_to"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (interestRateSQLite) TableName() string { return "loan_interest_rates" }

type underwritingSQLite struct {
	ID                uint64    `gorm:"primaryKey;column:id"`
	ApplicationID     uint64    `gorm:"column:application_id"`
	CreditScore       *int      `gorm:"column:credit_score"`
	DebtToIncomeRatio *float64  `gorm:"column:debt_to_income_ratio"`
	Income            float64   `gorm:"column:income"`
	PreviousLoans     int       `gorm:"column:previous_loans"`
	UnderwriterNotes  string    `gorm:"column:underwriter_notes"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (underwritingSQLite) TableName() string { return "loan_underwritings" }

type repaymentSQLite struct {
	ID               uint64    `gorm:"primaryKey;column:id"`
	RepaymentID      string    `gorm:"size:32;column:repayment_id"`
	ApplicationID    uint64    `gorm:"column:application_id"`
	MethodID         uint64    `gorm:"column:method_id"`
	AmountPaid       float64   `gorm:"column:amount_paid"`
	PaymentDate      time.Time `gorm:"column:payment_date"`
	RemainingBalance float64   `gorm:"column:remaining_balance"`
	CreatedAt        time.Time `gorm:"column:created_at"`
}

func (repaymentSQLite) TableName() string { return "loan_repayments" }

type methodSQLite struct {
	ID          uint64         `gorm:"primaryKey;column:id"`
	MethodID    string         `gorm:"size:32;column:method_id"`
	Name        string         `gorm:"column:name"`
	Description string         `gorm:"column:description"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (methodSQLite) TableName() string { return "repayment_methods" }

type collateralSQLite struct {
	ID             uint64         `gorm:"primaryKey;column:id"`
	CollateralID   string         `gorm:"size:32;column:collateral_id"`
	UserID         uint64         `gorm:"column:user_id"`
	ApplicationID  uint64         `gorm:"column:application_id"`
	CollateralType string         `gorm:"column:collateral_type"`
	Value          float64        `gorm:"column:collateral_value"`
	Description    string         `gorm:"column:description"`
	Status         string         `gorm:"type:text;column:status"` // ← no enum
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (collateralSQLite) TableName() string { return "collaterals" }

type historySQLite struct {
	ID            uint64    `gorm:"primaryKey;column:id"`
	UserID        uint64    `gorm:"column:user_id"`
	ApplicationID uint64    `gorm:"column:application_id"`
	Status        string    `gorm:"type:text;column:status"` // ← no enum
	Note          string    `gorm:"column:note"`
	ActionDate    time.Time `gorm:"column:action_date"`
}

func (historySQLite) TableName() string { return "loan_history" }

type userSQLite struct {
	ID           uint64         `gorm:"primaryKey;column:id"`
	UserID       string         `gorm:"size:10;column:user_id"`
	PhoneNumber  string         `gorm:"column:phone_number"`
	Email        *string        `gorm:"column:email"`
	PINHash      string         `gorm:"column:pin_hash"`
	PasswordHash *string        `gorm:"column:password_hash"`
	FullName     string         `gorm:"column:full_name"`
	Country      string         `gorm:"column:country"`
	Location     string         `gorm:"column:location"`
	Occupation   string         `gorm:"column:occupation"`
	DateOfBirth  *time.Time     `gorm:"column:date_of_birth"`
	Gender       string         `gorm:"column:gender"`
	IDType       string         `gorm:"type:text;column:id_type"` // ← no enum
	IDNumber     string         `gorm:"column:id_number"`
	BranchCode   string         `gorm:"column:branch_code"`
	NOKName      string         `gorm:"column:nok_name"`
	NOKPhone     string         `gorm:"column:nok_phone"`
	NOKLocation  string         `gorm:"column:nok_location"`
	IsActive     bool           `gorm:"column:is_active"`
	IsWorker     bool           `gorm:"column:is_worker"`
	IsCustomer   bool           `gorm:"column:is_customer"`
	AllowSMS     bool           `gorm:"column:allow_sms"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (userSQLite) TableName() string { return "users" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&applicationSQLite{},
		&loanTypeSQLite{},
		&interestRateSQLite{},
		&underwritingSQLite{},
		&repaymentSQLite{},
		&methodSQLite{},
		&collateralSQLite{},
		&historySQLite{},
		&userSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
