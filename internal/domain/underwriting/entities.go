package underwriting

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("underwriting record not found")

// Underwriting is the financial-risk snapshot attached one-to-one to a
// loan application. Credit score and DTI may be absent until the bureau
// pull / underwriter input lands; income is always required.
type Underwriting struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// FK to loan_applications.id; DB uniqueness ensures at most one per application.
	ApplicationID     uint64   `gorm:"column:application_id;not null;uniqueIndex:ux_underwritings_application" json:"-"`
	CreditScore       *int     `gorm:"column:credit_score" json:"credit_score,omitempty"`
	DebtToIncomeRatio *float64 `gorm:"column:debt_to_income_ratio;type:decimal(5,2)" json:"debt_to_income_ratio,omitempty"`
	Income            float64  `gorm:"column:income;type:decimal(15,2)" json:"income"`
	PreviousLoans     int      `gorm:"column:previous_loans;default:0" json:"previous_loans"`
	UnderwriterNotes  string   `gorm:"column:underwriter_notes;type:text" json:"underwriter_notes"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Underwriting) TableName() string { return "loan_underwritings" }
