package application

import (
	"time"

	"microlend-backend/internal/domain/loan"
)

type UnderwritingInput struct {
	CreditScore       *int     `json:"credit_score"`
	DebtToIncomeRatio *float64 `json:"debt_to_income_ratio"`
	Income            float64  `json:"income"`
	PreviousLoans     int      `json:"previous_loans"`
	UnderwriterNotes  string   `json:"underwriter_notes"`
}

type CollateralInput struct {
	CollateralType string  `json:"collateral_type"`
	Value          float64 `json:"collateral_value"`
	Description    string  `json:"description"`
}

type SubmitInput struct {
	UserID          string            `json:"user_id"`
	LoanTypeID      string            `json:"loan_type_id"`
	AmountRequested float64           `json:"amount_requested"`
	Underwriting    UnderwritingInput `json:"underwriting"`
	Collateral      *CollateralInput  `json:"collateral,omitempty"`
}

type ApplicationDTO struct {
	ApplicationID   string             `json:"application_id"`
	UserID          string             `json:"user_id"`
	LoanTypeID      string             `json:"loan_type_id"`
	AmountRequested float64            `json:"amount_requested"`
	AmountApproved  *float64           `json:"amount_approved,omitempty"`
	InterestRate    float64            `json:"interest_rate"`
	Status          string             `json:"status"`
	ApplicationDate time.Time          `json:"application_date"`
	ApprovalDate    *time.Time         `json:"approval_date,omitempty"`
	Schedule        []loan.Installment `json:"repayment_schedule,omitempty"`
}

type EligibilityDTO struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason"`
}

type DecisionDTO struct {
	ApplicationID string   `json:"application_id"`
	Approved      bool     `json:"approved"`
	Amount        *float64 `json:"amount_approved,omitempty"`
	Reason        string   `json:"reason"`
}

type HistoryDTO struct {
	ApplicationID string    `json:"application_id"`
	Status        string    `json:"status"`
	Note          string    `json:"note,omitempty"`
	ActionDate    time.Time `json:"action_date"`
}
