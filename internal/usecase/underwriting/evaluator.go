package underwriting

import (
	domain "microlend-backend/internal/domain/underwriting"
)

// Reason codes returned with a Decision. Ineligibility is an expected
// outcome, not an error.
type Reason string

const (
	ReasonEligible          Reason = "Eligible"
	ReasonNoUnderwriting    Reason = "NoUnderwritingInfo"
	ReasonCreditScoreLow    Reason = "CreditScoreTooLow"
	ReasonDebtToIncomeHigh  Reason = "DebtToIncomeTooHigh"
	ReasonIncomeLow         Reason = "IncomeTooLow"
	ReasonPriorDenialExists Reason = "PriorDenialExists"
)

// Text returns the human-readable message for a reason, mirroring the
// wording surfaced to customers.
func (r Reason) Text() string {
	switch r {
	case ReasonEligible:
		return "Eligible for a loan."
	case ReasonNoUnderwriting:
		return "No loan underwriting information found."
	case ReasonCreditScoreLow:
		return "Credit score is too low."
	case ReasonDebtToIncomeHigh:
		return "Debt-to-income ratio is too high."
	case ReasonIncomeLow:
		return "Income is too low."
	case ReasonPriorDenialExists:
		return "Previous loans have been denied."
	}
	return string(r)
}

// Policy holds the eligibility thresholds. Values come from config so a
// policy change never needs a redeploy.
type Policy struct {
	MinCreditScore  int
	MaxDebtToIncome float64
	MinIncome       float64
}

// DefaultPolicy matches the legacy thresholds.
func DefaultPolicy() Policy {
	return Policy{MinCreditScore: 600, MaxDebtToIncome: 0.40, MinIncome: 1000}
}

// Snapshot is the point-in-time input to an evaluation: the underwriting
// record (nil if none exists yet), the denial lookback result, and the
// amount the applicant asked for.
type Snapshot struct {
	Underwriting    *domain.Underwriting
	HasPriorDenial  bool
	AmountRequested float64
}

type Decision struct {
	Approved bool
	// Amount to approve; only meaningful when Approved.
	Amount float64
	Reason Reason
}

func deny(r Reason) Decision { return Decision{Approved: false, Reason: r} }

type Evaluator struct{ policy Policy }

func NewEvaluator(p Policy) *Evaluator { return &Evaluator{policy: p} }

// Evaluate runs the eligibility rules in order; the first failing rule
// wins. It never mutates its inputs — the caller applies the Decision.
// A missing credit score or DTI fails its rule outright: absence of a
// signal is not a pass.
func (e *Evaluator) Evaluate(s Snapshot) Decision {
	uw := s.Underwriting
	if uw == nil {
		return deny(ReasonNoUnderwriting)
	}
	if uw.CreditScore == nil || *uw.CreditScore < e.policy.MinCreditScore {
		return deny(ReasonCreditScoreLow)
	}
	if uw.DebtToIncomeRatio == nil || *uw.DebtToIncomeRatio > e.policy.MaxDebtToIncome {
		return deny(ReasonDebtToIncomeHigh)
	}
	if uw.Income < e.policy.MinIncome {
		return deny(ReasonIncomeLow)
	}
	if s.HasPriorDenial {
		return deny(ReasonPriorDenialExists)
	}
	return Decision{Approved: true, Amount: s.AmountRequested, Reason: ReasonEligible}
}
