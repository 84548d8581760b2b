package repayment

import "time"

type RepaymentDTO struct {
	RepaymentID      string    `json:"repayment_id"`
	ApplicationID    string    `json:"application_id"`
	AmountPaid       float64   `json:"amount_paid"`
	PaymentDate      time.Time `json:"payment_date"`
	Method           string    `json:"repayment_method"`
	RemainingBalance float64   `json:"remaining_balance"`
}

// OverdueInstallmentDTO is one schedule entry whose due date has passed
// without enough cumulative payment to cover it.
type OverdueInstallmentDTO struct {
	Sequence  int       `json:"sequence"`
	DueDate   time.Time `json:"due_date"`
	Amount    float64   `json:"amount"`
	Shortfall float64   `json:"shortfall"`
	Penalty   float64   `json:"penalty"`
}

type QuoteDTO struct {
	LoanTypeID     string  `json:"loan_type_id"`
	Amount         float64 `json:"amount"`
	InterestRate   float64 `json:"interest_rate"`
	TermMonths     int     `json:"term_months"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayment   float64 `json:"total_payment"`
	TotalInterest  float64 `json:"total_interest"`
}
