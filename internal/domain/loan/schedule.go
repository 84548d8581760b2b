package loan

import (
	"math"
	"time"
)

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// BuildSchedule splits an approved principal into equal monthly
// installments, one per month starting a month after `from`. Amounts are
// rounded to 2 decimals; the last installment absorbs the rounding drift
// so the schedule always sums to exactly the principal.
func BuildSchedule(principal float64, termMonths int, from time.Time) []Installment {
	if termMonths <= 0 || principal <= 0 {
		return nil
	}
	per := round2(principal / float64(termMonths))
	out := make([]Installment, 0, termMonths)
	remaining := principal
	for i := 1; i <= termMonths; i++ {
		amt := per
		if i == termMonths {
			amt = round2(remaining)
		}
		out = append(out, Installment{
			Sequence: i,
			DueDate:  from.AddDate(0, i, 0),
			Amount:   amt,
		})
		remaining = round2(remaining - amt)
	}
	return out
}
