// Package interest holds the pure interest and amortization computations.
// Nothing here touches the store; callers pass values in and get values back.
package interest

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is a compounding frequency
type Frequency string

const (
	Daily   Frequency = "Daily"
	Monthly Frequency = "Monthly"
)

// periodsPerYear returns the number of compounding periods per year
func (f Frequency) periodsPerYear() int {
	if f == Daily {
		return 365
	}
	return 12
}

// daysPerYear uses a fixed 365-day year; leap years are ignored.
const daysPerYear = 365.0

// dueDateStep is the fixed gap between installments. Due dates advance by
// 30 days per installment rather than by calendar month.
const dueDateStep = 30 * 24 * time.Hour

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// CompoundAccrual returns the compounded value of principal between from and
// to. A rate of zero or less yields the principal unchanged, exactly.
func CompoundAccrual(principal, annualRatePct decimal.Decimal, from, to time.Time, freq Frequency) decimal.Decimal {
	if annualRatePct.Sign() <= 0 || !to.After(from) {
		return principal
	}

	n := float64(freq.periodsPerYear())
	days := to.Sub(from).Hours() / 24.0
	t := days / daysPerYear

	p, _ := principal.Float64()
	r, _ := annualRatePct.Float64()

	accrued := p * math.Pow(1+(r/100)/n, n*t)
	return decimal.NewFromFloat(accrued).Round(2)
}

// AccruedInterest returns the interest earned on principal between from and
// to, i.e. the compounded value minus the principal.
func AccruedInterest(principal, annualRatePct decimal.Decimal, from, to time.Time, freq Frequency) decimal.Decimal {
	return CompoundAccrual(principal, annualRatePct, from, to, freq).Sub(principal)
}

// DepositAccrual is one deposit's contribution to a member's accrued total
type DepositAccrual struct {
	Principal decimal.Decimal
	Interest  decimal.Decimal
}

// AccrueDeposits compounds each deposit independently from its own date and
// sums the results. Deposits are never pooled before compounding.
func AccrueDeposits(deposits []DepositAccrualInput, asOf time.Time, freq Frequency) DepositAccrual {
	var total DepositAccrual
	for _, d := range deposits {
		total.Principal = total.Principal.Add(d.Principal)
		total.Interest = total.Interest.Add(AccruedInterest(d.Principal, d.AnnualRatePct, d.Date, asOf, freq))
	}
	return total
}

// DepositAccrualInput is one deposit fed into AccrueDeposits
type DepositAccrualInput struct {
	Principal     decimal.Decimal
	AnnualRatePct decimal.Decimal
	Date          time.Time
}

// Installment is one row of an amortization schedule
type Installment struct {
	Number    int             `json:"number"`
	DueDate   time.Time       `json:"due_date"`
	Payment   decimal.Decimal `json:"payment"`
	Interest  decimal.Decimal `json:"interest"`
	Principal decimal.Decimal `json:"principal"`
	Balance   decimal.Decimal `json:"balance"`
}

// Schedule produces a level-payment amortization schedule of months
// installments. The payment is rounded up to the cent so the declining
// balance reaches exactly zero on the final installment; the zero floor
// absorbs the sub-cent overshoot. Returns nil when months < 1.
func Schedule(principal, annualRatePct decimal.Decimal, months int, start time.Time) []Installment {
	if months < 1 {
		return nil
	}

	m := decimal.NewFromInt(int64(months))
	monthlyRate := annualRatePct.Div(hundred).Div(decimal.NewFromInt(12))

	var payment decimal.Decimal
	if monthlyRate.Sign() == 0 {
		payment = principal.Div(m).RoundCeil(2)
	} else {
		growth := one.Add(monthlyRate).Pow(m)
		payment = principal.Mul(monthlyRate).Mul(growth).Div(growth.Sub(one)).RoundCeil(2)
	}

	schedule := make([]Installment, 0, months)
	balance := principal
	due := start

	for k := 1; k <= months; k++ {
		due = due.Add(dueDateStep)

		interestPortion := balance.Mul(monthlyRate).Round(2)
		principalPortion := payment.Sub(interestPortion)

		balance = balance.Sub(principalPortion)
		if balance.Sign() < 0 {
			balance = decimal.Zero
		}

		schedule = append(schedule, Installment{
			Number:    k,
			DueDate:   due,
			Payment:   payment,
			Interest:  interestPortion,
			Principal: principalPortion,
			Balance:   balance,
		})
	}

	return schedule
}

// OutstandingBalance derives the balance still owed as of a date from a
// schedule: the post-payment balance of the last installment due on or
// before asOf, or the original principal when no installment is due yet.
func OutstandingBalance(principal decimal.Decimal, schedule []Installment, asOf time.Time) decimal.Decimal {
	outstanding := principal
	for _, inst := range schedule {
		if inst.DueDate.After(asOf) {
			break
		}
		outstanding = inst.Balance
	}
	return outstanding
}

// FlatRateTotal applies the single-period flat markup used at loan creation:
// total = principal * (1 + rate/100), installment = total / months. These are
// the values persisted on the loan row. The amortization Schedule above is a
// separate view and the two are intentionally never reconciled; stored
// totals depend on this formula.
func FlatRateTotal(principal, annualRatePct decimal.Decimal, months int) (total, monthly decimal.Decimal) {
	total = principal.Mul(one.Add(annualRatePct.Div(hundred))).Round(2)
	if months < 1 {
		return total, total
	}
	monthly = total.DivRound(decimal.NewFromInt(int64(months)), 2)
	return total, monthly
}
