// Package form holds the editable state of the tip screen.
//
// The two fields are stored exactly as typed. Numeric values are derived on
// demand, and text that is empty, malformed or negative counts as zero. Bad
// input is never reported or logged.
package form

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tiptime/tip-calculator/internal/domain"
	money "github.com/tiptime/tip-calculator/pkg/decimal"
)

// Calculator is what the form needs from the tip calculation.
type Calculator interface {
	Calculate(amount, tipPercent decimal.Decimal) string
	Result(amount, tipPercent decimal.Decimal) domain.TipResult
}

// State owns the bill amount and tip percentage texts of one screen.
// It is not safe for concurrent use; the UI loop is its only writer.
type State struct {
	billAmountText string
	tipPercentText string
	calc           Calculator
}

// NewState returns an empty form that derives tips through calc.
func NewState(calc Calculator) *State {
	return &State{calc: calc}
}

// SetBillAmountText stores text verbatim.
func (s *State) SetBillAmountText(text string) { s.billAmountText = text }

// SetTipPercentText stores text verbatim.
func (s *State) SetTipPercentText(text string) { s.tipPercentText = text }

func (s *State) BillAmountText() string { return s.billAmountText }
func (s *State) TipPercentText() string { return s.tipPercentText }

// Reset clears both fields.
func (s *State) Reset() {
	s.billAmountText = ""
	s.tipPercentText = ""
}

// Amount is the bill amount derived from the current text.
func (s *State) Amount() decimal.Decimal { return ParseNonNegative(s.billAmountText) }

// TipPercent is the tip percentage derived from the current text. There is
// no default percentage: an empty field means 0%.
func (s *State) TipPercent() decimal.Decimal { return ParseNonNegative(s.tipPercentText) }

// FormattedTip recomputes the tip from the current texts.
func (s *State) FormattedTip() string {
	return s.calc.Calculate(s.Amount(), s.TipPercent())
}

// Result recomputes the full calculation snapshot from the current texts.
func (s *State) Result() domain.TipResult {
	return s.calc.Result(s.Amount(), s.TipPercent())
}

// maxDigits bounds parsed values to 10^maxDigits and maxDigits fraction
// places. Bounded values past float64 range still render as infinity.
const maxDigits = 1000

// ParseNonNegative parses text as a decimal number, allowing surrounding
// whitespace and exponent notation. Anything that is not a non-negative
// number yields zero.
func ParseNonNegative(text string) decimal.Decimal {
	t := strings.TrimSpace(text)
	if t == "" {
		return money.Zero().Decimal
	}
	m, err := money.NewMoneyFromString(t)
	if err != nil || m.IsNegative() || m.IsZero() {
		return money.Zero().Decimal
	}
	return m.Clamp(maxDigits).Decimal
}
