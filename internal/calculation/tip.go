package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/tiptime/tip-calculator/internal/domain"
	money "github.com/tiptime/tip-calculator/pkg/decimal"
)

// CurrencyFormatter renders amounts as locale currency. Rounding to minor
// units is the formatter's job; the calculator never rounds.
type CurrencyFormatter interface {
	Format(amount decimal.Decimal) string
	Round(amount decimal.Decimal) decimal.Decimal
	Currency() string
	Locale() string
}

// CalculateTip returns tipPercent / 100 * amount without rounding.
func CalculateTip(amount, tipPercent decimal.Decimal) decimal.Decimal {
	return money.NewMoneyFromDecimal(amount).Percent(tipPercent).Decimal
}

// TipCalculator turns a bill amount and tip percentage into a formatted tip.
// It holds no state besides its collaborators, so identical inputs always
// produce identical output.
type TipCalculator struct {
	Formatter CurrencyFormatter
	Logger    Logger
}

// NewTipCalculator creates a calculator that formats through f.
func NewTipCalculator(f CurrencyFormatter) *TipCalculator {
	return &TipCalculator{Formatter: f, Logger: NopLogger{}}
}

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (tc *TipCalculator) SetLogger(l Logger) {
	if l == nil {
		tc.Logger = NopLogger{}
		return
	}
	tc.Logger = l
}

// Calculate returns the tip for amount at tipPercent formatted as currency,
// e.g. "$9.00" for (50, 18) under en-US. Both inputs are expected to be
// non-negative; callers coerce unparsable input to zero beforehand.
func (tc *TipCalculator) Calculate(amount, tipPercent decimal.Decimal) string {
	return tc.Formatter.Format(CalculateTip(amount, tipPercent))
}

// Result computes the tip and the bill total and returns every value the
// output formatters need.
func (tc *TipCalculator) Result(amount, tipPercent decimal.Decimal) domain.TipResult {
	tip := CalculateTip(amount, tipPercent)
	rounded := tc.Formatter.Round(tip)
	total := money.NewMoneyFromDecimal(amount).Add(money.NewMoneyFromDecimal(rounded)).Decimal
	tc.Logger.Debugf("tip calculated: amount=%s percent=%s tip=%s locale=%s", amount, tipPercent, tip, tc.Formatter.Locale())
	return domain.TipResult{
		Locale:         tc.Formatter.Locale(),
		Currency:       tc.Formatter.Currency(),
		BillAmount:     amount,
		TipPercent:     tipPercent,
		Tip:            tip,
		RoundedTip:     rounded,
		Total:          total,
		FormattedBill:  tc.Formatter.Format(amount),
		FormattedTip:   tc.Formatter.Format(tip),
		FormattedTotal: tc.Formatter.Format(total),
	}
}
