package locale

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	money "github.com/tiptime/tip-calculator/pkg/decimal"
)

// CurrencyFormatter renders amounts in the currency of a locale's region,
// using that locale's digits, digit grouping and decimal separator.
type CurrencyFormatter struct {
	tag        language.Tag
	unit       currency.Unit
	scale      int
	symbol     string
	decimalSep string
	digits     [10]string // locale digits 0-9
	printer    *message.Printer
}

// NewCurrencyFormatter builds a formatter for tag. Tags whose region has no
// known currency fall back to USD.
func NewCurrencyFormatter(tag language.Tag) *CurrencyFormatter {
	unit, conf := currency.FromTag(tag)
	if conf == language.No {
		unit = currency.USD
	}
	scale, _ := currency.Standard.Rounding(unit)
	p := message.NewPrinter(tag)
	sym := p.Sprint(currency.Symbol(unit))
	if sym == "" {
		sym = unit.String()
	}
	f := &CurrencyFormatter{
		tag:     tag,
		unit:    unit,
		scale:   scale,
		symbol:  sym,
		printer: p,
	}
	for i := range f.digits {
		f.digits[i] = p.Sprint(number.Decimal(i))
	}
	// "1.5" in the locale's own digits; the separator sits between them
	sample := p.Sprint(number.Decimal(1.5, number.Scale(1)))
	f.decimalSep = strings.TrimSuffix(strings.TrimPrefix(sample, f.digits[1]), f.digits[5])
	return f
}

// Round rounds amount to the currency's minor units.
func (f *CurrencyFormatter) Round(amount decimal.Decimal) decimal.Decimal {
	return money.NewMoneyFromDecimal(amount).RoundTo(int32(f.scale)).Decimal
}

// Format renders amount as symbol followed by the localized number, rounded
// to the currency's minor units, e.g. "$9.00", "€8,50" or "￥1,234".
//
// Digits are taken from the decimal itself, so the output is exact as long as
// the integer part fits in a uint64. Beyond that the amount goes through
// float64, which renders as "∞" past float64 range.
func (f *CurrencyFormatter) Format(amount decimal.Decimal) string {
	rounded := f.Round(amount)
	intPart, fracPart, _ := strings.Cut(rounded.StringFixed(int32(f.scale)), ".")
	n, err := strconv.ParseUint(intPart, 10, 64)
	if err != nil {
		return f.symbol + f.printer.Sprint(number.Decimal(rounded.InexactFloat64(), number.Scale(f.scale)))
	}
	var b strings.Builder
	b.WriteString(f.symbol)
	b.WriteString(f.printer.Sprint(number.Decimal(n)))
	if fracPart != "" {
		b.WriteString(f.decimalSep)
		for _, c := range fracPart {
			b.WriteString(f.digits[c-'0'])
		}
	}
	return b.String()
}

// Currency returns the ISO 4217 code, e.g. "USD".
func (f *CurrencyFormatter) Currency() string { return f.unit.String() }

// Locale returns the BCP 47 tag the formatter was built for.
func (f *CurrencyFormatter) Locale() string { return f.tag.String() }

// Scale returns the number of minor-unit digits.
func (f *CurrencyFormatter) Scale() int { return f.scale }
