package form

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/tiptime/tip-calculator/internal/calculation"
	"github.com/tiptime/tip-calculator/internal/locale"
)

func newUSState() *State {
	return NewState(calculation.NewTipCalculator(locale.NewCurrencyFormatter(language.AmericanEnglish)))
}

func TestParseNonNegative(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"50", "50"},
		{"18.5", "18.5"},
		{".5", "0.5"},
		{"5.", "5"},
		{"  12  ", "12"},
		{"1e3", "1000"},
		{"0", "0"},
		{"", "0"},
		{"   ", "0"},
		{"abc", "0"},
		{"12abc", "0"},
		{"1.2.3", "0"},
		{"1,5", "0"},
		{".", "0"},
		{"-5", "0"},
		{"NaN", "0"},
		{"$50", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := ParseNonNegative(tt.text)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "ParseNonNegative(%q) = %s, want %s", tt.text, got, tt.want)
		})
	}
}

func TestParseNonNegative_ExtremeExponents(t *testing.T) {
	huge := ParseNonNegative("1e99999999")
	assert.True(t, huge.Equal(decimal.New(1, maxDigits)), "got exponent %d", huge.Exponent())
	assert.True(t, ParseNonNegative("1e-99999999").IsZero())
	assert.True(t, ParseNonNegative("1e99999999999").IsZero(), "exponent past int32 is malformed")

	s := newUSState()
	s.SetBillAmountText("1e99999999")
	s.SetTipPercentText("18")
	assert.Equal(t, "$∞", s.FormattedTip())

	s.SetBillAmountText("1e-99999999")
	assert.Equal(t, "$0.00", s.FormattedTip())

	s.SetBillAmountText("50")
	s.SetTipPercentText("1e-99999999")
	assert.Equal(t, "$0.00", s.FormattedTip())

	s.SetBillAmountText("1e400")
	s.SetTipPercentText("18")
	assert.Equal(t, "$∞", s.FormattedTip())
}

func TestState_StoresTextVerbatim(t *testing.T) {
	s := newUSState()
	assert.Equal(t, "", s.BillAmountText())
	assert.Equal(t, "", s.TipPercentText())

	s.SetBillAmountText(" 12,5 dollars ")
	s.SetTipPercentText("lots!")
	assert.Equal(t, " 12,5 dollars ", s.BillAmountText())
	assert.Equal(t, "lots!", s.TipPercentText())
	assert.True(t, s.Amount().IsZero())
	assert.True(t, s.TipPercent().IsZero())
}

func TestState_EndToEnd(t *testing.T) {
	tests := []struct {
		name       string
		billAmount string
		tipPercent string
		want       string
	}{
		{"typical bill", "50", "18", "$9.00"},
		{"empty bill amount", "", "20", "$0.00"},
		{"unparsable bill amount", "abc", "15", "$0.00"},
		{"empty tip percent has no default", "100", "", "$0.00"},
		{"both empty", "", "", "$0.00"},
		{"fractional values", "87.65", "17.5", "$15.34"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newUSState()
			s.SetBillAmountText(tt.billAmount)
			s.SetTipPercentText(tt.tipPercent)
			assert.Equal(t, tt.want, s.FormattedTip())
		})
	}
}

func TestState_UnparsableEqualsZero(t *testing.T) {
	explicit := newUSState()
	explicit.SetBillAmountText("0")
	explicit.SetTipPercentText("18")

	for _, text := range []string{"", "abc", "-3", "1..2"} {
		s := newUSState()
		s.SetBillAmountText(text)
		s.SetTipPercentText("18")
		assert.Equal(t, explicit.FormattedTip(), s.FormattedTip(), "bill text %q", text)
	}
}

func TestState_RecomputesOnEveryChange(t *testing.T) {
	s := newUSState()
	s.SetBillAmountText("50")
	s.SetTipPercentText("18")
	assert.Equal(t, "$9.00", s.FormattedTip())

	s.SetTipPercentText("20")
	assert.Equal(t, "$10.00", s.FormattedTip())

	s.SetBillAmountText("50x")
	assert.Equal(t, "$0.00", s.FormattedTip())

	s.SetBillAmountText("100")
	r := s.Result()
	assert.Equal(t, "$20.00", r.FormattedTip)
	assert.Equal(t, "$120.00", r.FormattedTotal)
}

func TestState_Reset(t *testing.T) {
	s := newUSState()
	s.SetBillAmountText("50")
	s.SetTipPercentText("18")
	s.Reset()
	assert.Equal(t, "", s.BillAmountText())
	assert.Equal(t, "", s.TipPercentText())
	assert.Equal(t, "$0.00", s.FormattedTip())
}
