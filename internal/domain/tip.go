package domain

import (
	"github.com/shopspring/decimal"
)

// TipResult is a snapshot of one tip calculation, as rendered by the output formatters.
// All values are derived from the two raw form texts; nothing here is persisted.
type TipResult struct {
	Locale         string          `yaml:"locale" json:"locale"`
	Currency       string          `yaml:"currency" json:"currency"`
	BillAmount     decimal.Decimal `yaml:"bill_amount" json:"bill_amount"`
	TipPercent     decimal.Decimal `yaml:"tip_percent" json:"tip_percent"`
	Tip            decimal.Decimal `yaml:"tip" json:"tip"`                 // unrounded tipPercent / 100 * amount
	RoundedTip     decimal.Decimal `yaml:"rounded_tip" json:"rounded_tip"` // rounded to the currency's minor units
	Total          decimal.Decimal `yaml:"total" json:"total"`             // bill amount plus rounded tip
	FormattedBill  string          `yaml:"formatted_bill" json:"formatted_bill"`
	FormattedTip   string          `yaml:"formatted_tip" json:"formatted_tip"`
	FormattedTotal string          `yaml:"formatted_total" json:"formatted_total"`
}
