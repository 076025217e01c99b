package output

import "github.com/shopspring/decimal"

// FormatPercentage formats a percentage as typed by the user, trimming
// trailing zeros: 18 -> "18%", 12.50 -> "12.5%".
func FormatPercentage(pct decimal.Decimal) string { return pct.String() + "%" }
