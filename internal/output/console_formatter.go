package output

import (
	"bytes"
	"fmt"

	"github.com/tiptime/tip-calculator/internal/domain"
	"github.com/tiptime/tip-calculator/internal/resources"
)

// ConsoleFormatter renders the result the way the screen labels it.
// A nil Strings uses the built-in English texts.
type ConsoleFormatter struct {
	Strings *resources.Strings
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.TipResult) ([]byte, error) {
	strs := c.Strings
	if strs == nil {
		strs = resources.Default()
	}
	var buf bytes.Buffer
	fmt.Fprintln(&buf, strs.Get(resources.CalculateTip))
	fmt.Fprintf(&buf, "%s: %s\n", strs.Get(resources.BillAmount), result.FormattedBill)
	fmt.Fprintf(&buf, "%s: %s\n", strs.Get(resources.HowWasTheService), FormatPercentage(result.TipPercent))
	fmt.Fprintln(&buf, strs.Format(resources.TipAmount, result.FormattedTip))
	fmt.Fprintf(&buf, "%s: %s\n", strs.Get(resources.Total), result.FormattedTotal)
	return buf.Bytes(), nil
}
