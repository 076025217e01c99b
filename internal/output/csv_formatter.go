package output

import (
	"bytes"
	"encoding/csv"

	"github.com/tiptime/tip-calculator/internal/domain"
)

// CSVFormatter writes a header row and one row for the result.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(result *domain.TipResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Locale", "Currency", "BillAmount", "TipPercent", "Tip", "RoundedTip", "Total", "FormattedTip", "FormattedTotal"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	row := []string{
		result.Locale,
		result.Currency,
		result.BillAmount.String(),
		result.TipPercent.String(),
		result.Tip.String(),
		result.RoundedTip.String(),
		result.Total.String(),
		result.FormattedTip,
		result.FormattedTotal,
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
