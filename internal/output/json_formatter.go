package output

import (
	"encoding/json"

	"github.com/tiptime/tip-calculator/internal/domain"
)

// JSONFormatter serializes the tip result as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.TipResult) ([]byte, error) {
	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
