package output

import (
	"github.com/tiptime/tip-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the tip result as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(result *domain.TipResult) ([]byte, error) {
	return yaml.Marshal(result)
}
