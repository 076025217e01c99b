package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tiptime/tip-calculator/internal/domain"
	"github.com/tiptime/tip-calculator/internal/locale"
	"github.com/tiptime/tip-calculator/internal/output"
	"github.com/tiptime/tip-calculator/internal/resources"
)

// InputParser handles parsing of tiptime configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file. An empty filename
// returns the default configuration.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	if filename == "" {
		return domain.DefaultConfiguration(), nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates YAML configuration data.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	config := domain.DefaultConfiguration()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if config.Format == "" {
		config.Format = domain.DefaultConfiguration().Format
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.Locale != "" {
		if _, err := locale.ParseTag(config.Locale); err != nil {
			return fmt.Errorf("locale: %w", err)
		}
	}

	if output.GetFormatterByName(config.Format) == nil {
		return fmt.Errorf("format %q: %w", config.Format, output.ErrUnsupportedFormat)
	}

	if _, err := resources.New(config.Strings); err != nil {
		return fmt.Errorf("strings: %w", err)
	}

	return nil
}
