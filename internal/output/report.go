package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/tiptime/tip-calculator/internal/domain"
	"github.com/tiptime/tip-calculator/internal/resources"
)

// GenerateReport renders result with the named formatter and writes it to w.
// The console formatter is given strs so overridden screen texts apply.
func GenerateReport(w io.Writer, result *domain.TipResult, format string, strs *resources.Strings) error {
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	if _, ok := f.(ConsoleFormatter); ok {
		f = ConsoleFormatter{Strings: strs}
	}
	data, err := f.Format(result)
	if err != nil {
		return fmt.Errorf("format %s: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}
