package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/tiptime/tip-calculator/internal/domain"
	"github.com/tiptime/tip-calculator/internal/resources"
)

func buildTestResult() *domain.TipResult {
	return &domain.TipResult{
		Locale:         "en-US",
		Currency:       "USD",
		BillAmount:     decimal.NewFromInt(50),
		TipPercent:     decimal.NewFromInt(18),
		Tip:            decimal.NewFromInt(9),
		RoundedTip:     decimal.NewFromInt(9),
		Total:          decimal.NewFromInt(59),
		FormattedBill:  "$50.00",
		FormattedTip:   "$9.00",
		FormattedTotal: "$59.00",
	}
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Calculate Tip\n" +
		"Bill Amount: $50.00\n" +
		"Tip Percentage: 18%\n" +
		"Tip Amount: $9.00\n" +
		"Total: $59.00\n"
	if string(out) != want {
		t.Fatalf("console output mismatch:\n%s\nwant:\n%s", out, want)
	}
}

func TestConsoleFormatter_CustomStrings(t *testing.T) {
	strs, err := resources.New(map[string]string{"tip_amount": "Pourboire : %s"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := ConsoleFormatter{Strings: strs}.Format(buildTestResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "Pourboire : $9.00") {
		t.Fatalf("expected overridden tip line, got: %s", out)
	}
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded["formatted_tip"] != "$9.00" || decoded["currency"] != "USD" {
		t.Fatalf("unexpected json content: %s", out)
	}
}

func TestYAMLFormatter(t *testing.T) {
	out, err := YAMLFormatter{}.Format(buildTestResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]any
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("invalid yaml: %v", err)
	}
	if decoded["formatted_total"] != "$59.00" || decoded["locale"] != "en-US" {
		t.Fatalf("unexpected yaml content: %s", out)
	}
}

func TestCSVFormatter(t *testing.T) {
	out, err := CSVFormatter{}.Format(buildTestResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("invalid csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d", len(records))
	}
	if records[1][0] != "en-US" || records[1][4] != "9" || records[1][7] != "$9.00" {
		t.Fatalf("unexpected row: %v", records[1])
	}
}

func TestGetFormatterByName(t *testing.T) {
	cases := map[string]string{
		"console": "console",
		"TEXT":    "console",
		" json ":  "json",
		"yml":     "yaml",
		"csv":     "csv",
	}
	for in, want := range cases {
		f := GetFormatterByName(in)
		if f == nil || f.Name() != want {
			t.Fatalf("GetFormatterByName(%q) = %v, want %s", in, f, want)
		}
	}
	if GetFormatterByName("html") != nil {
		t.Fatalf("expected nil for unknown format")
	}
}

func TestAvailableFormatterNames(t *testing.T) {
	got := strings.Join(AvailableFormatterNames(), ",")
	if got != "console,csv,json,yaml" {
		t.Fatalf("unexpected names: %s", got)
	}
}

func TestGenerateReport(t *testing.T) {
	var buf bytes.Buffer
	if err := GenerateReport(&buf, buildTestResult(), "json", resources.Default()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `"formatted_tip": "$9.00"`) {
		t.Fatalf("unexpected report: %s", buf.String())
	}

	buf.Reset()
	err := GenerateReport(&buf, buildTestResult(), "pdf", resources.Default())
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if !strings.Contains(err.Error(), "console, csv, json, yaml") {
		t.Fatalf("expected known formats in error, got %v", err)
	}
}

func TestFormatterFunc(t *testing.T) {
	f := FormatterFunc{ID: "tip-only", F: func(r *domain.TipResult) ([]byte, error) { return []byte(r.FormattedTip), nil }}
	out, _ := f.Format(buildTestResult())
	if f.Name() != "tip-only" || string(out) != "$9.00" {
		t.Fatalf("FormatterFunc mismatch: %s %s", f.Name(), out)
	}
}
