// Package resources holds the translatable screen texts, looked up by ID.
package resources

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ID identifies a screen text.
type ID string

const (
	CalculateTip     ID = "calculate_tip"
	BillAmount       ID = "bill_amount"
	HowWasTheService ID = "how_was_the_service"
	TipAmount        ID = "tip_amount"
	Total            ID = "total"
	Help             ID = "help"
)

// ErrUnknownString is returned when an override names an ID that does not exist.
var ErrUnknownString = errors.New("unknown string resource")

var defaults = map[ID]string{
	CalculateTip:     "Calculate Tip",
	BillAmount:       "Bill Amount",
	HowWasTheService: "Tip Percentage",
	TipAmount:        "Tip Amount: %s",
	Total:            "Total",
	Help:             "enter: next/done • tab/shift+tab: move • esc: quit",
}

// Strings is an immutable lookup table of screen texts.
type Strings struct {
	table map[ID]string
}

// Default returns the built-in English table.
func Default() *Strings {
	s, _ := New(nil)
	return s
}

// New returns the built-in table with overrides applied. Every override must
// name a known ID, and tip_amount must keep exactly one %s verb for the
// formatted tip and no other verb. A literal percent sign is written %%.
func New(overrides map[string]string) (*Strings, error) {
	table := make(map[ID]string, len(defaults))
	for id, v := range defaults {
		table[id] = v
	}
	for k, v := range overrides {
		id := ID(k)
		if _, ok := defaults[id]; !ok {
			return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownString, k, strings.Join(IDs(), ", "))
		}
		if id == TipAmount {
			if err := checkSingleString(v); err != nil {
				return nil, fmt.Errorf("%s: %w", TipAmount, err)
			}
		}
		table[id] = v
	}
	return &Strings{table: table}, nil
}

// checkSingleString reports whether format consumes exactly one argument
// through a bare %s.
func checkSingleString(format string) error {
	verbs := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		switch {
		case i < len(format) && format[i] == '%':
		case i < len(format) && format[i] == 's':
			verbs++
		default:
			return fmt.Errorf("only %%s and %%%% are allowed, got %q", format)
		}
	}
	if verbs != 1 {
		return fmt.Errorf("must contain exactly one %%s, got %q", format)
	}
	return nil
}

// Get returns the text for id, or the id itself when it is unknown.
func (s *Strings) Get(id ID) string {
	if v, ok := s.table[id]; ok {
		return v
	}
	return string(id)
}

// Format interpolates args into the text for id.
func (s *Strings) Format(id ID, args ...any) string {
	return fmt.Sprintf(s.Get(id), args...)
}

// IDs returns the known IDs in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(defaults))
	for id := range defaults {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)
	return ids
}
