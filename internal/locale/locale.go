// Package locale resolves the runtime locale and formats amounts as that
// locale's currency.
package locale

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Fallback is used when no usable locale is configured.
var Fallback = language.AmericanEnglish

// ErrInvalidLocale is returned for locale strings that are not valid tags.
var ErrInvalidLocale = errors.New("invalid locale")

// envVars are consulted in POSIX precedence order for monetary formatting.
var envVars = []string{"LC_ALL", "LC_MONETARY", "LANG"}

// ParseTag parses a POSIX locale name ("en_US.UTF-8", "de_DE@euro") or a
// BCP 47 tag ("fr-CH"). Empty, "C" and "POSIX" map to Fallback.
func ParseTag(s string) (language.Tag, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "" || s == "C" || s == "POSIX" {
		return Fallback, nil
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return Fallback, fmt.Errorf("%w %q: %v", ErrInvalidLocale, s, err)
	}
	return tag, nil
}

// Detect returns the first parseable locale found through lookup, which is
// normally os.LookupEnv. Unparseable values are skipped.
func Detect(lookup func(string) (string, bool)) language.Tag {
	for _, name := range envVars {
		v, ok := lookup(name)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		tag, err := ParseTag(v)
		if err != nil {
			continue
		}
		return tag
	}
	return Fallback
}

// Resolve picks the locale by precedence: explicit flag, then config, then environment.
func Resolve(flag, configured string, lookup func(string) (string, bool)) (language.Tag, error) {
	for _, s := range []string{flag, configured} {
		if strings.TrimSpace(s) != "" {
			return ParseTag(s)
		}
	}
	return Detect(lookup), nil
}
