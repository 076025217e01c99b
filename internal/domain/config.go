package domain

// Configuration holds the optional settings loaded from a tiptime YAML file.
type Configuration struct {
	// Locale overrides the locale detected from the environment (e.g. "de-DE" or "fr_CH.UTF-8").
	Locale string `yaml:"locale,omitempty" json:"locale,omitempty"`
	// Format is the default output format of the calc command.
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	// Strings overrides the built-in screen texts, keyed by resource ID.
	Strings map[string]string `yaml:"strings,omitempty" json:"strings,omitempty"`
}

// DefaultConfiguration is used when no configuration file is given.
func DefaultConfiguration() *Configuration {
	return &Configuration{Format: "console"}
}
