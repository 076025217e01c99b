package main

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tiptime/tip-calculator/internal/calculation"
	"github.com/tiptime/tip-calculator/internal/config"
	"github.com/tiptime/tip-calculator/internal/domain"
	"github.com/tiptime/tip-calculator/internal/form"
	"github.com/tiptime/tip-calculator/internal/locale"
	"github.com/tiptime/tip-calculator/internal/output"
	"github.com/tiptime/tip-calculator/internal/resources"
	"github.com/tiptime/tip-calculator/internal/ui"
	"github.com/tiptime/tip-calculator/pkg/logging"
)

// app carries what every command needs once flags are parsed.
type app struct {
	config  *domain.Configuration
	strings *resources.Strings
	calc    *calculation.TipCalculator
}

type rootOptions struct {
	configFile string
	locale     string
	verbose    bool
	lookupEnv  func(string) (string, bool)
	logOutput  io.Writer
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tiptime",
		Short: "Calculate a tip from a bill amount and a service percentage",
		Long: `tiptime computes a gratuity from a bill amount and a tip percentage and
shows it as currency of the active locale.

Without a subcommand it opens the interactive screen.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScreen(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVarP(&opts.locale, "locale", "l", "", "locale for currency formatting (default from LC_ALL, LC_MONETARY or LANG)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newScreenCmd(opts), newCalcCmd(opts))
	return rootCmd
}

func newScreenCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "screen",
		Short: "Open the interactive tip screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScreen(cmd, opts)
		},
	}
}

func newCalcCmd(opts *rootOptions) *cobra.Command {
	var amountText, tipText, format string
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate a tip once and print it",
		Long: `Calculate a tip once and print it.

Both values are taken as typed: text that is empty or not a non-negative
number counts as zero. An omitted --tip means 0%.`,
		Example: `  tiptime calc --amount 50 --tip 18
  tiptime calc -a 87.65 -t 17.5 --format json --locale de-DE`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				format = a.config.Format
			}
			state := form.NewState(a.calc)
			state.SetBillAmountText(amountText)
			state.SetTipPercentText(tipText)
			result := state.Result()
			return output.GenerateReport(cmd.OutOrStdout(), &result, format, a.strings)
		},
	}
	cmd.Flags().StringVarP(&amountText, "amount", "a", "", "bill amount")
	cmd.Flags().StringVarP(&tipText, "tip", "t", "", "tip percentage, e.g. 18 for 18%")
	cmd.Flags().StringVarP(&format, "format", "f", "console", fmt.Sprintf("output format %v", output.AvailableFormatterNames()))
	return cmd
}

func runScreen(cmd *cobra.Command, opts *rootOptions) error {
	a, err := newApp(opts)
	if err != nil {
		return err
	}
	model := ui.NewModel(form.NewState(a.calc), a.strings)
	p := tea.NewProgram(model, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if m, ok := final.(ui.Model); ok && m.Done() {
		fmt.Fprintln(cmd.OutOrStdout(), m.ResultLine())
	}
	return nil
}

// newApp loads configuration, resolves the locale and wires the calculator.
func newApp(opts *rootOptions) (*app, error) {
	level := logging.LevelFromEnv(envValue(opts.lookupEnv, "LOG_LEVEL"))
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := logging.Setup(opts.logOutput, level)

	cfg, err := config.NewInputParser().LoadFromFile(opts.configFile)
	if err != nil {
		return nil, err
	}
	strs, err := resources.New(cfg.Strings)
	if err != nil {
		return nil, err
	}
	tag, err := locale.Resolve(opts.locale, cfg.Locale, opts.lookupEnv)
	if err != nil {
		return nil, err
	}
	formatter := locale.NewCurrencyFormatter(tag)
	logger.Debug("locale resolved", "locale", formatter.Locale(), "currency", formatter.Currency())

	calc := calculation.NewTipCalculator(formatter)
	calc.SetLogger(calculation.SlogLogger{L: logger})
	return &app{config: cfg, strings: strs, calc: calc}, nil
}

func envValue(lookup func(string) (string, bool), key string) string {
	v, _ := lookup(key)
	return v
}
