package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"patentdates/internal/browser"
	"patentdates/internal/config"
	"patentdates/internal/extract"
	"patentdates/internal/logger"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig   string
	flagURL      string
	flagHeadless bool
	flagTimeout  time.Duration
	flagSettle   time.Duration
	flagVerbose  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patentdates [search-term]",
		Short: "Extract filing, publication, and grant dates for a patent",
		Long: `Drives a headless browser against a patent search page, extracts the
filing, publication, and grant dates for the first result, and reports
the pairwise day differences between them.

With no search term, a default is derived from the search input's
placeholder text.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runExtract,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "YAML config file with selector chains")
	cmd.Flags().StringVar(&flagURL, "url", "", "Patent search page URL (overrides config)")
	cmd.Flags().BoolVar(&flagHeadless, "headless", true, "Run Chrome headless")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "Per-candidate resolution timeout (overrides config)")
	cmd.Flags().DurationVar(&flagSettle, "settle", 0, "Settle delay after interactions (overrides config)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

// runExtract is the main command logic
func runExtract(cmd *cobra.Command, args []string) error {
	log := logger.New(cmd.ErrOrStderr(), flagVerbose)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var term string
	if len(args) > 0 {
		term = args[0]
	}

	sess, err := browser.Open(browser.Options{Headless: cfg.Headless, Logger: log})
	if err != nil {
		return fmt.Errorf("opening browser: %w", err)
	}
	defer sess.Close()

	res, err := extract.New(sess, cfg, log).Run(cmd.Context(), term)
	if err != nil {
		return err
	}

	return WriteReport(cmd.OutOrStdout(), res.Findings)
}

// loadConfig builds the run configuration: defaults, then the config
// file, then explicit flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if flagConfig != "" {
		var err error
		cfg, err = config.LoadFile(flagConfig)
		if err != nil {
			return nil, err
		}
	}

	if flagURL != "" {
		cfg.URL = flagURL
	}
	if cmd.Flags().Changed("headless") {
		cfg.Headless = flagHeadless
	}
	if flagTimeout > 0 {
		cfg.ResolveTimeout = flagTimeout
	}
	if flagSettle > 0 {
		cfg.SettleDelay = flagSettle
	}
	return cfg, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
