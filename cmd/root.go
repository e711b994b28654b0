package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/ocmovies/catalog"
	"github.com/s0up4200/ocmovies/config"
)

var (
	cfgFile  string
	apiURL   string
	logLevel string

	cfg           *config.Config
	logger        zerolog.Logger
	catalogClient *catalog.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ocmovies",
	Short: "Browse a paginated movie catalog from the terminal",
	Long: `ocmovies talks to a paginated movie catalog REST API. It lists genres,
counts titles per genre, shows the best rated movies overall or per genre,
and prints the full details of a single title.

Movie records are cached for the lifetime of a command, so a title seen in
a listing is not fetched twice.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "url", "", "catalog API base URL (overrides api.url)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides logging.level)")
}

// loadConfig loads the configuration and applies command line overrides
func loadConfig(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("url") {
		cfg.API.URL = apiURL
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = strings.ToLower(logLevel)
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger = setupLogger(cfg.Logging, os.Stderr)
	return nil
}

// initializeApp initializes the configuration and the catalog client
func initializeApp(cmd *cobra.Command, args []string) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}

	var err error
	catalogClient, err = catalog.NewClient(cfg.API.URL, logger,
		catalog.WithTimeout(cfg.API.Timeout),
		catalog.WithMaxPages(cfg.API.MaxPages),
		catalog.WithAcceptSummaries(cfg.Cache.AcceptSummaries),
	)
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}

	logger.Debug().
		Str("url", catalogClient.BaseURL()).
		Dur("timeout", cfg.API.Timeout).
		Int("max_pages", cfg.API.MaxPages).
		Msg("Catalog client ready")

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig, out *os.File) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(out).With().Timestamp().Logger()
	}

	return zerolog.New(consoleWriter(out, cfg.Color && isTerminal(out))).With().Timestamp().Logger()
}

func consoleWriter(out io.Writer, color bool) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
