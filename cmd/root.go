package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dadashzadeh/opencart-api/config"
	"github.com/dadashzadeh/opencart-api/filter"
	"github.com/dadashzadeh/opencart-api/opencart"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *opencart.Client

	version   = "dev"
	buildTime = "unknown"

	// Command flags shared across subcommands
	filterExpr string
	recordData string
	recordFile string
	encodeHTML bool
	assumeYes  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "opencartctl",
	Short: "Manage OpenCart products, attributes and categories from the command line",
	Long: `opencartctl is a CLI for the OpenCart Product API. It searches and updates
products, manages attributes and attribute groups, browses categories, and
inspects the server's diagnostic endpoint.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records the build information stamped in at link time.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration, logger and API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Version, self-update and shell plumbing work without a config file.
	if configFreeCommand(cmd) {
		logger = setupLogger(config.LoggingConfig{Level: "info", Format: "console", Color: true})
		return nil
	}

	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create OpenCart client
	opts := []opencart.Option{
		opencart.WithTimeout(time.Duration(cfg.OpenCart.Timeout) * time.Second),
	}
	if !cfg.OpenCart.DecodeHTML {
		opts = append(opts, opencart.WithoutHTMLDecoding())
	}
	if cfg.OpenCart.UserAgent != "" {
		opts = append(opts, opencart.WithUserAgent(cfg.OpenCart.UserAgent))
	}

	client, err = opencart.NewClient(cfg.OpenCart.URL, cfg.OpenCart.APIKey, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create OpenCart client: %w", err)
	}

	return nil
}

// configFreeCommand reports whether cmd runs before or without a configured
// client. The root-level version and update commands are matched by
// identity, not name: the product, attribute and group trees each carry a
// nested subcommand named "update", and those need the full client setup.
func configFreeCommand(cmd *cobra.Command) bool {
	if cmd == versionCmd || cmd == updateCmd {
		return true
	}
	if parent := cmd.Parent(); parent != nil && parent.Name() == "completion" {
		return true
	}
	switch cmd.Name() {
	case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	return false
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
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
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when stderr is a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// versionCmd prints the stamped build information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("opencartctl %s (built %s)\n", version, buildTime)
	},
}

// printJSON pretty-prints v to stdout.
func printJSON(v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}

// loadRecord reads the JSON record supplied via --data or --file.
func loadRecord(inline, path string) (map[string]any, error) {
	if inline != "" && path != "" {
		return nil, fmt.Errorf("--data and --file are mutually exclusive")
	}

	var raw []byte
	switch {
	case inline != "":
		raw = []byte(inline)
	case path == "-":
		var err error
		raw, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
	case path != "":
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("provide the record with --data or --file")
	}

	var record map[string]any
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("record is not a JSON object: %w", err)
	}
	return record, nil
}

// filterRecords applies the --filter expression, when given, to records.
func filterRecords(records []map[string]any) ([]map[string]any, error) {
	if filterExpr == "" {
		return records, nil
	}

	f, err := filter.Compile(filterExpr)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	matched, err := f.Apply(records)
	if err != nil {
		return nil, err
	}
	return matched, nil
}

// confirm asks the user to approve a destructive action.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.ToLower(strings.TrimSpace(response)) == "y"
}
