package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gmauleon.org/tmt/pkg/report"
	"gmauleon.org/tmt/pkg/term"
	"gmauleon.org/tmt/pkg/timestamp"
)

const (
	environmentVariablePrefix = "TMT"
	defaultLogLevel           = "warn"
)

var (
	colorMode term.Mode
	unit      timestamp.Unit
	logger    *zap.Logger

	config = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "tmt [timestamp]",
	Short: "Too many timestamps: show a point in time in every useful format",
	Long: `tmt shows a point in time as ISO 8601, RFC 2822 and a Unix timestamp
split into seconds, milliseconds, microseconds and nanoseconds.

Without argument the current time is used. A timestamp argument is either an
RFC 3339 date or an integer Unix timestamp in --unit.`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return printReport(cmd, report.Timestamp{Time: time.Now().UTC()}, report.SourceSystemClock)
		}

		t, err := timestamp.Parse(args[0], unit)
		if err != nil {
			return fmt.Errorf("failed to parse timestamp: %w", err)
		}

		return printReport(cmd, report.Timestamp{Time: t}, report.SourceArgument)
	},
}

func Execute() {
	statusCode := 0
	if err := rootCmd.Execute(); err != nil {
		statusCode = 1
	}

	_ = logger.Sync()
	os.Exit(statusCode)
}

func init() {
	logger = zap.Must(zap.NewProduction())

	rootCmd.PersistentFlags().String("color", string(term.ModeAuto), "Color output: auto, always or never")
	rootCmd.PersistentFlags().String("unit", string(timestamp.UnitAuto), "Unit of integer timestamps: auto, s, ms, us or ns")
	rootCmd.PersistentFlags().String("log-level", defaultLogLevel, "Log level: debug, info, warn or error")

	config.SetEnvPrefix(environmentVariablePrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()
	_ = config.BindPFlags(rootCmd.PersistentFlags())
}

// setup reads the shared configuration and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	if err := verifyFlags(); err != nil {
		return err
	}

	logger.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("color", string(colorMode)),
		zap.String("unit", string(unit)),
	)

	return nil
}

func verifyFlags() error {
	var flagErrors error
	var err error

	colorMode, err = term.ParseMode(config.GetString("color"))
	if err != nil {
		flagErrors = multierror.Append(flagErrors, err)
	}

	unit, err = timestamp.ParseUnit(config.GetString("unit"))
	if err != nil {
		flagErrors = multierror.Append(flagErrors, err)
	}

	level, err := zapcore.ParseLevel(config.GetString("log-level"))
	if err != nil {
		flagErrors = multierror.Append(flagErrors, fmt.Errorf("invalid log level: %w", err))
	} else if l, err := newLogger(level); err != nil {
		flagErrors = multierror.Append(flagErrors, err)
	} else {
		logger = l
	}

	return flagErrors
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return l, nil
}

func printReport(cmd *cobra.Command, op report.Operation, source report.Source) error {
	lines := report.Build(op, source)
	logger.Debug("printing report", zap.String("source", string(source)), zap.Int("lines", len(lines)))

	return term.NewPrinter(cmd.OutOrStdout(), colorMode).Print(lines)
}
