package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gmauleon.org/tmt/pkg/discord"
	"gmauleon.org/tmt/pkg/report"
	"gmauleon.org/tmt/pkg/timestamp"
	"gmauleon.org/tmt/pkg/twitter"
)

var errSnowflakeArgs = errors.New("expected either a snowflake or --from-time")

var (
	discordFromTime string
	twitterFromTime string
)

var discordCmd = &cobra.Command{
	Use:   "discord <snowflake>",
	Short: "Decode a Discord snowflake",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := snowflakeArg(args, discordFromTime, discord.ParseID, func(t time.Time) discord.ID {
			return discord.Decode(discord.Encode(t, 0, 0, 0))
		})
		if err != nil {
			return err
		}

		logger.Debug("decoded discord snowflake", zap.Uint64("snowflake", id.Value))
		return printReport(cmd, report.Discord{ID: id}, report.SourceArgument)
	},
}

var twitterCmd = &cobra.Command{
	Use:   "twitter <snowflake>",
	Short: "Decode a Twitter snowflake",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := snowflakeArg(args, twitterFromTime, twitter.ParseID, func(t time.Time) twitter.ID {
			return twitter.Decode(twitter.Encode(t, 0, 0))
		})
		if err != nil {
			return err
		}

		logger.Debug("decoded twitter snowflake", zap.Uint64("snowflake", id.Value))
		return printReport(cmd, report.Twitter{ID: id}, report.SourceArgument)
	},
}

func init() {
	discordCmd.Flags().StringVar(&discordFromTime, "from-time", "", "Show the first snowflake minted at this timestamp instead")
	twitterCmd.Flags().StringVar(&twitterFromTime, "from-time", "", "Show the first snowflake minted at this timestamp instead")

	rootCmd.AddCommand(discordCmd, twitterCmd)
}

// snowflakeArg decodes the snowflake given as argument, or builds the
// smallest snowflake of the --from-time instant.
func snowflakeArg[T any](args []string, fromTime string, parse func(string) (T, error), at func(time.Time) T) (T, error) {
	var zero T

	switch {
	case len(args) == 1 && fromTime == "":
		id, err := parse(args[0])
		if err != nil {
			return zero, fmt.Errorf("failed to parse snowflake: %w", err)
		}
		return id, nil
	case len(args) == 0 && fromTime != "":
		t, err := timestamp.Parse(fromTime, unit)
		if err != nil {
			return zero, fmt.Errorf("failed to parse --from-time: %w", err)
		}
		return at(t), nil
	}

	return zero, errSnowflakeArgs
}
