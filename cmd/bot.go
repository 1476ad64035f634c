package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"gmauleon.org/tmt/pkg/discord"
	"gmauleon.org/tmt/pkg/report"
)

var (
	discordAppID             string
	discordToken             string
	discordAuthorizedUserIDs []string
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run a Discord bot that decodes the time of messages and users",
	Long: `bot registers a "Timestamp" context menu command on messages and users.
Authorized users get an ephemeral reply with the decoded snowflake.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launch()
	},
}

func init() {
	botCmd.Flags().String("discord-app-id", "", "Discord application ID")
	botCmd.Flags().String("discord-token", "", "Discord token")
	botCmd.Flags().StringSlice("discord-authorized-user-ids", []string{}, "Discord authorized users IDs")
	_ = config.BindPFlags(botCmd.Flags())

	rootCmd.AddCommand(botCmd)
}

func launch() error {
	if err := verifyBotFlags(); err != nil {
		return err
	}

	// Create Discord bot
	bot, err := discord.NewBot(logger, discordAppID, discordToken)
	if err != nil {
		return fmt.Errorf("failed to create discord bot: %w", err)
	}

	if err := bot.AddInteraction(discord.CommandName, discordgo.MessageApplicationCommand, discordAuthorizedUserIDs, createTimestampCallback(report.SourceMessage)); err != nil {
		return fmt.Errorf("failed to add message interaction: %w", err)
	}

	if err := bot.AddInteraction(discord.CommandName, discordgo.UserApplicationCommand, discordAuthorizedUserIDs, createTimestampCallback(report.SourceUser)); err != nil {
		return fmt.Errorf("failed to add user interaction: %w", err)
	}

	if err := bot.Start(); err != nil {
		return fmt.Errorf("failed to start bot: %w", err)
	}

	// Block the program from exiting
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	if err := bot.Shutdown(); err != nil {
		return fmt.Errorf("failed to shutdown bot: %w", err)
	}

	return nil
}

func verifyBotFlags() error {
	var flagErrors error

	discordAppID = config.GetString("discord-app-id")
	if discordAppID == "" {
		flagErrors = multierror.Append(flagErrors, errors.New("discord-app-id is required"))
	}

	discordToken = config.GetString("discord-token")
	if discordToken == "" {
		flagErrors = multierror.Append(flagErrors, errors.New("discord-token is required"))
	}

	discordAuthorizedUserIDs = splitIDs(config.GetStringSlice("discord-authorized-user-ids"))
	if len(discordAuthorizedUserIDs) == 0 {
		flagErrors = multierror.Append(flagErrors, errors.New("discord-authorized-user-ids is required"))
	}

	return flagErrors
}

// splitIDs flattens comma separated values, as found in environment
// variables, and drops empty entries.
func splitIDs(values []string) []string {
	var ids []string
	for _, v := range values {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func createTimestampCallback(source report.Source) discord.InteractionCallback {
	return func(targetID string) (string, error) {
		id, err := discord.ParseID(targetID)
		if err != nil {
			return "", fmt.Errorf("failed to decode target: %w", err)
		}

		return "```\n" + report.String(report.Build(report.Discord{ID: id}, source)) + "```", nil
	}
}
