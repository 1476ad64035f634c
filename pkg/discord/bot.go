package discord

import (
	"slices"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const (
	CommandName    = "Timestamp"
	unauthorized   = "you are not allowed to use this command"
	internalStatus = "internal error"
)

type Bot struct {
	appID   string
	session *discordgo.Session
	logger  *zap.Logger

	Interactions []*Interaction
}

// InteractionCallback renders the reply for the snowflake targeted by a
// context menu command.
type InteractionCallback func(targetID string) (string, error)

type Interaction struct {
	ID                string
	Name              string
	Type              discordgo.ApplicationCommandType
	AuthorizedUserIDs []string
	Callback          InteractionCallback
}

func NewBot(logger *zap.Logger, appID string, token string) (*Bot, error) {
	bot := Bot{
		appID:  appID,
		logger: logger,
	}

	// Create a new Discord session
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		logger.Error("failed to create Discord session", zap.Error(err))
		return nil, err
	}

	// Handler to know when the bot is registered and ready on discord
	s.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		logger.Info("bot is up", zap.String("user", r.User.Username))
	})
	s.AddHandler(bot.botInteraction)

	bot.session = s

	return &bot, nil
}

// AddInteraction registers a context menu command of the given type. Message
// commands target a message ID, user commands a user ID.
func (b *Bot) AddInteraction(name string, commandType discordgo.ApplicationCommandType, authorizedUserIDs []string, callback InteractionCallback) error {
	c, err := b.session.ApplicationCommandCreate(b.appID, "", &discordgo.ApplicationCommand{
		Name: name,
		Type: commandType,
	})

	if err != nil {
		b.logger.Error("creating interaction", zap.String("name", name), zap.Error(err))
		return err
	}

	b.Interactions = append(b.Interactions, &Interaction{
		ID:                c.ID,
		Name:              name,
		Type:              commandType,
		AuthorizedUserIDs: authorizedUserIDs,
		Callback:          callback,
	})

	b.logger.Info("created interaction", zap.String("name", name))
	return nil
}

func (b *Bot) Start() error {
	// Open a websocket connection to Discord and begin listening
	err := b.session.Open()
	if err != nil {
		b.logger.Error("opening connection", zap.Error(err))
		return err
	}

	return nil
}

func (b *Bot) Shutdown() error {
	defer b.session.Close()

	for _, i := range b.Interactions {
		if err := b.session.ApplicationCommandDelete(b.appID, "", i.ID); err != nil {
			b.logger.Error("deleting interaction", zap.Error(err))
			return err
		}
		b.logger.Info("deleted interaction", zap.String("name", i.Name))
	}

	b.logger.Info("bot is down")

	return nil
}

func (b *Bot) botInteraction(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	if interaction.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := interaction.ApplicationCommandData()
	i := b.find(data.Name, data.CommandType)
	if i == nil {
		return
	}

	err := session.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})

	if err != nil {
		b.logger.Error("can't send interaction response", zap.Error(err))
		return
	}

	content := b.handle(i, interaction)

	_, err = session.FollowupMessageCreate(interaction.Interaction, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})

	if err != nil {
		b.logger.Error("can't update interaction message", zap.Error(err))
	}
}

// handle returns the reply content for an interaction matching i.
func (b *Bot) handle(i *Interaction, interaction *discordgo.InteractionCreate) string {
	user := interactionUser(interaction)
	if user == nil || !slices.Contains(i.AuthorizedUserIDs, user.ID) {
		name := ""
		if user != nil {
			name = user.Username
		}
		b.logger.Info("interaction detected but is not authorized for that user", zap.String("name", name))
		return unauthorized
	}

	targetID := interaction.ApplicationCommandData().TargetID
	content, err := i.Callback(targetID)
	if err != nil {
		b.logger.Error("failed callback", zap.String("target", targetID), zap.Error(err))
		return internalStatus
	}

	b.logger.Info("callback successfully", zap.String("target", targetID))
	return content
}

func (b *Bot) find(name string, commandType discordgo.ApplicationCommandType) *Interaction {
	for _, i := range b.Interactions {
		if i.Name == name && i.Type == commandType {
			return i
		}
	}
	return nil
}

// interactionUser returns the invoking user, set on User in DMs and on
// Member in guilds.
func interactionUser(interaction *discordgo.InteractionCreate) *discordgo.User {
	if interaction.User != nil {
		return interaction.User
	}
	if interaction.Member != nil {
		return interaction.Member.User
	}
	return nil
}
