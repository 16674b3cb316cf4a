package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// StaminaValueCommand returns the stamina-value command definition and handler
func StaminaValueCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minLevel := 0.0
	cmd := &discordgo.ApplicationCommand{
		Name:        "stamina-value",
		Description: "Coin value of one stamina point at your work-life balance level",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "level",
				Description: "Work-life balance level",
				Required:    true,
				MinValue:    &minLevel,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (*discordgo.MessageEmbed, error) {
			level := int(getOptions(i)["level"].IntValue())

			value, err := client.GetStaminaValue(context.Background(), level)
			if err != nil {
				return nil, err
			}
			return staminaValueEmbed(level, value), nil
		})
	}

	return cmd, handler
}
