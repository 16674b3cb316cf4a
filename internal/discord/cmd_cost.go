package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// CostCommand returns the cost command definition and handler
func CostCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "cost",
		Description: "Show what an item costs to craft",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "item",
				Description:  "Recipe or material name",
				Required:     true,
				Autocomplete: true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (*discordgo.MessageEmbed, error) {
			item := getOptions(i)["item"].StringValue()

			summary, err := client.GetCostSummary(context.Background(), item)
			if err != nil {
				return nil, err
			}
			return costEmbed(summary), nil
		})
	}

	return cmd, handler
}
