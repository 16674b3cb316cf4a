package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/CraftValue_Go/internal/domain"
)

// EfficiencyCommand returns the efficiency command definition and handler
func EfficiencyCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minReward := 0.0
	cmd := &discordgo.ApplicationCommand{
		Name:        "efficiency",
		Description: "Check whether a delivery request is worth crafting for",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "item",
				Description:  "Requested recipe",
				Required:     true,
				Autocomplete: true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionNumber,
				Name:        "reward",
				Description: "Coins paid per delivery",
				Required:    true,
				MinValue:    &minReward,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "mode",
				Description: "Find the best delivery count, or simulate a fixed one (default: best)",
				Required:    false,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Best", Value: string(domain.ModeBest)},
					{Name: "1 delivery", Value: string(domain.ModeSimulate1)},
					{Name: "2 deliveries", Value: string(domain.ModeSimulate2)},
					{Name: "10 deliveries", Value: string(domain.ModeSimulate3)},
					{Name: "20 deliveries", Value: string(domain.ModeSimulate5)},
					{Name: "25 deliveries", Value: string(domain.ModeSimulate10)},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (*discordgo.MessageEmbed, error) {
			options := getOptions(i)
			item := options["item"].StringValue()
			reward := options["reward"].FloatValue()

			mode := domain.ModeBest
			if opt, ok := options["mode"]; ok {
				mode = domain.EfficiencyMode(opt.StringValue())
			}

			result, err := client.EvaluateEfficiency(context.Background(), item, reward, mode)
			if err != nil {
				return nil, err
			}
			return efficiencyEmbed(result, reward), nil
		})
	}

	return cmd, handler
}
