package discord

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// Discord rejects more than 25 choices
	maxAutocompleteChoices = 25
	itemNamesTTL           = time.Minute
	itemNamesKey           = "items"
)

// itemNames caches the dataset's item names between keystrokes
var itemNames = expirable.NewLRU[string, []string](2, nil, itemNamesTTL)

// HandleAutocomplete routes autocomplete interactions to the appropriate handler
func HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	data := i.ApplicationCommandData()

	switch data.Name {
	case "cost":
		handleItemAutocomplete(s, i, client, true)
	case "efficiency":
		handleItemAutocomplete(s, i, client, false)
	default:
		slog.Warn("Unhandled autocomplete command", "command", data.Name)
	}
}

// handleItemAutocomplete suggests item names containing the typed text.
// Delivery requests only make sense for recipes, so materials are optional.
func handleItemAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient, includeMaterials bool) {
	var focused string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Focused {
			focused = opt.StringValue()
			break
		}
	}

	names, err := loadItemNames(context.Background(), client, includeMaterials)
	if err != nil {
		slog.Error("Failed to get items for autocomplete", "error", err)
	}

	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, name := range filterNames(names, focused) {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  displayName(name),
			Value: name,
		})
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	}); err != nil {
		slog.Error("Failed to respond to autocomplete", "error", err)
	}
}

func loadItemNames(ctx context.Context, client *APIClient, includeMaterials bool) ([]string, error) {
	key := itemNamesKey
	if includeMaterials {
		key += ":materials"
	}
	if names, ok := itemNames.Get(key); ok {
		return names, nil
	}

	ds, err := client.GetDataset(ctx)
	if err != nil {
		return nil, err
	}

	names := ds.RecipeNames()
	if includeMaterials {
		names = append(names, ds.MaterialNames()...)
		sort.Strings(names)
	}
	itemNames.Add(key, names)
	return names, nil
}

// filterNames keeps names containing query, case-insensitively, up to the choice limit
func filterNames(names []string, query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))

	var out []string
	for _, name := range names {
		if query == "" || strings.Contains(strings.ToLower(name), query) {
			out = append(out, name)
		}
		if len(out) >= maxAutocompleteChoices {
			break
		}
	}
	return out
}
