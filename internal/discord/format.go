package discord

import (
	"fmt"
	"math"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/CraftValue_Go/internal/domain"
	"github.com/osse101/CraftValue_Go/internal/stamina"
)

var titleCaser = cases.Title(language.English)

// displayName renders a dataset key for chat: "iron_ingot" becomes "Iron Ingot"
func displayName(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "_", " "))
}

// formatCoins rounds to whole coins with thousands separators
func formatCoins(v float64) string {
	n := int64(math.Round(v))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := fmt.Sprint(n)
	var sb strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(d)
	}
	return sign + sb.String()
}

func costEmbed(c *CostSummary) *discordgo.MessageEmbed {
	description := fmt.Sprintf(
		"**Total cost:** %s coins\n**Materials:** %s coins\n**Stamina:** %s",
		formatCoins(c.TotalCost), formatCoins(c.MaterialCost), formatCoins(c.Stamina))
	return createEmbed("💰 "+displayName(c.Item), description, ColorInfo)
}

func efficiencyEmbed(r *domain.EfficiencyResult, reward float64) *discordgo.MessageEmbed {
	f := r.Formatted()

	var sb strings.Builder
	if f.Recommend {
		fmt.Fprintf(&sb, "✅ **Deliver %d times**\n", f.Deliveries())
	} else {
		sb.WriteString("⛔ **Not worth delivering**\n")
	}
	fmt.Fprintf(&sb, "**Reward:** %s coins\n", formatCoins(reward))
	fmt.Fprintf(&sb, "**Unit cost:** %s coins\n", formatCoins(f.UnitCost))
	fmt.Fprintf(&sb, "**Items crafted:** %d\n", f.TotalItems)
	fmt.Fprintf(&sb, "**Total cost:** %s coins\n", formatCoins(f.TotalCost))
	fmt.Fprintf(&sb, "**Stamina:** %s\n", formatCoins(f.TotalStamina))
	fmt.Fprintf(&sb, "**Profit:** %s coins\n", formatCoins(f.TotalProfit))
	fmt.Fprintf(&sb, "**Average efficiency:** %.4f", f.AverageEfficiency)

	color := ColorSkip
	if f.Recommend {
		color = ColorRecommend
	}
	title := fmt.Sprintf("📦 %s (mode %s)", displayName(f.Item), f.Mode)
	return createEmbed(title, sb.String(), color)
}

func staminaValueEmbed(level int, value float64) *discordgo.MessageEmbed {
	description := fmt.Sprintf("One stamina point is worth **%s coins** at work-life balance level %d.", formatCoins(value), level)
	if value >= stamina.NeverWorthIt {
		description = fmt.Sprintf("At work-life balance level %d, stamina is never worth spending on crafts.", level)
	}
	return createEmbed("⚡ Stamina Value", description, ColorStamina)
}
