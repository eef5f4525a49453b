package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"sitelang/internal/domain/entities"
)

const (
	embedColor         = 0x5865F2
	embedColorFallback = 0xFEE75C
	embedTitle         = "🌐 Page équivalente"
)

// BuildResolutionEmbed summarises a resolution: source page, target page and
// which lookup matched. Fallbacks are shown in yellow.
func BuildResolutionEmbed(site entities.Site, res entities.Resolution) *discordgo.MessageEmbed {
	color := embedColor
	if res.Stage == entities.StageFallback {
		color = embedColorFallback
	}
	return &discordgo.MessageEmbed{
		Title:       embedTitle,
		Description: fmt.Sprintf("`%s`", res.Path),
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Source", Value: fmt.Sprintf("%s · %s", site.Code(res.From.Language), res.From.Slug), Inline: true},
			{Name: "Cible", Value: fmt.Sprintf("%s · %s", site.Code(res.To.Language), res.To.Slug), Inline: true},
			{Name: "Étape", Value: string(res.Stage), Inline: true},
		},
	}
}
