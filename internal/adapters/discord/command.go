package discord

import (
	"net/url"
	"strings"

	"github.com/bwmarrin/discordgo"

	"sitelang/internal/domain"
	"sitelang/internal/domain/entities"
	pkgdiscord "sitelang/pkg/discord"
)

const (
	linkCommandName = "lien"
	optionURL       = "url"
	optionLang      = "lang"
)

func linkCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        linkCommandName,
		Description: "Trouver la page équivalente dans l'autre langue",
		DescriptionLocalizations: &map[discordgo.Locale]string{
			discordgo.EnglishUS: "Find the equivalent page in the other language",
			discordgo.EnglishGB: "Find the equivalent page in the other language",
		},
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optionURL,
				Description: "URL ou chemin de la page (ex: /pages/fr/contact.html)",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optionLang,
				Description: "Attribut lang de la page, si connu (ex: en-CA)",
				Required:    false,
			},
		},
	}
}

// HandleLinkCommand answers /lien with the equivalent-language path.
func (h *Handler) HandleLinkCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	locale := string(i.Locale)
	opts := optionMap(i.ApplicationCommandData().Options)

	content, res, ok := h.linkReply(locale, opts[optionURL], opts[optionLang])
	if !ok {
		respondEphemeral(s, i.Interaction, content)
		return
	}
	respondEphemeralEmbed(s, i.Interaction, content, pkgdiscord.BuildResolutionEmbed(h.switcher.Site(), res))
}

// linkReply computes the reply text. ok is false when nothing could be resolved.
func (h *Handler) linkReply(locale, rawURL, langAttr string) (string, entities.Resolution, bool) {
	p := pagePath(rawURL)
	if p == "" {
		return h.translator.T(locale, "chat.link.missing_url", nil), entities.Resolution{}, false
	}
	if h.catalog.Current() == nil {
		return pkgdiscord.DomainErrorMessage(h.translator, locale, domain.ErrCatalogUnavailable), entities.Resolution{}, false
	}

	res := h.switcher.Resolve(entities.Location{Path: p, LangAttr: langAttr})
	data := map[string]any{"Path": res.Path, "Slug": res.From.Slug}
	if res.Stage == entities.StageFallback {
		return h.translator.T(locale, "chat.link.fallback", data), res, true
	}
	return h.translator.T(locale, "chat.link.result", data), res, true
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]string {
	out := make(map[string]string, len(options))
	for _, o := range options {
		if o.Type == discordgo.ApplicationCommandOptionString {
			out[o.Name] = o.StringValue()
		}
	}
	return out
}

// pagePath accepts a full URL or a bare path and keeps the path.
func pagePath(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if u.Path == "" && u.Host == "" {
		return ""
	}
	if u.Path == "" {
		return "/"
	}
	return u.Path
}
