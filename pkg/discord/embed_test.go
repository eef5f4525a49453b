package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sitelang/internal/domain/entities"
)

func TestBuildResolutionEmbed(t *testing.T) {
	site := entities.DefaultSite()
	res := entities.Resolution{
		From:  entities.ResolvedLocation{Language: entities.Primary, Slug: "carte.html"},
		To:    entities.ResolvedLocation{Language: entities.Secondary, Slug: "map"},
		Path:  "/pages/en/map.html",
		Stage: entities.StageDirect,
	}

	e := BuildResolutionEmbed(site, res)
	assert.Equal(t, "`/pages/en/map.html`", e.Description)
	assert.Equal(t, embedColor, e.Color)
	assert.Equal(t, "fr · carte.html", e.Fields[0].Value)
	assert.Equal(t, "en · map", e.Fields[1].Value)

	res.Stage = entities.StageFallback
	assert.Equal(t, embedColorFallback, BuildResolutionEmbed(site, res).Color)
}
