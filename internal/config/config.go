package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"sitelang/internal/domain/entities"
)

// Mapping sources.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	HTTPAddr          string
	SiteRoot          string
	PrimaryLang       string
	SecondaryLang     string
	PagesPrefix       string
	PageExtension     string
	DefaultConvention entities.Convention
	MappingSource     string
	MappingFile       string
	DatabaseURL       string
	MigrationsPath    string
	Token             string
	GuildID           string
	LogLevel          string
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	}

	cfg := &Config{
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		SiteRoot:       getEnv("SITE_ROOT", "./site"),
		PrimaryLang:    getEnv("PRIMARY_LANG", "fr"),
		SecondaryLang:  getEnv("SECONDARY_LANG", "en"),
		PagesPrefix:    getEnv("PAGES_PREFIX", "pages"),
		PageExtension:  getEnv("PAGE_EXTENSION", ".html"),
		MappingSource:  getEnv("MAPPING_SOURCE", SourceEmbedded),
		MappingFile:    os.Getenv("MAPPING_FILE"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),
		Token:          os.Getenv("TOKEN"),
		GuildID:        os.Getenv("GUILD_ID"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}

	conv, ok := entities.ParseConvention(getEnv("DEFAULT_CONVENTION", "nested"))
	if !ok {
		return nil, fmt.Errorf("config: DEFAULT_CONVENTION doit valoir nested ou flat")
	}
	cfg.DefaultConvention = conv

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Site returns the URL conventions described by the configuration.
func (c *Config) Site() entities.Site {
	site := entities.DefaultSite()
	site.PrimaryCode = c.PrimaryLang
	site.SecondaryCode = c.SecondaryLang
	site.Prefix = c.PagesPrefix
	site.Extension = c.PageExtension
	site.DefaultConvention = c.DefaultConvention
	return site
}

// ValidateBot vérifie les variables nécessaires au bot Discord.
func (c *Config) ValidateBot() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN est requis et ne peut pas être vide")
	}
	for _, r := range c.GuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: GUILD_ID doit être un ID de serveur Discord (chiffres uniquement)")
		}
	}
	return nil
}

// ValidateDatabase vérifie DATABASE_URL.
func (c *Config) ValidateDatabase() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Valeur par défaut utile en local lorsque DATABASE_URL n'est pas fournie.
		c.DatabaseURL = "postgres://localhost:5432/sitelang?sslmode=disable"
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): scheme ou host manquant", c.DatabaseURL)
	}
	return nil
}

// validate applique toutes les règles métier sur la configuration chargée.
func (c *Config) validate() error {
	if strings.TrimSpace(c.PrimaryLang) == "" || strings.TrimSpace(c.SecondaryLang) == "" {
		return fmt.Errorf("config: PRIMARY_LANG et SECONDARY_LANG sont requis")
	}
	if strings.EqualFold(c.PrimaryLang, c.SecondaryLang) {
		return fmt.Errorf("config: PRIMARY_LANG et SECONDARY_LANG doivent être différents")
	}
	if strings.Contains(c.PagesPrefix, "/") {
		return fmt.Errorf("config: PAGES_PREFIX ne doit pas contenir de /")
	}
	if c.PageExtension != "" && !strings.HasPrefix(c.PageExtension, ".") {
		return fmt.Errorf("config: PAGE_EXTENSION doit commencer par un point (%q)", c.PageExtension)
	}

	switch c.MappingSource {
	case SourceEmbedded:
	case SourceFile:
		if strings.TrimSpace(c.MappingFile) == "" {
			return fmt.Errorf("config: MAPPING_FILE est requis lorsque MAPPING_SOURCE=file")
		}
	case SourcePostgres:
		if err := c.ValidateDatabase(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("config: MAPPING_SOURCE inconnu (%q), attendu embedded, file ou postgres", c.MappingSource)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
