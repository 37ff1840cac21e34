package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 2333
	defaultEnv        = "development"

	defaultContentOwner    = "Shourya-8416"
	defaultContentRepo     = "blog-content"
	defaultDiscussionOwner = "Shourya-8416"
	defaultDiscussionRepo  = "blog-discussion"

	defaultMetricsTTLSeconds = 300
	defaultHTTPTTLSeconds    = 60

	defaultSiteTitle = "Shourya's Portfolio"
	defaultSiteURL   = "https://shourya.dev"

	githubTokenEnv = "GITHUB_TOKEN"
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int          `yaml:"port"`
	Env            string       `yaml:"env"` // "development" | "production"
	AllowedOrigins []string     `yaml:"allowed_origins"`
	Site           SiteConfig   `yaml:"site"`
	GitHub         GitHubConfig `yaml:"github"`
	Cache          CacheConfig  `yaml:"cache"`
	RedisURL       string       `yaml:"redis_url"`
}

// SiteConfig carries the public site metadata used by feeds and responses.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
}

// GitHubConfig points at the remote content and discussion repositories.
// Token is optional; without it the content API is rate-limited and
// discussion metrics are disabled entirely.
type GitHubConfig struct {
	Token      string         `yaml:"token"`
	Content    RepoCoordinate `yaml:"content"`
	Discussion RepoCoordinate `yaml:"discussion"`
}

// RepoCoordinate identifies one owner/repo pair, with an optional
// sub-path for the content listing.
type RepoCoordinate struct {
	Owner string `yaml:"owner"`
	Repo  string `yaml:"repo"`
	Path  string `yaml:"path"`
}

// CacheConfig holds TTLs for the two independent caches: the discussion
// metrics cache and the HTTP response cache.
type CacheConfig struct {
	MetricsTTLSeconds int `yaml:"metrics_ttl_seconds"`
	HTTPTTLSeconds    int `yaml:"http_ttl_seconds"`
}

type rawAppConfig struct {
	Port               int          `yaml:"port"`
	Env                string       `yaml:"env"`
	NodeEnv            string       `yaml:"node_env"`
	AllowedOrigins     []string     `yaml:"allowed_origins"`
	CORSAllowedOrigins []string     `yaml:"cors_allowed_origins"`
	Site               SiteConfig   `yaml:"site"`
	GitHub             GitHubConfig `yaml:"github"`
	Cache              CacheConfig  `yaml:"cache"`
	RedisURL           string       `yaml:"redis_url"`
	Redis              struct {
		URL string `yaml:"url"`
	} `yaml:"redis"`
}

// Load reads the YAML config file, applies defaults and validates.
// A missing file is not an error: every field has a usable default and the
// GitHub token can arrive via the GITHUB_TOKEN environment variable.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := defaultAppConfig()

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && configPath == "" {
			applyEnvFallbacks(&cfg)
			return &cfg, nil
		}
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	raw := rawAppConfig{}
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", path, err)
	}

	applyRawAppConfig(&cfg, raw)
	applyEnvFallbacks(&cfg)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d in %q, expected 1-65535", cfg.Port, path)
	}
	if cfg.Cache.MetricsTTLSeconds < 1 {
		return nil, fmt.Errorf("invalid cache.metrics_ttl_seconds %d in %q, expected >= 1", cfg.Cache.MetricsTTLSeconds, path)
	}
	if cfg.Cache.HTTPTTLSeconds < 1 {
		return nil, fmt.Errorf("invalid cache.http_ttl_seconds %d in %q, expected >= 1", cfg.Cache.HTTPTTLSeconds, path)
	}

	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port: defaultPort,
		Env:  defaultEnv,
		Site: SiteConfig{
			Title: defaultSiteTitle,
			URL:   defaultSiteURL,
		},
		GitHub: GitHubConfig{
			Content: RepoCoordinate{
				Owner: defaultContentOwner,
				Repo:  defaultContentRepo,
			},
			Discussion: RepoCoordinate{
				Owner: defaultDiscussionOwner,
				Repo:  defaultDiscussionRepo,
			},
		},
		Cache: CacheConfig{
			MetricsTTLSeconds: defaultMetricsTTLSeconds,
			HTTPTTLSeconds:    defaultHTTPTTLSeconds,
		},
	}
}

func applyRawAppConfig(cfg *AppConfig, raw rawAppConfig) {
	if raw.Port != 0 {
		cfg.Port = raw.Port
	}
	if v := strings.TrimSpace(raw.Env); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(raw.NodeEnv); v != "" {
		cfg.Env = v
	}

	switch {
	case raw.AllowedOrigins != nil:
		cfg.AllowedOrigins = normalizeOrigins(raw.AllowedOrigins)
	case raw.CORSAllowedOrigins != nil:
		cfg.AllowedOrigins = normalizeOrigins(raw.CORSAllowedOrigins)
	}

	if v := strings.TrimSpace(raw.Site.Title); v != "" {
		cfg.Site.Title = v
	}
	if v := strings.TrimSpace(raw.Site.Description); v != "" {
		cfg.Site.Description = v
	}
	if v := strings.TrimSpace(raw.Site.URL); v != "" {
		cfg.Site.URL = strings.TrimRight(v, "/")
	}

	if v := strings.TrimSpace(raw.GitHub.Token); v != "" {
		cfg.GitHub.Token = v
	}
	cfg.GitHub.Content = applyRepoCoordinate(cfg.GitHub.Content, raw.GitHub.Content)
	cfg.GitHub.Discussion = applyRepoCoordinate(cfg.GitHub.Discussion, raw.GitHub.Discussion)

	if raw.Cache.MetricsTTLSeconds != 0 {
		cfg.Cache.MetricsTTLSeconds = raw.Cache.MetricsTTLSeconds
	}
	if raw.Cache.HTTPTTLSeconds != 0 {
		cfg.Cache.HTTPTTLSeconds = raw.Cache.HTTPTTLSeconds
	}

	if v := strings.TrimSpace(raw.RedisURL); v != "" {
		cfg.RedisURL = v
	}
	if v := strings.TrimSpace(raw.Redis.URL); v != "" {
		cfg.RedisURL = v
	}

	cfg.Env = normalizeEnv(cfg.Env)
}

func applyRepoCoordinate(current, raw RepoCoordinate) RepoCoordinate {
	if v := strings.TrimSpace(raw.Owner); v != "" {
		current.Owner = v
	}
	if v := strings.TrimSpace(raw.Repo); v != "" {
		current.Repo = v
	}
	if v := strings.Trim(strings.TrimSpace(raw.Path), "/"); v != "" {
		current.Path = v
	}
	return current
}

func applyEnvFallbacks(cfg *AppConfig) {
	if cfg.GitHub.Token == "" {
		cfg.GitHub.Token = strings.TrimSpace(os.Getenv(githubTokenEnv))
	}
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, origin := range origins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(env string) string {
	trimmed := strings.ToLower(strings.TrimSpace(env))
	if trimmed == "" {
		return defaultEnv
	}
	return trimmed
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(c.Env, defaultEnv)
}

// MetricsTTL returns the discussion metrics cache validity window.
func (c *AppConfig) MetricsTTL() time.Duration {
	return time.Duration(c.Cache.MetricsTTLSeconds) * time.Second
}

// HTTPCacheTTL returns the response cache revalidation interval.
func (c *AppConfig) HTTPCacheTTL() time.Duration {
	return time.Duration(c.Cache.HTTPTTLSeconds) * time.Second
}
