// Package config holds the extraction run configuration: target URL,
// timeouts, and the ordered selector fallback chains. Values come from
// built-in defaults, optionally overridden by a YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"patentdates/internal/page"
)

// Config is the top-level run configuration.
type Config struct {
	// URL is the patent search page to drive.
	URL string `yaml:"url"`

	// Headless controls whether Chrome runs without a visible window.
	Headless bool `yaml:"headless"`

	// ResolveTimeout bounds each individual descriptor resolution attempt.
	ResolveTimeout time.Duration `yaml:"resolve_timeout"`

	// SettleDelay is the bounded wait after submitting the search and
	// after opening a result.
	SettleDelay time.Duration `yaml:"settle_delay"`

	// NavigateTimeout bounds the initial page load.
	NavigateTimeout time.Duration `yaml:"navigate_timeout"`

	Selectors Selectors `yaml:"selectors"`
}

// Selectors groups the four fallback chains, each ordered
// most-specific-first.
type Selectors struct {
	SearchBox []page.Descriptor `yaml:"search_box"`
	Consent   []page.Descriptor `yaml:"consent"`
	Result    []page.Descriptor `yaml:"result"`
	Sections  []page.Descriptor `yaml:"sections"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{Headless: true}
	cfg.applyDefaults()
	return cfg
}

// LoadFile reads a YAML configuration file over the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.URL == "" {
		c.URL = "https://patents.google.com/"
	}
	if c.ResolveTimeout <= 0 {
		c.ResolveTimeout = 5 * time.Second
	}
	if c.SettleDelay <= 0 {
		c.SettleDelay = 2 * time.Second
	}
	if c.NavigateTimeout <= 0 {
		c.NavigateTimeout = 30 * time.Second
	}
	if len(c.Selectors.SearchBox) == 0 {
		c.Selectors.SearchBox = []page.Descriptor{
			{Name: "search input by id", Selector: "input#searchInput"},
			{Name: "named query input", Selector: `input[name="q"]`},
			{Name: "search-typed input", Selector: `input[type="search"]`},
			{Name: "any text input", Selector: `input[type="text"]`},
		}
	}
	if len(c.Selectors.Consent) == 0 {
		c.Selectors.Consent = []page.Descriptor{
			{Name: "consent accept by id", Selector: "button#consent-accept"},
			{Name: "accept-labelled button", Selector: `button[aria-label*="Accept"]`},
			{Name: "consent form button", Selector: `form[action*="consent"] button`},
		}
	}
	if len(c.Selectors.Result) == 0 {
		c.Selectors.Result = []page.Descriptor{
			{Name: "result item link", Selector: "search-result-item a"},
			{Name: "result article link", Selector: "article.result a"},
			{Name: "result row link", Selector: ".result a"},
			// Generic catch-all: first link inside any results container.
			{Name: "any results link", Selector: `[id*="result"] a, [class*="result"] a`},
		}
	}
	if len(c.Selectors.Sections) == 0 {
		c.Selectors.Sections = []page.Descriptor{
			{Name: "legal events table", Selector: "table.legal-events"},
			{Name: "application timeline", Selector: "section#application-timeline"},
			{Name: "patent dates list", Selector: "dl.patent-dates"},
			{Name: "any detail table", Selector: "table"},
			{Name: "any section", Selector: "section"},
		}
	}
}
