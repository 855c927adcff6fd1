package importer

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"upath/internal/domain/resource"
	"upath/internal/pkg/validate"

	"gopkg.in/yaml.v3"
)

const (
	defaultPages    = 1
	defaultSelector = "a[href]"
)

// Source describes one listing site. ListURL may contain a single %d which
// is replaced with the page number.
type Source struct {
	Name         string `yaml:"name" json:"name" validate:"notblank"`
	Category     string `yaml:"category" json:"category" validate:"required,oneof=Scholarships Jobs College"`
	ListURL      string `yaml:"list_url" json:"list_url" validate:"required"`
	LinkContains string `yaml:"link_contains" json:"link_contains"`
	LinkSelector string `yaml:"link_selector" json:"link_selector"`
	Headless     bool   `yaml:"headless" json:"headless"`
	Pages        int    `yaml:"pages" json:"pages" validate:"gte=0,lte=50"`
}

type sourceFile struct {
	Sources []Source `yaml:"sources"`
}

func LoadSources(path string) ([]Source, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources: %w", err)
	}
	return ParseSources(b)
}

// ParseSources decodes and validates a sources document. Categories are
// matched case-insensitively and stored in canonical form.
func ParseSources(data []byte) ([]Source, error) {
	var f sourceFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse sources: %w", err)
	}

	seen := make(map[string]bool, len(f.Sources))
	out := make([]Source, 0, len(f.Sources))
	for i, s := range f.Sources {
		s.Name = strings.TrimSpace(s.Name)
		s.ListURL = strings.TrimSpace(s.ListURL)
		if c, ok := resource.NormalizeCategory(s.Category); ok {
			s.Category = c
		}
		if err := validate.Default().Validate(s); err != nil {
			return nil, fmt.Errorf("source %d: %s", i+1, validate.Message(err))
		}
		if u, err := url.Parse(s.PageURL(1)); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("source %d: list_url must be an absolute http(s) URL", i+1)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("source %d: duplicate name %q", i+1, s.Name)
		}
		seen[s.Name] = true

		if s.Pages == 0 {
			s.Pages = defaultPages
		}
		if strings.TrimSpace(s.LinkSelector) == "" {
			s.LinkSelector = defaultSelector
		}
		out = append(out, s)
	}
	return out, nil
}

func (s Source) PageURL(page int) string {
	if strings.Contains(s.ListURL, "%d") {
		return fmt.Sprintf(s.ListURL, page)
	}
	return s.ListURL
}
