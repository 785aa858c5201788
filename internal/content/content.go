// Package content holds the static copy and tool catalog rendered by the
// landing page.
package content

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"vismify/internal/domain"
)

//go:embed site.yaml
var siteYAML []byte

var (
	ErrDuplicateToolID = errors.New("duplicate tool id")
	ErrInvalidCategory = errors.New("invalid tool category")
	ErrInvalidRating   = errors.New("tool rating out of range")
)

// Load parses site content and checks that every catalog record can be
// matched by the category filter.
func Load(data []byte) (*domain.SiteContent, error) {
	var site domain.SiteContent
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("parse site content: %w", err)
	}

	if err := validateTools(site.Tools); err != nil {
		return nil, err
	}

	return &site, nil
}

// Default returns the embedded site content.
func Default() (*domain.SiteContent, error) {
	return Load(siteYAML)
}

func validateTools(tools []domain.Tool) error {
	seen := make(map[int]struct{}, len(tools))
	for _, tool := range tools {
		if _, ok := seen[tool.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateToolID, tool.ID)
		}
		seen[tool.ID] = struct{}{}

		if tool.Category == domain.CategoryAll || !tool.Category.IsValid() {
			return fmt.Errorf("%w: tool %d has %q", ErrInvalidCategory, tool.ID, tool.Category)
		}
		if tool.Rating < 0 || tool.Rating > 5 {
			return fmt.Errorf("%w: tool %d has %.1f", ErrInvalidRating, tool.ID, tool.Rating)
		}
		if strings.TrimSpace(tool.Title) == "" {
			return fmt.Errorf("tool %d has no title", tool.ID)
		}
	}
	return nil
}

// Source serves the catalog straight from site content.
type Source struct {
	tools []domain.Tool
}

func NewSource(site *domain.SiteContent) *Source {
	return &Source{tools: site.Tools}
}

func (s *Source) ListTools(ctx context.Context) ([]domain.Tool, error) {
	out := make([]domain.Tool, len(s.tools))
	copy(out, s.tools)
	return out, nil
}
