package installer

import (
	"runtime"

	"github.com/arthur-debert/loadout/pkg/config"
	"github.com/arthur-debert/loadout/pkg/errors"
	"github.com/arthur-debert/loadout/pkg/paths"
)

// Platform identifies the host for the Homebrew location check.
type Platform struct {
	OS   string
	Arch string
}

// CurrentPlatform returns the platform loadout was built for.
func CurrentPlatform() Platform {
	return Platform{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

// Category is one install pass.
type Category struct {
	Name     string
	Title    string
	ListPath string
	Command  string
	// Fallbacks are absolute command paths tried when Command is not on PATH.
	Fallbacks []string
	Strategy  Strategy
}

var titles = map[string]string{
	config.CategoryHomebrew: "Homebrew packages",
	config.CategoryUV:       "uv tools",
	config.CategoryVSCode:   "VSCode extensions",
}

// Title returns the display name of a category.
func Title(category string) string {
	if title, ok := titles[category]; ok {
		return title
	}
	return category
}

// NewCategory builds the pass for a category name.
func NewCategory(name, listPath, command string, platform Platform) (Category, error) {
	c := Category{
		Name:     name,
		Title:    Title(name),
		ListPath: listPath,
		Command:  command,
	}

	switch name {
	case config.CategoryHomebrew:
		c.Strategy = NewHomebrewStrategy()
		c.Fallbacks = paths.HomebrewFallbacks(platform.OS, platform.Arch)
	case config.CategoryUV:
		c.Strategy = NewUVStrategy()
	case config.CategoryVSCode:
		c.Strategy = NewVSCodeStrategy()
	default:
		return Category{}, errors.Newf(errors.ErrCategoryUnknown, "unknown category %q", name).
			WithDetail("category", name)
	}

	return c, nil
}

// Categories builds the passes selected by names, always in the fixed
// install order. An empty selection means every category.
func Categories(cfg *config.Config, names []string, platform Platform) ([]Category, error) {
	selected := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := titles[name]; !ok {
			return nil, errors.Newf(errors.ErrCategoryUnknown, "unknown category %q (want one of homebrew, uv, vscode)", name).
				WithDetail("category", name)
		}
		selected[name] = true
	}

	var categories []Category
	for _, name := range config.Categories {
		if len(selected) > 0 && !selected[name] {
			continue
		}

		listPath, err := cfg.ListPath(name)
		if err != nil {
			return nil, err
		}
		command, err := cfg.Command(name)
		if err != nil {
			return nil, err
		}

		category, err := NewCategory(name, listPath, command, platform)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, nil
}
