// Package prompt holds the instruction templates the action router prepends
// to upstream requests.
package prompt

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	app_errors "study-buddy/backend/internal/errors"
	"study-buddy/backend/internal/model"
)

//go:embed templates.toml
var defaultTemplates string

// Template is the instruction for one action.
type Template struct {
	System string `toml:"system"`
}

// Catalog maps every action to exactly one instruction template.
type Catalog struct {
	templates map[model.Action]string
}

// LoadCatalog decodes the embedded templates and, when overridePath is not
// empty, replaces the entries found in that TOML file. Every action must end
// up with a non-empty template.
func LoadCatalog(overridePath string) (*Catalog, error) {
	var defaults map[string]Template
	if _, err := toml.Decode(defaultTemplates, &defaults); err != nil {
		return nil, fmt.Errorf("error decoding embedded templates: %w", err)
	}

	if overridePath != "" {
		var overrides map[string]Template
		if _, err := toml.DecodeFile(overridePath, &overrides); err != nil {
			return nil, fmt.Errorf("error decoding prompt file %s: %w", overridePath, err)
		}
		for name, tmpl := range overrides {
			if !model.Action(name).Valid() {
				return nil, fmt.Errorf("%w: prompt file %s defines unknown action %q", app_errors.ErrValidation, overridePath, name)
			}
			defaults[name] = tmpl
		}
	}

	return newCatalog(defaults)
}

func newCatalog(raw map[string]Template) (*Catalog, error) {
	c := &Catalog{templates: make(map[model.Action]string, len(model.Actions))}
	for _, action := range model.Actions {
		system := strings.TrimSpace(raw[string(action)].System)
		if system == "" {
			return nil, fmt.Errorf("%w: no instruction template for action %q", app_errors.ErrConfigurationMissing, action)
		}
		c.templates[action] = system
	}
	return c, nil
}

// Instruction returns the system instruction for an action, followed by the
// language instruction when languageCode names a known language.
func (c *Catalog) Instruction(action model.Action, languageCode string) (string, error) {
	system, ok := c.templates[action]
	if !ok {
		return "", fmt.Errorf("%w: unknown action %q", app_errors.ErrValidation, action)
	}
	if lang := LanguageInstruction(languageCode); lang != "" {
		system += "\n\n" + lang
	}
	return system, nil
}
