// Package styles defines the visual styling for here's terminal output.
//
// All styles use semantic names and adaptive colors that automatically
// adjust to light and dark terminal themes. Definitions are loaded from an
// embedded styles.yaml and turned into lipgloss styles on demand, bound to
// whichever lipgloss renderer the caller writes through.
package styles

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Style names used across the code base
const (
	Accent      = "Accent"
	Warning     = "Warning"
	Error       = "Error"
	Muted       = "Muted"
	PromptTitle = "PromptTitle"
	Cursor      = "Cursor"
	Selected    = "Selected"
	Option      = "Option"
	Help        = "Help"
)

//go:embed styles.yaml
var embeddedStyles []byte

var (
	definitions map[string]StyleDef
	colors      map[string]lipgloss.AdaptiveColor
)

func init() {
	if err := LoadStylesFromData(embeddedStyles); err != nil {
		initDefaultStyles()
	}
}

// initDefaultStyles registers every known name with no decoration so the
// program can run even if styles.yaml is broken
func initDefaultStyles() {
	colors = make(map[string]lipgloss.AdaptiveColor)
	definitions = make(map[string]StyleDef)
	for _, name := range []string{Accent, Warning, Error, Muted, PromptTitle, Cursor, Selected, Option, Help} {
		definitions[name] = StyleDef{}
	}
}

// LoadStyles loads style configuration from a YAML file
func LoadStyles(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read styles file %s: %w", path, err)
	}
	return LoadStylesFromData(data)
}

// LoadStylesFromData loads style configuration from byte data
func LoadStylesFromData(data []byte) error {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse styles data: %w", err)
	}

	for name, def := range config.Styles {
		for _, ref := range []string{def.Foreground, def.Background} {
			if ref == "" {
				continue
			}
			if _, ok := config.Colors[ref]; !ok {
				return fmt.Errorf("style %s references unknown color %q", name, ref)
			}
		}
	}

	colors = make(map[string]lipgloss.AdaptiveColor)
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{
			Light: def.Light,
			Dark:  def.Dark,
		}
	}

	definitions = make(map[string]StyleDef, len(config.Styles))
	for name, def := range config.Styles {
		definitions[name] = def
	}

	return nil
}

// Names returns every registered style name
func Names() []string {
	names := make([]string, 0, len(definitions))
	for name := range definitions {
		names = append(names, name)
	}
	return names
}

// GetStyleFor retrieves a style bound to r. Unknown names yield a plain style.
func GetStyleFor(r *lipgloss.Renderer, name string) lipgloss.Style {
	style := r.NewStyle()
	def, ok := definitions[name]
	if !ok {
		return style
	}

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if color, ok := colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}
	if color, ok := colors[def.Background]; ok {
		style = style.Background(color)
	}

	return style
}
