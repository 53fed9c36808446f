package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vied/render"
)

// LoadTheme decodes a TOML theme file into render.Theme. It starts from
// render.DefaultTheme() and decodes on top of it, so a field missing from
// the file keeps its default value and a theme file only overriding a few
// colors still produces a complete theme. An empty path returns the default
// theme unchanged.
func LoadTheme(path string) (render.Theme, error) {
	theme := render.DefaultTheme()
	if path == "" {
		return theme, nil
	}
	if _, err := toml.DecodeFile(path, &theme); err != nil {
		return render.Theme{}, fmt.Errorf("config: load theme %q: %w", path, err)
	}
	return theme, nil
}
