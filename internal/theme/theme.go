package theme

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Palette holds the three style tokens applied to frame content. The tokens
// are raw terminal formatting codes; nothing downstream interprets them.
type Palette struct {
	Accent string
	Dim    string
	Glow   string
}

// Spec couples a palette with the label shown in the session meta block.
type Spec struct {
	Label   string
	Palette Palette
}

// Built-in theme names.
const (
	Neon   = "neon"
	Amber  = "amber"
	Arctic = "arctic"
)

var builtins = map[string]Palette{
	Neon:   {Accent: "\x1b[38;5;214m", Dim: "\x1b[38;5;238m", Glow: "\x1b[38;5;51m"},
	Amber:  {Accent: "\x1b[38;5;178m", Dim: "\x1b[38;5;94m", Glow: "\x1b[38;5;221m"},
	Arctic: {Accent: "\x1b[38;5;195m", Dim: "\x1b[38;5;250m", Glow: "\x1b[38;5;117m"},
}

// Names lists the built-in theme names in presentation order.
func Names() []string {
	return []string{Neon, Amber, Arctic}
}

// Builtin resolves a built-in theme by name (case-insensitive).
func Builtin(name string) (Spec, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	palette, ok := builtins[key]
	if !ok {
		return Spec{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return Spec{Label: key, Palette: palette}, nil
}

// LoadFile reads a TOML theme file with accent/dim/glow tokens and an
// optional name. A missing name falls back to the file stem.
func LoadFile(path string) (Spec, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return Spec{}, fmt.Errorf("theme file %s: %w", path, err)
	}

	for _, key := range []string{"accent", "dim", "glow"} {
		if !v.IsSet(key) {
			return Spec{}, fmt.Errorf("theme file %s: missing %q", path, key)
		}
	}

	label := strings.TrimSpace(v.GetString("name"))
	if label == "" {
		label = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if label == "" {
		return Spec{}, fmt.Errorf("theme file %s: no usable theme name", path)
	}

	return Spec{
		Label: label,
		Palette: Palette{
			Accent: v.GetString("accent"),
			Dim:    v.GetString("dim"),
			Glow:   v.GetString("glow"),
		},
	}, nil
}
