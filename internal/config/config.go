package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"retrobeam/internal/theme"
)

const (
	// MinFrameWidth is the narrowest frame the renderer accepts; resolution
	// and runtime adjustment both clamp to it.
	MinFrameWidth = 40

	defaultFrameWidth = 120
	defaultTitle      = "Retro Beam Terminal"
	defaultBannerPath = "presentations/banner.txt"
)

// Options carries the raw command-line surface before resolution against the
// environment. Zero values mean "not provided".
type Options struct {
	Script     string
	Banner     string
	Title      string
	FrameWidth int
	Theme      string
	ThemePath  string
	Instant    bool
	SkipBanner bool
	Watch      bool
	Debounce   time.Duration
}

// Config is the resolved presentation configuration. Only FrameWidth mutates
// after resolution, through AdjustFrameWidth.
type Config struct {
	ScriptPath    string
	FrameWidth    int
	Palette       theme.Palette
	ThemeLabel    string
	Title         string
	BannerPath    string
	Animations    bool
	Watch         bool
	WatchDebounce time.Duration
}

// Resolve merges flags, process environment and a best-effort .env overlay
// into a Config. Precedence is flag, then environment, then default.
func Resolve(opts Options) (*Config, error) {
	_ = godotenv.Load()

	spec, err := resolveTheme(opts)
	if err != nil {
		return nil, err
	}

	palette := spec.Palette
	if v := os.Getenv("COLOR_ACCENT"); v != "" {
		palette.Accent = v
	}
	if v := os.Getenv("COLOR_DIM"); v != "" {
		palette.Dim = v
	}
	if v := os.Getenv("COLOR_GLOW"); v != "" {
		palette.Glow = v
	}

	width := opts.FrameWidth
	if width <= 0 {
		if v := os.Getenv("FRAME_WIDTH"); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil {
				width = parsed
			}
		}
	}
	if width <= 0 {
		width = defaultFrameWidth
	}
	width = clampWidth(width)

	title := opts.Title
	if title == "" {
		title = os.Getenv("PRESENTATION_TITLE")
	}
	if title == "" {
		title = defaultTitle
	}

	banner := ""
	if !opts.SkipBanner {
		banner = opts.Banner
		if banner == "" {
			banner = os.Getenv("DEFAULT_BANNER_PATH")
		}
		if banner == "" {
			banner = defaultBannerPath
		}
	}

	return &Config{
		ScriptPath:    opts.Script,
		FrameWidth:    width,
		Palette:       palette,
		ThemeLabel:    spec.Label,
		Title:         title,
		BannerPath:    banner,
		Animations:    !opts.Instant,
		Watch:         opts.Watch,
		WatchDebounce: opts.Debounce,
	}, nil
}

func resolveTheme(opts Options) (theme.Spec, error) {
	if opts.ThemePath != "" {
		return theme.LoadFile(opts.ThemePath)
	}
	name := opts.Theme
	if name == "" {
		name = os.Getenv("PRESENTATION_THEME")
	}
	if name == "" {
		name = theme.Neon
	}
	spec, err := theme.Builtin(name)
	if err != nil {
		return theme.Spec{}, fmt.Errorf("resolve theme: %w", err)
	}
	return spec, nil
}

// AdjustFrameWidth shifts the frame width by delta, clamped to MinFrameWidth,
// and reports whether the effective width changed.
func (c *Config) AdjustFrameWidth(delta int) bool {
	next := clampWidth(c.FrameWidth + delta)
	if next == c.FrameWidth {
		return false
	}
	c.FrameWidth = next
	return true
}

func clampWidth(width int) int {
	if width < MinFrameWidth {
		return MinFrameWidth
	}
	return width
}
