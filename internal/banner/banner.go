// Package banner prints the startup ASCII banner with a CRT-style warm-up
// and per-line glow animation. It writes straight to the session output and
// never retries a failed write.
package banner

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"retrobeam/internal/config"
)

const (
	reset     = "\x1b[0m"
	bold      = "\x1b[1m"
	cursorUp  = "\x1b[1A"
	clearLine = "\x1b[0K"
)

var warmupPhases = []string{
	"[.. ] spinning up retro tube",
	"[<. ] calibrating scanline",
	"[<<.] loading phosphor pigment",
	"[<<<] ready to beam",
}

// Show reads the banner file from cfg and prints it, animated when
// animations are enabled. A missing or unreadable banner file is an error.
func Show(w io.Writer, cfg *config.Config) error {
	data, err := os.ReadFile(cfg.BannerPath)
	if err != nil {
		return fmt.Errorf("banner %s: %w", cfg.BannerPath, err)
	}

	out := &sticky{w: w}
	warmup(out, cfg)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	for _, line := range lines {
		if cfg.Animations {
			out.printf("%s%s%s\n", cfg.Palette.Dim, line, reset)
			pause(cfg, 60*time.Millisecond)
			out.printf("%s\r%s%s%s%s%s\n", cursorUp, cfg.Palette.Glow, bold, line, reset, clearLine)
			pause(cfg, 110*time.Millisecond)
		} else {
			out.printf("%s%s%s%s\n", cfg.Palette.Glow, bold, line, reset)
		}
	}

	pause(cfg, 240*time.Millisecond)
	return out.err
}

func warmup(out *sticky, cfg *config.Config) {
	if !cfg.Animations {
		return
	}
	for _, phase := range warmupPhases {
		out.printf("\r%s%s%s", cfg.Palette.Dim, phase, reset)
		pause(cfg, 220*time.Millisecond)
	}
	out.printf("\r%s", clearLine)
}

func pause(cfg *config.Config, d time.Duration) {
	if cfg.Animations {
		time.Sleep(d)
	}
}

// sticky keeps the first write error and turns later writes into no-ops.
type sticky struct {
	w   io.Writer
	err error
}

func (s *sticky) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}
