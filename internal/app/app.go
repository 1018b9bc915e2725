package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"pkt.systems/pslog"

	"retrobeam/internal/banner"
	"retrobeam/internal/config"
	"retrobeam/internal/frame"
	"retrobeam/internal/present"
	"retrobeam/internal/segment"
	"retrobeam/internal/watch"
)

const (
	reset  = "\x1b[0m"
	bold   = "\x1b[1m"
	italic = "\x1b[3m"
)

// Run resolves configuration, prints the opening chrome, classifies the
// script and drives the interactive session. With watching enabled it reruns
// classification and a fresh session on every accepted script change.
func Run(ctx context.Context, opts config.Options) error {
	cfg, err := config.Resolve(opts)
	if err != nil {
		return err
	}

	out := os.Stdout

	if cfg.BannerPath != "" {
		if err := banner.Show(out, cfg); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, frame.TitleRule(cfg.Title, cfg.FrameWidth, cfg.Palette))
	printSessionMeta(out, cfg)

	reason, err := runOnce(cfg, out)
	if err != nil {
		return err
	}
	if !cfg.Watch || reason == present.ReasonQuit {
		return nil
	}

	log := pslog.Ctx(ctx)
	log.Info("watching script", "path", cfg.ScriptPath, "debounce", cfg.WatchDebounce)
	return watch.Watch(ctx, cfg.ScriptPath, cfg.WatchDebounce, func() bool {
		log.Info("script changed, re-rendering", "path", cfg.ScriptPath)
		reason, err := runOnce(cfg, out)
		if err != nil {
			log.Error("re-render failed", "err", err)
			return false
		}
		return reason != present.ReasonQuit
	})
}

// runOnce performs one classify-and-present pass over the script. An empty
// script renders the empty frame and skips the interactive session entirely.
func runOnce(cfg *config.Config, out io.Writer) (present.ExitReason, error) {
	lines, err := ReadScript(cfg.ScriptPath)
	if err != nil {
		return present.ReasonQuit, err
	}

	segments := segment.ClassifyLines(lines)
	if len(segments) == 0 {
		printEmptyFrame(out, cfg)
		return present.ReasonCompleted, nil
	}

	return present.Run(cfg, segments)
}

func printEmptyFrame(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, frame.Top(cfg.FrameWidth, cfg.Palette))
	fmt.Fprintln(out, frame.EmptyNotice(cfg.FrameWidth, cfg.Palette))
	fmt.Fprintln(out, frame.Bottom(cfg.FrameWidth, cfg.Palette))
	fmt.Fprintf(out, "%s⚠ %s%sno content to display%s\n",
		cfg.Palette.Dim, cfg.Palette.Accent, italic, reset)
}

func printSessionMeta(out io.Writer, cfg *config.Config) {
	pal := cfg.Palette
	mode := "CINEMATIC"
	if !cfg.Animations {
		mode = "INSTANT"
	}
	fmt.Fprintf(out, "%sSOURCE :: %s%s%s%s\n",
		pal.Dim, bold, pal.Accent, cfg.ScriptPath, reset)
	fmt.Fprintf(out, "%sTHEME  :: %s%s%s%s  %sFRAME :: %s%s%d%s  %sMODE :: %s%s%s%s\n",
		pal.Dim, bold, pal.Glow, strings.ToUpper(cfg.ThemeLabel), reset,
		pal.Dim, bold, pal.Accent, cfg.FrameWidth, reset,
		pal.Dim, bold, pal.Accent, mode, reset)
	fmt.Fprintln(out)
}
