package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"pkt.systems/psi"
	"pkt.systems/pslog"

	"retrobeam/internal/app"
	"retrobeam/internal/config"
)

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)

	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		pslog.Ctx(ctx).With("err", err).Error("retrobeam failed")
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts config.Options
	cmd := &cobra.Command{
		Use:           "retrobeam <script>",
		Short:         "Retro-futuristic presentation engine for the terminal",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Script = filepath.Clean(args[0])
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Banner, "banner", "b", "", "path to the ASCII banner file")
	flags.StringVarP(&opts.Title, "title", "t", "", "presentation title override")
	flags.IntVar(&opts.FrameWidth, "frame-width", 0, "frame width override")
	flags.StringVar(&opts.Theme, "theme", "", "color theme (neon, amber, arctic)")
	flags.StringVar(&opts.ThemePath, "theme-path", "", "path to a TOML theme file")
	flags.BoolVar(&opts.Instant, "instant", false, "render instantly, without animations")
	flags.BoolVar(&opts.SkipBanner, "skip-banner", false, "skip the startup banner")
	flags.BoolVar(&opts.Watch, "watch", false, "re-render when the script changes on disk")
	flags.DurationVar(&opts.Debounce, "debounce", 500*time.Millisecond, "minimum interval between watch re-renders")

	return cmd
}
