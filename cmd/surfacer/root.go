package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagThreads       uint32
	flagRegisterLimit uint8
	flagImageSize     uint32
	flagLogLevel      string
	flagLogFormat     string

	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "surfacer",
	Short: "Render implicit surfaces defined by closed-form math expressions",
	Long: `surfacer builds an expression graph for a surface (f(x,y,z) = 0),
compiles it to a register-machine tape, and rasterizes it with a
hierarchical interval-guided tile renderer.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var level slog.Level
		switch flagLogLevel {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			level = slog.LevelInfo
		}

		opts := &slog.HandlerOptions{Level: level}
		var handler slog.Handler
		if flagLogFormat == "json" {
			handler = slog.NewJSONHandler(os.Stderr, opts)
		} else {
			handler = slog.NewTextHandler(os.Stderr, opts)
		}
		logger = slog.New(handler)
		slog.SetDefault(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().Uint32Var(&flagThreads, "threads", 4, "Worker goroutines per render")
	rootCmd.PersistentFlags().Uint8Var(&flagRegisterLimit, "register-limit", 32, "Register budget for the allocator")
	rootCmd.PersistentFlags().Uint32Var(&flagImageSize, "image-size", 256, "Output image width/height in pixels")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")
}
