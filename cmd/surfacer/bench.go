package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"surfacer/internal/render"
)

var benchCmd = &cobra.Command{
	Use:   "bench [surface]",
	Short: "Sweep register limits and thread counts, reporting wall-clock",
	Long: `bench renders the same surface repeatedly across a handful of
register limits and thread counts and prints the wall-clock for each
combination, to make the register-limit/concurrency tradeoff visible
without reaching for a profiler.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)
}

var (
	benchRegisterLimits = []uint8{2, 4, 8, 32}
	benchThreadCounts   = []uint32{1, 2, 4}
)

func runBench(cmd *cobra.Command, args []string) error {
	surface := "circle"
	if len(args) == 1 {
		surface = args[0]
	}

	c, root, err := buildSurface(surface)
	if err != nil {
		return err
	}
	tape, err := c.GetSSATape(root)
	if err != nil {
		return err
	}

	const worldHalfExtent = 2.0
	scale := 2 * worldHalfExtent / float64(flagImageSize)
	baseCfg := render.Config{
		ImageSize: flagImageSize,
		TileSizes: tileSizesFor(flagImageSize),
		Mat:       render.Affine2{A: scale, C: -worldHalfExtent, E: scale, F: -worldHalfExtent},
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-8s %-10s\n", "threads", "regs", "elapsed")
	for _, threads := range benchThreadCounts {
		for _, regs := range benchRegisterLimits {
			cfg := baseCfg
			cfg.Threads = threads
			cfg.RegisterLimit = regs

			start := time.Now()
			if _, err := render.Render2D[bool](tape, cfg, render.Bit{}); err != nil {
				return err
			}
			elapsed := time.Since(start)

			fmt.Fprintf(cmd.OutOrStdout(), "%-8d %-8d %-10s\n", threads, regs, elapsed)
			logger.Debug("bench sample", "surface", surface, "threads", threads, "register_limit", regs, "elapsed", elapsed)
		}
	}
	return nil
}
