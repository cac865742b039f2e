package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"surfacer/internal/render"
)

const asciiImageSize = 15

var asciiCmd = &cobra.Command{
	Use:   "ascii [surface]",
	Short: "Render a tiny 15x15 inside/outside mask to stdout",
	Long: `ascii renders one of the named example surfaces (circle, union,
difference, rounded-box) at a fixed 15x15 resolution in Bit mode and
prints it as '#' (inside) and '.' (outside) characters, one line per row.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAscii,
}

func init() {
	rootCmd.AddCommand(asciiCmd)
}

func runAscii(cmd *cobra.Command, args []string) error {
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

	const scale = 3.0 / asciiImageSize
	cfg := render.Config{
		ImageSize:     asciiImageSize,
		TileSizes:     []uint32{15, 5, 1},
		Threads:       flagThreads,
		RegisterLimit: flagRegisterLimit,
		Mat:           render.Affine2{A: scale, C: -1.5, E: scale, F: -1.5},
	}

	logger.Info("ascii render starting", "surface", surface, "image_size", asciiImageSize)
	mask, err := render.Render2D[bool](tape, cfg, render.Bit{})
	if err != nil {
		return err
	}
	logger.Info("ascii render complete", "surface", surface)

	var sb strings.Builder
	for row := 0; row < asciiImageSize; row++ {
		for col := 0; col < asciiImageSize; col++ {
			if mask[row*asciiImageSize+col] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(cmd.OutOrStdout(), sb.String())
	return nil
}
