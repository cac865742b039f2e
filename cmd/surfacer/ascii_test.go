package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"surfacer/internal/render"
)

// TestAsciiCircleMatchesDirectRender exercises "surfacer ascii circle"
// in-process through the root command's Execute, and checks its stdout
// against the same 15x15 Bit-mode render computed directly through the
// library, formatted the same way.
func TestAsciiCircleMatchesDirectRender(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"ascii", "circle"})
	require.NoError(t, rootCmd.Execute())

	c, root, err := buildSurface("circle")
	require.NoError(t, err)
	tape, err := c.GetSSATape(root)
	require.NoError(t, err)

	const scale = 3.0 / asciiImageSize
	cfg := render.Config{
		ImageSize:     asciiImageSize,
		TileSizes:     []uint32{15, 5, 1},
		Threads:       flagThreads,
		RegisterLimit: flagRegisterLimit,
		Mat:           render.Affine2{A: scale, C: -1.5, E: scale, F: -1.5},
	}
	mask, err := render.Render2D[bool](tape, cfg, render.Bit{})
	require.NoError(t, err)

	var want strings.Builder
	for row := 0; row < asciiImageSize; row++ {
		for col := 0; col < asciiImageSize; col++ {
			if mask[row*asciiImageSize+col] {
				want.WriteByte('#')
			} else {
				want.WriteByte('.')
			}
		}
		want.WriteByte('\n')
	}

	require.Equal(t, want.String(), out.String())
	require.Len(t, strings.Split(strings.TrimRight(out.String(), "\n"), "\n"), asciiImageSize)
}

func TestAsciiRejectsUnknownSurface(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"ascii", "not-a-surface"})
	require.Error(t, rootCmd.Execute())
}
