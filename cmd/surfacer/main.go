// Command surfacer is the CLI driver for the implicit-surface renderer: it
// builds a named example surface, renders it, and reports the result as
// ASCII art, an image file, or a register-limit/thread-count benchmark.
package main

import (
	"log"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("surfacer: %v", err)
		os.Exit(1)
	}
}
