package main

import (
	"fmt"
	"os"

	"github.com/tatianab/gaia-stats/internal/tui"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("Usage: %s <file or dir>...\n", os.Args[0])
		os.Exit(2)
	}
	if err := tui.Start(os.Args[1:]); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
