package main

import (
	"flag"
	"fmt"
	"os"

	"vr-overlay/internal/overlay"
)

func main() {
	name := flag.String("process", overlay.CompositorProcess, "Executable name to look for")
	quiet := flag.Bool("q", false, "Exit status only")
	flag.Parse()

	running := overlay.IsProcessRunning(*name)
	if !*quiet {
		if running {
			fmt.Printf("%s: running\n", *name)
		} else {
			fmt.Printf("%s: not running\n", *name)
		}
	}
	if !running {
		os.Exit(1)
	}
}
