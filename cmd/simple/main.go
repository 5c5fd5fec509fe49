package main

import (
	"fmt"
	"os"

	"github.com/sqweek/dialog"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "aspect mask demo failed: %v\n", err)
		if interactive {
			dialog.Message("%v", err).Title("Aspect Ratio Mask").Error()
		}
		os.Exit(1)
	}
}
