package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"snapsort/internal/services"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		// Fatal conditions (bad source, unusable config) exit 2 so scripts
		// can tell them apart from per-run failures.
		if services.IsFatal(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
