package main

import (
	"fmt"
	"os"

	"github.com/hnimtadd/craft-redis/internal/app"
)

func main() {
	if err := app.Command().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
