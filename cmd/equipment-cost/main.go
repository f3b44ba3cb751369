package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rshade/equipment-cost/internal/cli"
	"github.com/rshade/equipment-cost/internal/costerr"
)

func main() {
	if err := cli.New(cli.Options{}).Execute(context.Background()); err != nil {
		if costerr.KindOf(err) != 0 {
			fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
