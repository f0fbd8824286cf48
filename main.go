package main

import (
	"os"

	"github.com/champ-oss/action-update-app/pkg/cli"
)

func main() {
	if err := cli.New().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
