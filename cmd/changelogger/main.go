package main

import (
	"os"

	"github.com/ariel-frischer/changelogger/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
