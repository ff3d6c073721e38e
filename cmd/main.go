package main

import (
	"os"

	"pacport/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
