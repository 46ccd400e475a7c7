package main

import (
	"os"

	"azpull/src/cli"
)

func main() {
	os.Exit(cli.Execute())
}
