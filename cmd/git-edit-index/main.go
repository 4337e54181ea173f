package main

import (
	"os"

	"editindex.dev/editindex/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(cli.Execute(version, commit, date, os.Args[1:]))
}
