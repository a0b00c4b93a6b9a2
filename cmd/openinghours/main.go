// Package main provides the entry point for the openinghours command.
package main

import (
	"os"

	"github.com/fuinorg/objects4go/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
