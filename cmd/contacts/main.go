// Package main provides the contacts CLI.
package main

import (
	"os"

	"github.com/mesh-intelligence/contacts/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
