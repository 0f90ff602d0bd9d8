// Package main provides the quicklinks CLI.
package main

import "github.com/mesh-intelligence/quicklinks/internal/cli"

func main() {
	cli.Execute()
}
