// Package main provides the entry point for the viewseg CLI tool.
// It delegates execution to the cmd package so the command wiring
// and exit-code handling stay testable.
package main

import (
	"viewseg/cmd"
)

func main() {
	cmd.Execute()
}
