// Package main is the entry point for the fsfsfixer CLI.
package main

import "fsfsfixer.dev/pkg/fsfsfixer/cmd"

func main() {
	cmd.Execute()
}
