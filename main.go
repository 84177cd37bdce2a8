// Package main is the entry point for the playground CLI.
package main

import "playground.dev/pkg/playground/cmd"

func main() {
	cmd.Execute()
}
