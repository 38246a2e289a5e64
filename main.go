// Package main is the entry point for the flatconf CLI.
package main

import "flatconf.dev/pkg/flatconf/cmd"

func main() {
	cmd.Execute()
}
