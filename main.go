// Package main is the entry point for the linkdup CLI.
package main

import "linkdup.dev/pkg/linkdup/cmd"

func main() {
	cmd.Execute()
}
