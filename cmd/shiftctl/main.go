// Package main is the entry point for the shiftctl command line tool.
package main

import "github.com/liftoff/cupi-shift/cmd/shiftctl/cmd"

func main() {
	cmd.Execute()
}
