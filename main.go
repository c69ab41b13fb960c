// Package main is the entry point for the ovly overlay.
package main

import (
	"os"
	"runtime"

	"github.com/Norgate-AV/ovly/cmd"
)

func init() {
	// The window, GL context and event pump must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
