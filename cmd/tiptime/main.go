package main

import (
	"os"
)

func main() {
	rootCmd := newRootCmd(&rootOptions{
		lookupEnv: os.LookupEnv,
		logOutput: os.Stderr,
	})
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
