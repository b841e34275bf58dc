// Package main provides the ladle CLI, a one-shot batch loader that reads a
// recipe dataset from a delimited file and loads it into a property-graph
// store.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
