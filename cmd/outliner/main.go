package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "outliner",
		Short: "Infer document outlines and evaluate them against references",
	}

	root.AddCommand(extractCmd())
	root.AddCommand(evaluateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
