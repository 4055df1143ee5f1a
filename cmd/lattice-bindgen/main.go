// Package main implements the lattice-bindgen CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/lattice-bindgen/bindgen"
)

var rootCmd = &cobra.Command{
	Use:   "lattice-bindgen",
	Short: "Lattice provider binding compiler",
	Long:  "lattice-bindgen compiles a resolved WIT interface graph into Go provider bindings for the lattice RPC transport.",
}

func main() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.PersistentFlags().Bool("verbose", false, "enable development logging")

	cobra.OnInitialize(func() {
		verbose, err := rootCmd.PersistentFlags().GetBool("verbose")
		if err != nil || !verbose {
			return
		}
		logger, err := zap.NewDevelopment()
		if err != nil {
			return
		}
		bindgen.SetLogger(logger)
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
