package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/lattice-bindgen/bindgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate provider bindings",
	Long: "Generate compiles one Go source file of provider bindings from a resolved\n" +
		"interface graph (wasm-tools component wit --json) and a YAML binding\n" +
		"configuration. Output is written only on full success.",
	RunE: generateExecution,
}

func init() {
	generateCmd.Flags().String("wit", "", "resolved interface graph (JSON)")
	generateCmd.Flags().String("config", "", "binding configuration (YAML)")
	generateCmd.Flags().String("out", "bindings.go", "output file, or - for stdout")
	_ = generateCmd.MarkFlagRequired("wit")
	_ = generateCmd.MarkFlagRequired("config")
}

func generateExecution(cmd *cobra.Command, args []string) error {
	witPath, err := cmd.Flags().GetString("wit")
	if err != nil {
		return err
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}

	res, err := wit.LoadJSON(witPath)
	if err != nil {
		return fmt.Errorf("load interface graph %s: %w", witPath, err)
	}

	configData, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("read binding configuration %s: %w", configPath, err)
	}
	cfg, err := bindgen.ParseConfig(configData)
	if err != nil {
		return err
	}

	source, err := bindgen.Generate(res, cfg)
	if err != nil {
		return err
	}

	if outPath == "-" {
		_, err = cmd.OutOrStdout().Write(source)
		return err
	}
	if err := os.WriteFile(outPath, source, 0o644); err != nil {
		return fmt.Errorf("write bindings %s: %w", outPath, err)
	}
	return nil
}
