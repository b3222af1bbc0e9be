package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
	version = "dev" // set by build flags
)

var rootCmd = &cobra.Command{
	Use:     "evmasm",
	Short:   "Assembler for the EVM mnemonic contract format",
	Long:    `evmasm compiles human-written EVM mnemonic contracts into hex-encoded EVM bytecode.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./evmasm.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(initCmd)
}

// Commands are defined in separate files:
// - compileCmd in compile.go
// - initCmd in init.go

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
