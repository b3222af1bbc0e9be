package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// initCmd is registered but intentionally unimplemented, mirroring the
// original CLI it was distilled from.
var initCmd = &cobra.Command{
	Use:   "init",
	Args:  cobra.NoArgs,
	Short: "Scaffold a new contract project (not implemented)",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	return fmt.Errorf("init: not implemented")
}
