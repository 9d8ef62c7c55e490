package main

import (
	"fmt"
	"os"

	"github.com/aretw0/mulch"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize a vault directory layout",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := vaultPath
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			wd, err := os.Getwd()
			if err != nil {
				fatal("Failed to get working directory", err)
			}
			path = wd
		}

		if _, err := mulch.Init(path); err != nil {
			fatal("Failed to initialize vault", err)
		}
		fmt.Printf("Vault initialized at %s\n", path)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
