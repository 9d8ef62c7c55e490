package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var readJSON bool

var readCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Read a single note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		note, err := service.GetNote(context.Background(), args[0])
		if err != nil {
			fatal("Failed to read note", err)
		}

		if readJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(note); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		fmt.Printf("# %s\n\n%s\n", note.Title, note.RawText)
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().BoolVar(&readJSON, "json", false, "Output in JSON format")
}
