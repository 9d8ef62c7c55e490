package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	listJSON     bool
	listArchived bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes in the vault",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		notes, err := service.ListNotes(context.Background())
		if err != nil {
			fatal("Failed to list notes", err)
		}

		if !listArchived {
			kept := notes[:0]
			for _, n := range notes {
				if !n.Archived {
					kept = append(kept, n)
				}
			}
			notes = kept
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(notes); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, n := range notes {
			scope := "/"
			if n.FolderID != nil {
				scope = *n.FolderID
			}
			fmt.Printf("%s  [%s:%d]  %s\n", n.ID, scope, n.Position, n.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().BoolVar(&listArchived, "archived", false, "Include archived notes")
}
