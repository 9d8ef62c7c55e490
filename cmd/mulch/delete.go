package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteAll bool

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note (or all notes with --all)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()
		ctx := context.Background()

		if deleteAll {
			count, err := service.DeleteAllNotes(ctx)
			if err != nil {
				fatal("Failed to delete notes", err)
			}
			fmt.Printf("Deleted %d notes\n", count)
			return
		}

		if len(args) != 1 {
			fatal("Missing note id", fmt.Errorf("pass an id or --all"))
		}
		if err := service.DeleteNote(ctx, args[0]); err != nil {
			fatal("Failed to delete note", err)
		}
		fmt.Printf("Deleted %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVar(&deleteAll, "all", false, "Delete every note and reset the graph")
}
