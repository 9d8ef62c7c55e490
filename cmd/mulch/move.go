package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	moveFolder   string
	movePosition int
	moveToRoot   bool
)

var moveCmd = &cobra.Command{
	Use:   "move <id>",
	Short: "Move a note to a position within a folder scope",
	Long: `Move places a note at a position inside the target scope (a folder, or
the root with --root) and renumbers both the source and target scopes so
positions stay dense. Out-of-range positions clamp to the nearest end.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()
		ctx := context.Background()

		// Without --folder or --root the note stays in its current scope.
		var target *string
		switch {
		case moveToRoot:
		case cmd.Flags().Changed("folder"):
			target = &moveFolder
		default:
			current, err := service.GetNote(ctx, args[0])
			if err != nil {
				fatal("Failed to read note", err)
			}
			target = current.FolderID
		}

		note, err := service.ReorderNote(ctx, args[0], target, movePosition)
		if err != nil {
			fatal("Failed to move note", err)
		}
		fmt.Printf("Moved %s to position %d\n", note.ID, note.Position)
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
	moveCmd.Flags().StringVar(&moveFolder, "folder", "", "Target folder id")
	moveCmd.Flags().IntVar(&movePosition, "position", 0, "Target position (clamped)")
	moveCmd.Flags().BoolVar(&moveToRoot, "root", false, "Move into the root scope")
}
