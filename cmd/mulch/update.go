package main

import (
	"context"
	"fmt"

	"github.com/aretw0/mulch/pkg/core"
	"github.com/spf13/cobra"
)

var (
	updateTitle    string
	updateText     string
	updateSticky   bool
	updateArchived bool
	updateColor    string
	updateFolder   string
	updateToRoot   bool
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a note",
	Long: `Update applies only the flags you pass; everything else is left
untouched. Use --root to move the note out of its folder (distinct from
not passing --folder at all). Moving between folders this way does not
renumber positions; use 'mulch move' when ordering matters.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		patch := core.NotePatch{}
		if cmd.Flags().Changed("title") {
			patch.Title = core.Set(updateTitle)
		}
		if cmd.Flags().Changed("text") {
			patch.RawText = core.Set(updateText)
		}
		if cmd.Flags().Changed("sticky") {
			patch.Sticky = core.Set(updateSticky)
		}
		if cmd.Flags().Changed("archived") {
			patch.Archived = core.Set(updateArchived)
		}
		if cmd.Flags().Changed("color") {
			patch.Color = core.Set(updateColor)
		}
		if updateToRoot {
			patch.FolderID = core.Clear[string]()
		} else if cmd.Flags().Changed("folder") {
			patch.FolderID = core.Set(updateFolder)
		}

		note, err := service.UpdateNote(context.Background(), args[0], patch)
		if err != nil {
			fatal("Failed to update note", err)
		}
		fmt.Printf("Updated %s\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateCmd.Flags().StringVar(&updateText, "text", "", "New body text")
	updateCmd.Flags().BoolVar(&updateSticky, "sticky", false, "Sticky flag")
	updateCmd.Flags().BoolVar(&updateArchived, "archived", false, "Archived flag")
	updateCmd.Flags().StringVar(&updateColor, "color", "", "Note color")
	updateCmd.Flags().StringVar(&updateFolder, "folder", "", "Move into folder id")
	updateCmd.Flags().BoolVar(&updateToRoot, "root", false, "Move the note to the root scope")
}
