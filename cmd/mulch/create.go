package main

import (
	"context"
	"fmt"

	"github.com/aretw0/mulch/pkg/core"
	"github.com/spf13/cobra"
)

var (
	createTitle  string
	createText   string
	createFolder string
	createSticky bool
	createType   string
	createColor  string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		draft := core.NoteDraft{}
		if cmd.Flags().Changed("title") {
			draft.Title = &createTitle
		}
		if cmd.Flags().Changed("text") {
			draft.RawText = &createText
		}
		if cmd.Flags().Changed("folder") {
			draft.FolderID = &createFolder
		}
		if cmd.Flags().Changed("sticky") {
			draft.Sticky = &createSticky
		}
		if cmd.Flags().Changed("type") {
			draft.Type = &createType
		}
		if cmd.Flags().Changed("color") {
			draft.Color = &createColor
		}

		note, err := service.CreateNote(context.Background(), draft)
		if err != nil {
			fatal("Failed to create note", err)
		}
		fmt.Printf("Created %s at position %d\n", note.ID, note.Position)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVar(&createTitle, "title", "", "Note title")
	createCmd.Flags().StringVar(&createText, "text", "", "Note body text")
	createCmd.Flags().StringVar(&createFolder, "folder", "", "Target folder id")
	createCmd.Flags().BoolVar(&createSticky, "sticky", false, "Mark the note sticky")
	createCmd.Flags().StringVar(&createType, "type", "", "Note type tag")
	createCmd.Flags().StringVar(&createColor, "color", "", "Note color")
}
