package main

import (
	"context"
	"fmt"

	"github.com/aretw0/mulch/pkg/core"
	"github.com/spf13/cobra"
)

var (
	folderParent  string
	folderName    string
	folderNewRoot bool
)

var folderCmd = &cobra.Command{
	Use:   "folder",
	Short: "Manage the folder forest",
}

var folderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List folders",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		folders, err := service.ListFolders(context.Background())
		if err != nil {
			fatal("Failed to list folders", err)
		}
		for _, f := range folders {
			parent := "/"
			if f.ParentID != nil {
				parent = *f.ParentID
			}
			fmt.Printf("%s  (parent %s)  %s\n", f.ID, parent, f.Name)
		}
	},
}

var folderCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a folder",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		var parent *string
		if cmd.Flags().Changed("parent") {
			parent = &folderParent
		}
		f, err := service.CreateFolder(context.Background(), args[0], parent)
		if err != nil {
			fatal("Failed to create folder", err)
		}
		fmt.Printf("Created folder %s\n", f.ID)
	},
}

var folderUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Rename or re-parent a folder",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		patch := core.FolderPatch{}
		if cmd.Flags().Changed("name") {
			patch.Name = core.Set(folderName)
		}
		if folderNewRoot {
			patch.ParentID = core.Clear[string]()
		} else if cmd.Flags().Changed("parent") {
			patch.ParentID = core.Set(folderParent)
		}

		f, err := service.UpdateFolder(context.Background(), args[0], patch)
		if err != nil {
			fatal("Failed to update folder", err)
		}
		fmt.Printf("Updated folder %s\n", f.ID)
	},
}

var folderDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a folder, evicting its notes to the root",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		if err := service.DeleteFolder(context.Background(), args[0]); err != nil {
			fatal("Failed to delete folder", err)
		}
		fmt.Printf("Deleted folder %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(folderCmd)
	folderCmd.AddCommand(folderListCmd, folderCreateCmd, folderUpdateCmd, folderDeleteCmd)

	folderCreateCmd.Flags().StringVar(&folderParent, "parent", "", "Parent folder id")
	folderUpdateCmd.Flags().StringVar(&folderName, "name", "", "New folder name")
	folderUpdateCmd.Flags().StringVar(&folderParent, "parent", "", "New parent folder id")
	folderUpdateCmd.Flags().BoolVar(&folderNewRoot, "root", false, "Move the folder to the top level")
}
