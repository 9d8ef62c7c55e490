package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/mulch/pkg/core"
	"github.com/spf13/cobra"
)

var canvasCmd = &cobra.Command{
	Use:   "canvas",
	Short: "Inspect or replace per-note canvases",
}

var canvasShowCmd = &cobra.Command{
	Use:   "show <note-id>",
	Short: "Print a note's canvas as JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		c, err := service.GetCanvas(context.Background(), args[0])
		if err != nil {
			fatal("Failed to read canvas", err)
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(c); err != nil {
			fatal("Failed to encode JSON", err)
		}
	},
}

var canvasSaveCmd = &cobra.Command{
	Use:   "save <note-id>",
	Short: "Replace a note's canvas with JSON from stdin",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatal("Failed to read stdin", err)
		}
		var c core.Canvas
		if err := json.Unmarshal(data, &c); err != nil {
			fatal("Failed to parse canvas JSON", err)
		}
		if err := service.SaveCanvas(context.Background(), args[0], c); err != nil {
			fatal("Failed to save canvas", err)
		}
		fmt.Println("Canvas saved.")
	},
}

var canvasDeleteCmd = &cobra.Command{
	Use:   "delete <note-id>",
	Short: "Remove a canvas document (e.g. one orphaned by a note delete)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		if err := service.DeleteCanvas(context.Background(), args[0]); err != nil {
			fatal("Failed to delete canvas", err)
		}
		fmt.Printf("Deleted canvas %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(canvasCmd)
	canvasCmd.AddCommand(canvasShowCmd, canvasSaveCmd, canvasDeleteCmd)
}
