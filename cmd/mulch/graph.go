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

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Inspect or replace the relationship graph",
}

var graphShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the graph as JSON",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		g, err := service.GetGraph(context.Background())
		if err != nil {
			fatal("Failed to read graph", err)
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(g); err != nil {
			fatal("Failed to encode JSON", err)
		}
	},
}

var graphSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Replace the graph wholesale with JSON from stdin",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatal("Failed to read stdin", err)
		}
		var g core.Graph
		if err := json.Unmarshal(data, &g); err != nil {
			fatal("Failed to parse graph JSON", err)
		}
		if err := service.SaveGraph(context.Background(), g); err != nil {
			fatal("Failed to save graph", err)
		}
		fmt.Println("Graph saved.")
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.AddCommand(graphShowCmd, graphSaveCmd)
}
