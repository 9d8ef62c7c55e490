package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/mulch"
	"github.com/aretw0/mulch/pkg/core"
	"github.com/spf13/cobra"
)

var (
	verbose   bool
	vaultPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mulch",
	Short: "A local-first vault for notes, folders and graphs",
	Long: `Mulch keeps rich-text notes as self-describing files on disk.
Folders, ordering, a relationship graph and per-note canvases are kept
consistent by the vault service; nothing ever leaves your machine.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&vaultPath, "vault", "", "Vault directory (default: current directory)")
}

// openService builds the vault service for the working vault path.
func openService(opts ...mulch.Option) *core.Service {
	path := vaultPath
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			fatal("Failed to get working directory", err)
		}
		path = wd
	}

	service, err := mulch.New(path, append([]mulch.Option{
		mulch.WithLogger(slog.Default()),
	}, opts...)...)
	if err != nil {
		fatal("Failed to open vault", err)
	}
	return service
}
