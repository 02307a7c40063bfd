package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sitewire/sitewire/internal/bundle"
	"github.com/sitewire/sitewire/internal/progress"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Bundle the wasm client with the page assets",
	Long: `Compiles the client for js/wasm, copies the Go runtime shim
(wasm_exec.js) from the active toolchain, and syncs the page assets into the
output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		opts := bundle.Options{
			WebDir: cfg.Build.WebDir,
			OutDir: cfg.Build.OutDir,
		}
		if err := bundle.Run(cmd.Context(), opts, progress.NewReporter("Bundling site")); err != nil {
			return err
		}

		fmt.Printf("Bundle written to %s\n", cfg.Build.OutDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
