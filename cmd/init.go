package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sitewire/sitewire/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize sitewire configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure sitewire for your site and generates a .sitewire.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
