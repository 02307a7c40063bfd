package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sitewire",
	Short: "Tooling for the wasm-powered marketing site front end",
	Long: `Sitewire builds and serves the site's WebAssembly interactivity layer:
mobile navigation, contact form validation and submission, scroll-triggered
reveals, and smooth scrolling with active-link tracking. It audits pages for
the element hooks the client expects, bundles the wasm client with the page
assets, and previews the result with live reload.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".sitewire.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
