package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sitewire/sitewire/internal/audit"
	"github.com/sitewire/sitewire/internal/progress"
	"github.com/sitewire/sitewire/internal/report"
)

var (
	auditFormat string
	auditStrict bool
)

var auditCmd = &cobra.Command{
	Use:   "audit [dir]",
	Short: "Check pages for the element hooks the client expects",
	Long: `Statically inspects every HTML page matching the configured include
patterns and reports missing or broken hooks: menu button and panel, footer
year node, contact form fields and error nodes, fade-in sections, and nav
links pointing at missing sections.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		var reporter progress.Reporter
		if verbose {
			reporter = progress.NewReporter("Auditing pages")
		}

		result, err := audit.Run(root, cfg, reporter)
		if err != nil {
			return err
		}

		switch auditFormat {
		case "text":
			fmt.Print(report.Text(result))
		case "markdown":
			fmt.Print(report.Markdown(result))
		case "html":
			out, err := report.HTML(result, "Page audit")
			if err != nil {
				return err
			}
			fmt.Print(out)
		default:
			return fmt.Errorf("unknown format %q: must be text, markdown, or html", auditFormat)
		}

		if result.HasErrors() || (auditStrict && len(result.Findings) > 0) {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	auditCmd.Flags().StringVar(&auditFormat, "format", "text", "output format: text, markdown, or html")
	auditCmd.Flags().BoolVar(&auditStrict, "strict", false, "exit non-zero on warnings too")
	rootCmd.AddCommand(auditCmd)
}
