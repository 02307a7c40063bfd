package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sitewire/sitewire/internal/preview"
)

var (
	previewPort int
	previewOpen bool
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Serve the bundled site locally with live reload",
	Long: `Serves the bundle directory over HTTP. Connected browsers reload
automatically when files in the served directory change. Run ` + "`sitewire build`" + `
first to produce the bundle.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if previewPort != 0 {
			cfg.Preview.Port = previewPort
		}
		if previewOpen {
			cfg.Preview.Open = true
		}

		if _, err := os.Stat(cfg.Preview.Dir); os.IsNotExist(err) {
			return fmt.Errorf("preview directory %s does not exist; run `sitewire build` first", cfg.Preview.Dir)
		}

		srv := preview.New(cfg.Preview)

		// Drain on interrupt.
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-stop
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()

		fmt.Printf("Previewing %s at http://localhost:%d\n", cfg.Preview.Dir, cfg.Preview.Port)
		fmt.Println("Press Ctrl+C to stop.")
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().IntVar(&previewPort, "port", 0, "override the configured port")
	previewCmd.Flags().BoolVar(&previewOpen, "open", false, "open the system browser")
	rootCmd.AddCommand(previewCmd)
}
