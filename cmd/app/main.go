//go:build js && wasm

// The wasm client: boots every page behavior against the live document and
// stays resident for the page lifetime.
package main

import (
	"context"
	"log"
	"time"

	"github.com/sitewire/sitewire/internal/app"
	"github.com/sitewire/sitewire/internal/config"
	"github.com/sitewire/sitewire/internal/dom/browser"
)

// configScriptSelector locates the page-embedded JSON configuration.
const configScriptSelector = "script#sitewire-config"

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	doc, err := browser.Open(ctx)
	cancel()
	if err != nil {
		log.Printf("sitewire: document never became ready: %v", err)
		return
	}
	defer doc.Close()

	cfg := loadPageConfig(doc)

	a := app.Boot(doc, cfg)
	defer a.Close()

	// Block forever; listeners keep the page interactive.
	select {}
}

// loadPageConfig reads the embedded config blob, falling back to defaults
// when the page carries none or the blob is malformed.
func loadPageConfig(doc *browser.Document) *config.Config {
	script := doc.First(configScriptSelector)
	if script == nil {
		return config.DefaultConfig()
	}
	cfg, err := config.FromJSON([]byte(script.Text()))
	if err != nil {
		log.Printf("sitewire: embedded config: %v", err)
		return config.DefaultConfig()
	}
	return cfg
}
