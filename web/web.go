// Package web embeds the marketing page assets. Tests and the page audit
// run against the same markup the bundle ships.
package web

import "embed"

// Assets holds the page markup, styles, and the wasm loader.
//
//go:embed index.html styles.css loader.js
var Assets embed.FS

// Index returns the page markup.
func Index() []byte {
	data, err := Assets.ReadFile("index.html")
	if err != nil {
		// The file is embedded; a read failure is a build defect.
		panic(err)
	}
	return data
}
