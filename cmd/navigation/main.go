//go:build js && wasm

// Command navigation is the sidebar toggle compiled to WebAssembly. Load it
// with wasm_exec.js on any page carrying the navigation markup.
package main

import (
	"sitekit.dev/sitekit/internal/dom/jsdom"
	"sitekit.dev/sitekit/internal/nav"
)

func main() {
	doc := jsdom.New()
	doc.OnReady(func() {
		nav.Init(doc)
	})

	// Listeners live as long as the page
	select {}
}
