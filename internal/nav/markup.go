package nav

import (
	"bytes"
	"fmt"
	"io"

	"sitekit.dev/sitekit/internal/dom/htmldom"
)

// PrepareMarkup reads a page and makes the overlay insertion Init would make:
// if the page has both the toggle and the sidebar but no overlay, it is written
// back with the overlay placed right after the sidebar. Nothing is written when
// the page needs no change; the result reports which happened.
func PrepareMarkup(r io.Reader, w io.Writer) (bool, error) {
	doc, err := htmldom.Parse(r)
	if err != nil {
		return false, err
	}

	_, panel, ok := locate(doc)
	if !ok {
		return false, nil
	}
	if _, created := EnsureOverlay(doc, panel); !created {
		return false, nil
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return false, fmt.Errorf("failed to render html: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return false, fmt.Errorf("failed to write html: %w", err)
	}
	return true, nil
}

// NeedsOverlay reports whether PrepareMarkup would change a page
func NeedsOverlay(r io.Reader) (bool, error) {
	return PrepareMarkup(r, io.Discard)
}
