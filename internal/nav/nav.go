// Package nav wires the mobile navigation sidebar: a toggle control opens and
// closes the sidebar, and a backdrop overlay placed right after the sidebar
// closes it.
package nav

import (
	"sitekit.dev/sitekit/internal/config"
	"sitekit.dev/sitekit/internal/dom"
)

// Sidebar holds the elements wired by Init
type Sidebar struct {
	Toggle  dom.Element
	Panel   dom.Element
	Overlay dom.Element
	// OverlayCreated is set when Init had to insert the overlay itself.
	OverlayCreated bool
}

// IsOpen reports whether the sidebar carries the open marker
func (s *Sidebar) IsOpen() bool {
	return s.Panel.HasClass(config.OpenClass)
}

// Init wires the sidebar in doc. It must run once, after the page structure
// is parsed. When the toggle or the sidebar is missing nothing is changed and
// false is returned.
func Init(doc dom.Document) (*Sidebar, bool) {
	toggle, panel, ok := locate(doc)
	if !ok {
		return nil, false
	}

	overlay, created := EnsureOverlay(doc, panel)
	s := &Sidebar{
		Toggle:         toggle,
		Panel:          panel,
		Overlay:        overlay,
		OverlayCreated: created,
	}

	toggle.OnClick(func() {
		panel.ToggleClass(config.OpenClass)
	})
	overlay.OnClick(func() {
		panel.RemoveClass(config.OpenClass)
	})

	return s, true
}

// locate finds the toggle and the sidebar; both must be present
func locate(doc dom.Document) (toggle, panel dom.Element, ok bool) {
	if toggle, ok = doc.QueryClass(config.ToggleClass); !ok {
		return nil, nil, false
	}
	if panel, ok = doc.QueryClass(config.SidebarClass); !ok {
		return nil, nil, false
	}
	return toggle, panel, true
}

// EnsureOverlay returns the document's overlay, creating one right after
// panel when there is none. The second result reports whether it was created.
func EnsureOverlay(doc dom.Document, panel dom.Element) (dom.Element, bool) {
	if overlay, ok := doc.QueryClass(config.OverlayClass); ok {
		return overlay, false
	}
	overlay := doc.CreateElement("div")
	overlay.AddClass(config.OverlayClass)
	doc.InsertAfter(panel, overlay)
	return overlay, true
}
