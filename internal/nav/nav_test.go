package nav_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sitekit.dev/sitekit/internal/dom/htmldom"
	"sitekit.dev/sitekit/internal/nav"
)

const pageWithoutOverlay = `<!DOCTYPE html>
<html><body>
<button class="mobile-menu-toggle">Menu</button>
<nav class="sidebar">links</nav>
<main>content</main>
</body></html>`

const pageWithOverlay = `<!DOCTYPE html>
<html><body>
<button class="mobile-menu-toggle">Menu</button>
<nav class="sidebar">links</nav>
<main>content</main>
<div class="sidebar-overlay"></div>
</body></html>`

func parse(t *testing.T, markup string) *htmldom.Document {
	t.Helper()
	doc, err := htmldom.ParseString(markup)
	require.NoError(t, err)
	return doc
}

func mustFind(t *testing.T, doc *htmldom.Document, class string) *htmldom.Element {
	t.Helper()
	el, ok := doc.Find(class)
	require.True(t, ok, "missing .%s", class)
	return el
}

func TestInitCreatesOverlay(t *testing.T) {
	doc := parse(t, pageWithoutOverlay)

	s, ok := nav.Init(doc)
	require.True(t, ok)
	require.True(t, s.OverlayCreated)

	overlays := doc.FindAll("sidebar-overlay")
	require.Len(t, overlays, 1)

	next, ok := mustFind(t, doc, "sidebar").NextElementSibling()
	require.True(t, ok)
	require.True(t, next.Same(overlays[0]))
	require.Equal(t, "div", next.Tag())
}

func TestInitReusesOverlay(t *testing.T) {
	doc := parse(t, pageWithOverlay)

	s, ok := nav.Init(doc)
	require.True(t, ok)
	require.False(t, s.OverlayCreated)
	require.Len(t, doc.FindAll("sidebar-overlay"), 1)

	// The existing overlay stays where the markup put it
	next, ok := mustFind(t, doc, "sidebar").NextElementSibling()
	require.True(t, ok)
	require.Equal(t, "main", next.Tag())
}

func TestToggleClick(t *testing.T) {
	doc := parse(t, pageWithoutOverlay)
	s, ok := nav.Init(doc)
	require.True(t, ok)

	toggle := mustFind(t, doc, "mobile-menu-toggle")
	sidebar := mustFind(t, doc, "sidebar")

	require.False(t, s.IsOpen())

	toggle.Click()
	require.True(t, s.IsOpen())
	require.True(t, sidebar.HasClass("open"))

	toggle.Click()
	require.False(t, s.IsOpen())

	toggle.Click()
	require.True(t, s.IsOpen())
	require.Equal(t, []string{"sidebar", "open"}, sidebar.Classes())
}

func TestOverlayClick(t *testing.T) {
	t.Run("closes an open sidebar", func(t *testing.T) {
		doc := parse(t, pageWithoutOverlay)
		s, ok := nav.Init(doc)
		require.True(t, ok)

		mustFind(t, doc, "mobile-menu-toggle").Click()
		require.True(t, s.IsOpen())

		mustFind(t, doc, "sidebar-overlay").Click()
		require.False(t, s.IsOpen())
	})

	t.Run("leaves a closed sidebar closed", func(t *testing.T) {
		doc := parse(t, pageWithOverlay)
		s, ok := nav.Init(doc)
		require.True(t, ok)

		overlay := mustFind(t, doc, "sidebar-overlay")
		overlay.Click()
		overlay.Click()
		require.False(t, s.IsOpen())
	})

	t.Run("closes a sidebar that was open in the markup", func(t *testing.T) {
		doc := parse(t, `<button class="mobile-menu-toggle"></button><nav class="sidebar open"></nav>`)
		s, ok := nav.Init(doc)
		require.True(t, ok)
		require.True(t, s.IsOpen())

		mustFind(t, doc, "sidebar-overlay").Click()
		require.False(t, s.IsOpen())
	})
}

func TestInitMissingElements(t *testing.T) {
	tests := []struct {
		name   string
		markup string
	}{
		{"no toggle", `<nav class="sidebar"></nav>`},
		{"no sidebar", `<button class="mobile-menu-toggle"></button>`},
		{"neither", `<main></main>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parse(t, tt.markup)

			s, ok := nav.Init(doc)
			require.False(t, ok)
			require.Nil(t, s)
			require.Empty(t, doc.FindAll("sidebar-overlay"))

			if toggle, found := doc.Find("mobile-menu-toggle"); found {
				require.Zero(t, toggle.ListenerCount())
			}
		})
	}
}

func TestInitRegistersOneListenerEach(t *testing.T) {
	doc := parse(t, pageWithoutOverlay)
	_, ok := nav.Init(doc)
	require.True(t, ok)

	require.Equal(t, 1, mustFind(t, doc, "mobile-menu-toggle").ListenerCount())
	require.Equal(t, 1, mustFind(t, doc, "sidebar-overlay").ListenerCount())
}
