// Package htmldom implements dom.Document over golang.org/x/net/html trees.
// Click listeners are dispatched synchronously by Element.Click.
package htmldom

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"sitekit.dev/sitekit/internal/dom"
)

// Document is a parsed HTML page
type Document struct {
	root      *html.Node
	listeners map[*html.Node][]func()
}

// Parse reads an HTML page
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	return &Document{
		root:      root,
		listeners: make(map[*html.Node][]func()),
	}, nil
}

// ParseString is Parse for in-memory markup
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// Render writes the document back out as HTML
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// QueryClass returns the first element in document order carrying class
func (d *Document) QueryClass(class string) (dom.Element, bool) {
	el, ok := d.Find(class)
	if !ok {
		return nil, false
	}
	return el, true
}

// Find is QueryClass returning the concrete element
func (d *Document) Find(class string) (*Element, bool) {
	for n := range d.root.Descendants() {
		if n.Type == html.ElementNode && slices.Contains(classes(n), class) {
			return d.wrap(n), true
		}
	}
	return nil, false
}

// FindAll returns every element carrying class, in document order
func (d *Document) FindAll(class string) []*Element {
	var out []*Element
	for n := range d.root.Descendants() {
		if n.Type == html.ElementNode && slices.Contains(classes(n), class) {
			out = append(out, d.wrap(n))
		}
	}
	return out
}

// CreateElement returns a detached element
func (d *Document) CreateElement(tag string) dom.Element {
	return d.wrap(&html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	})
}

// InsertAfter places el as the next sibling of ref. Elements from another
// document implementation, or a ref without a parent, are ignored.
func (d *Document) InsertAfter(ref, el dom.Element) {
	r, ok := ref.(*Element)
	if !ok || r.node.Parent == nil {
		return
	}
	e, ok := el.(*Element)
	if !ok {
		return
	}
	if e.node.Parent != nil {
		e.node.Parent.RemoveChild(e.node)
	}
	r.node.Parent.InsertBefore(e.node, r.node.NextSibling)
}

func (d *Document) wrap(n *html.Node) *Element {
	return &Element{node: n, doc: d}
}

// Element is an element node in a Document
type Element struct {
	node *html.Node
	doc  *Document
}

// Tag returns the element's tag name
func (e *Element) Tag() string {
	return e.node.Data
}

// Classes returns the element's class list
func (e *Element) Classes() []string {
	return classes(e.node)
}

// NextElementSibling returns the following element sibling, skipping text
func (e *Element) NextElementSibling() (*Element, bool) {
	for n := e.node.NextSibling; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode {
			return e.doc.wrap(n), true
		}
	}
	return nil, false
}

// Same reports whether both wrap the same node
func (e *Element) Same(other *Element) bool {
	return other != nil && e.node == other.node
}

func (e *Element) AddClass(name string) {
	list := classes(e.node)
	if !slices.Contains(list, name) {
		setClasses(e.node, append(list, name))
	}
}

func (e *Element) RemoveClass(name string) {
	list := classes(e.node)
	if slices.Contains(list, name) {
		setClasses(e.node, slices.DeleteFunc(list, func(c string) bool { return c == name }))
	}
}

func (e *Element) ToggleClass(name string) bool {
	if e.HasClass(name) {
		e.RemoveClass(name)
		return false
	}
	e.AddClass(name)
	return true
}

func (e *Element) HasClass(name string) bool {
	return slices.Contains(classes(e.node), name)
}

func (e *Element) OnClick(handler func()) {
	e.doc.listeners[e.node] = append(e.doc.listeners[e.node], handler)
}

// Click runs the element's click listeners in registration order
func (e *Element) Click() {
	for _, h := range e.doc.listeners[e.node] {
		h()
	}
}

// ListenerCount returns how many click listeners the element has
func (e *Element) ListenerCount() int {
	return len(e.doc.listeners[e.node])
}

func classes(n *html.Node) []string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == "class" {
			return strings.Fields(a.Val)
		}
	}
	return nil
}

func setClasses(n *html.Node, list []string) {
	val := strings.Join(list, " ")
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == "class" {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: val})
}
