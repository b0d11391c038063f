// Package dom defines the small slice of the document object model the
// navigation scripts need, so the same wiring runs against a browser page or a
// parsed HTML tree.
package dom

// Element is a node in a document that carries a class list and click listeners
type Element interface {
	AddClass(name string)
	RemoveClass(name string)
	// ToggleClass adds name if absent, removes it if present, and reports
	// whether it is present afterwards.
	ToggleClass(name string) bool
	HasClass(name string) bool
	OnClick(handler func())
}

// Document locates, creates and places elements
type Document interface {
	// QueryClass returns the first element in document order carrying class.
	QueryClass(class string) (Element, bool)
	CreateElement(tag string) Element
	// InsertAfter places el as the next sibling of ref.
	InsertAfter(ref, el Element)
}
