//go:build js && wasm

// Package jsdom implements dom.Document over the browser DOM.
package jsdom

import (
	"syscall/js"

	"sitekit.dev/sitekit/internal/dom"
)

// Document is the page's global document
type Document struct {
	v js.Value
}

// New returns the current page's document
func New() *Document {
	return &Document{v: js.Global().Get("document")}
}

// OnReady runs fn once the page structure is parsed: immediately when that
// has already happened, otherwise on DOMContentLoaded.
func (d *Document) OnReady(fn func()) {
	if d.v.Get("readyState").String() != "loading" {
		fn()
		return
	}
	var cb js.Func
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		cb.Release()
		fn()
		return nil
	})
	d.v.Call("addEventListener", "DOMContentLoaded", cb)
}

func (d *Document) QueryClass(class string) (dom.Element, bool) {
	el := d.v.Call("querySelector", "."+class)
	if el.IsNull() || el.IsUndefined() {
		return nil, false
	}
	return &Element{v: el}, true
}

func (d *Document) CreateElement(tag string) dom.Element {
	return &Element{v: d.v.Call("createElement", tag)}
}

func (d *Document) InsertAfter(ref, el dom.Element) {
	r, ok := ref.(*Element)
	if !ok {
		return
	}
	e, ok := el.(*Element)
	if !ok {
		return
	}
	parent := r.v.Get("parentNode")
	if parent.IsNull() || parent.IsUndefined() {
		return
	}
	parent.Call("insertBefore", e.v, r.v.Get("nextSibling"))
}

// Element wraps a browser element
type Element struct {
	v js.Value
}

func (e *Element) classList() js.Value {
	return e.v.Get("classList")
}

func (e *Element) AddClass(name string) {
	e.classList().Call("add", name)
}

func (e *Element) RemoveClass(name string) {
	e.classList().Call("remove", name)
}

func (e *Element) ToggleClass(name string) bool {
	return e.classList().Call("toggle", name).Bool()
}

func (e *Element) HasClass(name string) bool {
	return e.classList().Call("contains", name).Bool()
}

// OnClick registers handler for the page's lifetime; it is never released.
func (e *Element) OnClick(handler func()) {
	e.v.Call("addEventListener", "click", js.FuncOf(func(js.Value, []js.Value) any {
		handler()
		return nil
	}))
}
