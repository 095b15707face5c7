// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package dom implements the theme style sink on top of a parsed HTML
// document, so pages rendered on the server carry the same single style
// element a browser session would.
package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"bakeshop/internal/models"
	"bakeshop/internal/themeruntime"
)

// Document is an HTML document that accepts compiled theme CSS. It is not
// safe for concurrent use; each request renders its own Document.
type Document struct {
	root  *html.Node
	style *html.Node
}

// Parse reads an HTML document. Missing html/head/body elements are
// synthesized by the HTML5 parser.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseString is Parse for an in-memory page.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Replace swaps the text of the theme style element, creating the element
// at the end of head the first time it is needed.
func (d *Document) Replace(css string) {
	el := d.styleElement()
	for c := el.FirstChild; c != nil; {
		next := c.NextSibling
		el.RemoveChild(c)
		c = next
	}
	el.AppendChild(&html.Node{Type: html.TextNode, Data: css})
}

// MarkMode flags mode on the html element: data-theme is set and the dark
// class is toggled.
func (d *Document) MarkMode(mode models.Mode) {
	htmlEl := find(d.root, atom.Html)
	if htmlEl == nil {
		return
	}
	setAttr(htmlEl, "data-theme", string(mode))

	var classes []string
	for _, c := range strings.Fields(getAttr(htmlEl, "class")) {
		if c != "dark" {
			classes = append(classes, c)
		}
	}
	if mode == models.ModeDark {
		classes = append(classes, "dark")
	}
	if len(classes) == 0 {
		removeAttr(htmlEl, "class")
		return
	}
	setAttr(htmlEl, "class", strings.Join(classes, " "))
}

// StyleText returns the current content of the theme style element.
func (d *Document) StyleText() string {
	el := d.lookupStyle()
	if el == nil {
		return ""
	}
	var b strings.Builder
	for c := el.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

func (d *Document) styleElement() *html.Node {
	if el := d.lookupStyle(); el != nil {
		return el
	}

	head := find(d.root, atom.Head)
	if head == nil {
		// html.Parse always builds a head; guard against hand-built trees.
		head = &html.Node{Type: html.ElementNode, DataAtom: atom.Head, Data: "head"}
		if htmlEl := find(d.root, atom.Html); htmlEl != nil {
			htmlEl.InsertBefore(head, htmlEl.FirstChild)
		} else {
			d.root.AppendChild(head)
		}
	}

	el := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Style,
		Data:     "style",
		Attr:     []html.Attribute{{Key: "id", Val: themeruntime.StyleElementID}},
	}
	head.AppendChild(el)
	d.style = el
	return el
}

// lookupStyle finds an existing theme style element, including one that
// came with the parsed markup.
func (d *Document) lookupStyle() *html.Node {
	if d.style != nil {
		return d.style
	}
	var walk func(n *html.Node) *html.Node
	walk = func(n *html.Node) *html.Node {
		if n.Type == html.ElementNode && n.DataAtom == atom.Style && getAttr(n, "id") == themeruntime.StyleElementID {
			return n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if found := walk(c); found != nil {
				return found
			}
		}
		return nil
	}
	d.style = walk(d.root)
	return d.style
}

func find(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, a); found != nil {
			return found
		}
	}
	return nil
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Key != key {
			out = append(out, a)
		}
	}
	n.Attr = out
}
