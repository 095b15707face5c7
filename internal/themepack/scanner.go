// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package themepack

import (
	"regexp"
	"strings"
)

// keyLine matches "key: value" and "key:" lines of the block format.
var keyLine = regexp.MustCompile(`^([A-Za-z0-9_\-]+)\s*:\s*(.*)$`)

// node is one key of the block format. A key has either an inline value,
// a literal text block ("key: |"), or nested children.
type node struct {
	key      string
	value    string
	literal  string
	children []*node
}

// child returns the first direct child named key, or nil.
func (n *node) child(key string) *node {
	if n == nil {
		return nil
	}
	for _, c := range n.children {
		if c.key == key {
			return c
		}
	}
	return nil
}

// scalar returns the node's inline value, trimmed and unquoted.
func (n *node) scalar() string {
	if n == nil {
		return ""
	}
	return unquote(n.value)
}

// text returns the literal block if present, else the inline value.
func (n *node) text() string {
	if n == nil {
		return ""
	}
	if n.literal != "" {
		return n.literal
	}
	return n.scalar()
}

// find searches the subtree depth-first for the first node named key.
func (n *node) find(key string) *node {
	if n == nil {
		return nil
	}
	for _, c := range n.children {
		if c.key == key {
			return c
		}
		if hit := c.find(key); hit != nil {
			return hit
		}
	}
	return nil
}

type line struct {
	indent int
	text   string
}

// scanBlocks builds the key tree of a block-format document. Document
// markers, comments, and lines that are not "key:" lines are skipped.
func scanBlocks(src string) *node {
	raw := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
	lines := make([]line, 0, len(raw))
	for _, r := range raw {
		trimmed := strings.TrimLeft(r, " \t")
		lines = append(lines, line{indent: len(r) - len(trimmed), text: strings.TrimRight(trimmed, " \t")})
	}

	root := &node{}
	i := 0
	root.children = scanLevel(lines, &i, -1)
	return root
}

// scanLevel consumes lines indented deeper than parent and returns them as
// sibling nodes, recursing into nested blocks.
func scanLevel(lines []line, i *int, parent int) []*node {
	var nodes []*node
	level := -1

	for *i < len(lines) {
		l := lines[*i]
		if skippable(l.text) {
			*i++
			continue
		}
		if l.indent <= parent {
			break
		}
		if level == -1 {
			level = l.indent
		}
		if l.indent < level {
			break
		}

		*i++
		m := keyLine.FindStringSubmatch(l.text)
		if m == nil {
			continue
		}
		n := &node{key: m[1], value: strings.TrimSpace(m[2])}

		switch n.value {
		case "|", "|-", "|+", ">", ">-":
			n.value = ""
			n.literal = scanLiteral(lines, i, l.indent)
		case "":
			n.children = scanLevel(lines, i, l.indent)
		}
		nodes = append(nodes, n)
	}
	return nodes
}

// scanLiteral collects the lines of a "key: |" block: every following line
// that is blank or indented deeper than the key, dedented by the indent of
// the first content line.
func scanLiteral(lines []line, i *int, keyIndent int) string {
	var out []string
	base := -1
	for *i < len(lines) {
		l := lines[*i]
		if l.text != "" && l.indent <= keyIndent {
			break
		}
		*i++
		if l.text == "" {
			out = append(out, "")
			continue
		}
		if base == -1 {
			base = l.indent
		}
		pad := l.indent - base
		if pad < 0 {
			pad = 0
		}
		out = append(out, strings.Repeat(" ", pad)+l.text)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

func skippable(text string) bool {
	return text == "" || text == "---" || text == "..." || strings.HasPrefix(text, "#")
}

// unquote trims the value and strips one pair of matching quotes.
func unquote(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 2 {
		first, last := v[0], v[len(v)-1]
		if (first == '"' || first == '\'') && first == last {
			return strings.TrimSpace(v[1 : len(v)-1])
		}
	}
	return v
}
