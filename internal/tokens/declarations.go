// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package tokens

import "strings"

// Declaration is a single CSS custom property.
type Declaration struct {
	Name  string
	Value string
}

// Declarations is an insertion-ordered set of custom properties. Setting an
// existing name replaces its value in place, so emission order is stable.
type Declarations []Declaration

// Set adds or replaces a declaration.
func (d *Declarations) Set(name, value string) {
	for i := range *d {
		if (*d)[i].Name == name {
			(*d)[i].Value = value
			return
		}
	}
	*d = append(*d, Declaration{Name: name, Value: value})
}

// SetPresent adds the declaration only when value is non-empty.
func (d *Declarations) SetPresent(name, value string) {
	if value != "" {
		d.Set(name, value)
	}
}

// Get returns the value for name and whether it is set.
func (d Declarations) Get(name string) (string, bool) {
	for _, decl := range d {
		if decl.Name == name {
			return decl.Value, true
		}
	}
	return "", false
}

// Merge layers o over d.
func (d *Declarations) Merge(o Declarations) {
	for _, decl := range o {
		d.Set(decl.Name, decl.Value)
	}
}

// writeBlock emits "selector {\n  --a: b;\n}\n". An empty set still
// produces the braces.
func writeBlock(b *strings.Builder, selector string, decls Declarations) {
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, decl := range decls {
		b.WriteString("  ")
		b.WriteString(decl.Name)
		b.WriteString(": ")
		b.WriteString(decl.Value)
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
}
